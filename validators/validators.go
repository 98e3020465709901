// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode"
)

// BlockedEmailDomain is the sentinel domain rejected on every profile write.
const BlockedEmailDomain = "example.com"

// Errors collects every failure per field, not just the first one.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// First reduces each field's failure list to its first message, which is the
// shape returned to clients.
func (e Errors) First() map[string]string {
	first := make(map[string]string, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			first[field] = messages[0]
		}
	}
	return first
}

var requiredMessages = map[string]string{
	"first_name":   "First name is required.",
	"last_name":    "Last name is required.",
	"country_code": "Country code is required.",
	"phone_number": "Phone number is required.",
	"email":        "Email is required.",
}

// fieldRules is the explicit field-to-rule dispatch table.
var fieldRules = map[string]func(string) []string{
	"phone_number": PhoneNumber,
	"email":        Email,
	"salutation":   maxLength("salutation", 10),
	"first_name":   maxLength("first name", 50),
	"last_name":    maxLength("last name", 50),
	"occupation":   maxLength("occupation", 100),
	"country_code": maxLength("country code", 5),
}

// Check runs the required rules for the named fields and the per-field rules
// over every supplied value. A nil value means the field was absent from the
// payload; it only fails when listed in required. All failures are collected
// in one pass.
func Check(fields map[string]*string, required ...string) Errors {
	errs := Errors{}
	for _, field := range required {
		value, ok := fields[field]
		if !ok || value == nil || *value == "" {
			message, known := requiredMessages[field]
			if !known {
				message = "This field is required."
			}
			errs.Add(field, message)
		}
	}
	for field, value := range fields {
		if value == nil || *value == "" {
			continue
		}
		rule, ok := fieldRules[field]
		if !ok {
			continue
		}
		for _, message := range rule(*value) {
			errs.Add(field, message)
		}
	}
	return errs
}

// PhoneNumber accepts decimal digits only, at most 15 of them.
func PhoneNumber(value string) []string {
	var messages []string
	for _, r := range value {
		if !unicode.IsDigit(r) {
			messages = append(messages, "Phone number must be numeric.")
			break
		}
	}
	if len(value) > 15 {
		messages = append(messages, "Phone number must be at most 15 characters.")
	}
	return messages
}

// Email rejects unparseable addresses and the blocklisted sentinel domain.
func Email(value string) []string {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return []string{"Enter a valid email address."}
	}
	at := strings.LastIndex(addr.Address, "@")
	if at >= 0 && strings.EqualFold(addr.Address[at+1:], BlockedEmailDomain) {
		return []string{"Email addresses from example.com are not allowed."}
	}
	return nil
}

func maxLength(label string, max int) func(string) []string {
	return func(value string) []string {
		if len(value) > max {
			return []string{"Ensure " + label + " has at most " + strconv.Itoa(max) + " characters."}
		}
		return nil
	}
}
