// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"testing"
)

func TestCheckRequiredFieldMessages(t *testing.T) {
	fields := map[string]*string{
		"first_name":   nil,
		"last_name":    nil,
		"country_code": nil,
		"phone_number": nil,
	}

	errs := Check(fields, "first_name", "last_name", "country_code", "phone_number")

	expected := map[string]string{
		"first_name":   "First name is required.",
		"last_name":    "Last name is required.",
		"country_code": "Country code is required.",
		"phone_number": "Phone number is required.",
	}
	first := errs.First()
	for field, message := range expected {
		if first[field] != message {
			t.Errorf("Expected %q for %s, got %q", message, field, first[field])
		}
	}
}

func TestCheckEmptyStringCountsAsMissing(t *testing.T) {
	empty := ""
	errs := Check(map[string]*string{"first_name": &empty}, "first_name")
	if errs.First()["first_name"] != "First name is required." {
		t.Errorf("Empty value should fail the required rule, got %v", errs)
	}
}

func TestCheckUnknownRequiredFieldFallbackMessage(t *testing.T) {
	errs := Check(map[string]*string{"reason": nil}, "reason")
	if errs.First()["reason"] != "This field is required." {
		t.Errorf("Expected fallback message, got %q", errs.First()["reason"])
	}
}

func TestPhoneNumberMustBeNumeric(t *testing.T) {
	for _, value := range []string{"555-1234", "+15551234567", "phone", "1 234"} {
		messages := PhoneNumber(value)
		if len(messages) == 0 || messages[0] != "Phone number must be numeric." {
			t.Errorf("Expected numeric failure for %q, got %v", value, messages)
		}
	}

	if messages := PhoneNumber("15551234567"); len(messages) != 0 {
		t.Errorf("Expected no failures for a numeric phone, got %v", messages)
	}
}

func TestPhoneNumberMaxLength(t *testing.T) {
	messages := PhoneNumber("1234567890123456")
	if len(messages) != 1 || messages[0] != "Phone number must be at most 15 characters." {
		t.Errorf("Expected length failure, got %v", messages)
	}
}

func TestEmailBlockedDomain(t *testing.T) {
	messages := Email("someone@example.com")
	if len(messages) != 1 || messages[0] != "Email addresses from example.com are not allowed." {
		t.Errorf("Expected blocked-domain failure, got %v", messages)
	}

	if messages := Email("someone@example.org"); len(messages) != 0 {
		t.Errorf("example.org should be allowed, got %v", messages)
	}
}

func TestEmailInvalidAddress(t *testing.T) {
	messages := Email("not-an-email")
	if len(messages) != 1 || messages[0] != "Enter a valid email address." {
		t.Errorf("Expected invalid-address failure, got %v", messages)
	}
}

func TestCheckCollectsAllFailures(t *testing.T) {
	// Non-numeric and too long at once: both failures surface.
	value := "abcdefghijklmnop"
	errs := Check(map[string]*string{"phone_number": &value})

	if len(errs["phone_number"]) != 2 {
		t.Fatalf("Expected 2 failures for phone_number, got %v", errs["phone_number"])
	}

	// The client-facing reduction keeps only the first message.
	first := errs.First()
	if first["phone_number"] != "Phone number must be numeric." {
		t.Errorf("Expected first message only, got %q", first["phone_number"])
	}
}

func TestCheckNilValuesSkipRules(t *testing.T) {
	errs := Check(map[string]*string{"email": nil, "phone_number": nil})
	if len(errs) != 0 {
		t.Errorf("Absent optional fields should not fail, got %v", errs)
	}
}
