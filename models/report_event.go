// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportEvent is the payload published for each recorded spam report
type ReportEvent struct {
	// EID is the unique event identifier
	EID string `json:"eid"`
	// PhoneNumber is the reported phone number
	PhoneNumber string `json:"phone_number"`
	// CountryCode of the reported number
	CountryCode string `json:"country_code"`
	// Reason given by the reporter
	Reason string `json:"reason"`
	// Timestamp when the report was recorded
	ReportedAt time.Time `json:"reported_at"`
}

// NewReportEvent creates a report event with a generated event ID
func NewReportEvent(phoneNumber, countryCode, reason string) *ReportEvent {
	return &ReportEvent{
		EID:         uuid.New().String(),
		PhoneNumber: phoneNumber,
		CountryCode: countryCode,
		Reason:      reason,
		ReportedAt:  time.Now(),
	}
}
