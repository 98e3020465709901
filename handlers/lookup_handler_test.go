// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"testing"

	"spamcheck-server/db"
	"spamcheck-server/models"
)

func TestLookupNumberHandlerFound(t *testing.T) {
	setupTestDB(t)
	email := "ben@oko.dev"
	entry := models.GlobalContact{
		PhoneNumber:      "15559876543",
		Name:             "Ben Oko",
		CountryCode:      "1",
		IsRegisteredUser: true,
		SpamCount:        1,
		TotalReports:     4,
		Email:            &email,
	}
	if err := db.Conn.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to seed directory entry: %v", err)
	}

	c, rec := newTestContext(t, http.MethodGet, "/numbers/15559876543", nil)
	c.SetParamNames("phone_number")
	c.SetParamValues("15559876543")
	if err := LookupNumberHandler(c); err != nil {
		t.Fatalf("LookupNumberHandler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["name"] != "Ben Oko" {
		t.Errorf("Unexpected name: %v", body["name"])
	}
	if body["is_registered_user"] != true {
		t.Errorf("Expected registered flag, got %v", body["is_registered_user"])
	}
	if body["spam_likelihood"] != 0.25 {
		t.Errorf("Expected spam_likelihood 0.25, got %v", body["spam_likelihood"])
	}
	if body["email"] != "ben@oko.dev" {
		t.Errorf("Unexpected email: %v", body["email"])
	}
	if body["last_updated"] == nil || body["last_updated"] == "" {
		t.Error("Expected a last_updated timestamp")
	}
}

func TestLookupNumberHandlerZeroReports(t *testing.T) {
	setupTestDB(t)
	entry := models.GlobalContact{PhoneNumber: "15559876543", CountryCode: "1"}
	if err := db.Conn.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to seed directory entry: %v", err)
	}

	c, rec := newTestContext(t, http.MethodGet, "/numbers/15559876543", nil)
	c.SetParamNames("phone_number")
	c.SetParamValues("15559876543")
	if err := LookupNumberHandler(c); err != nil {
		t.Fatalf("LookupNumberHandler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if likelihood := decodeBody(t, rec)["spam_likelihood"]; likelihood != 0.0 {
		t.Errorf("Expected spam_likelihood 0 for unreported number, got %v", likelihood)
	}
}

func TestLookupNumberHandlerNotFound(t *testing.T) {
	setupTestDB(t)

	c, rec := newTestContext(t, http.MethodGet, "/numbers/15550000000", nil)
	c.SetParamNames("phone_number")
	c.SetParamValues("15550000000")
	if err := LookupNumberHandler(c); err != nil {
		t.Fatalf("LookupNumberHandler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "No directory entry exists for this phone number." {
		t.Errorf("Unexpected error message: %v", body["error"])
	}
}

func TestLookupNumberHandlerInvalidNumber(t *testing.T) {
	setupTestDB(t)

	c, rec := newTestContext(t, http.MethodGet, "/numbers/555-ABC", nil)
	c.SetParamNames("phone_number")
	c.SetParamValues("555-ABC")
	if err := LookupNumberHandler(c); err != nil {
		t.Fatalf("LookupNumberHandler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	details := decodeBody(t, rec)["details"].(map[string]any)
	if details["phone_number"] != "Phone number must be numeric." {
		t.Errorf("Unexpected detail: %v", details["phone_number"])
	}
}
