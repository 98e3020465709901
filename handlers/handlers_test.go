// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"spamcheck-server/crypto"
	"spamcheck-server/db"
	"spamcheck-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "Secret@123"

func setupTestDB(t *testing.T) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.Conn = conn
}

func newTestContext(t *testing.T, method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func createTestUser(t *testing.T, phoneNumber string) *models.User {
	t.Helper()
	hash, err := crypto.NewCrypto().HashPassword(testPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{
		FirstName:   "Ana",
		LastName:    "Li",
		PhoneNumber: phoneNumber,
		CountryCode: "1",
		Password:    hash,
	}
	if err := db.Conn.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// authenticate attaches a live session to the context the way the session
// middleware does after verifying a bearer token.
func authenticate(t *testing.T, c echo.Context, user *models.User) {
	t.Helper()
	token, err := crypto.GenerateRandomString("st_", 32, "hex")
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	exp := time.Now().Add(time.Hour)
	session := models.Session{Token: token, UserID: user.ID, ExpiresAt: &exp}
	if err := db.Conn.Create(&session).Error; err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	c.Set("session", session)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}
