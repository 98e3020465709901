// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(AllModels...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return conn
}

func TestSpamLikelihood(t *testing.T) {
	gc := GlobalContact{}
	if got := gc.SpamLikelihood(); got != 0 {
		t.Errorf("Expected 0 likelihood for unreported number, got %v", got)
	}

	gc = GlobalContact{SpamCount: 3, TotalReports: 4}
	if got := gc.SpamLikelihood(); got != 0.75 {
		t.Errorf("Expected 0.75, got %v", got)
	}
}

func TestSyncGlobalContactCreatesEntry(t *testing.T) {
	conn := openTestDB(t)

	user := User{FirstName: "Ana", LastName: "Li", PhoneNumber: "15551234567", CountryCode: "1", Password: "hash"}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if err := SyncGlobalContact(conn, &user); err != nil {
		t.Fatalf("SyncGlobalContact failed: %v", err)
	}

	var contact GlobalContact
	if err := conn.Where("phone_number = ?", user.PhoneNumber).First(&contact).Error; err != nil {
		t.Fatalf("Expected a directory entry: %v", err)
	}

	if contact.Name != "Ana Li" {
		t.Errorf("Expected name 'Ana Li', got %q", contact.Name)
	}
	if !contact.IsRegisteredUser {
		t.Error("Expected entry to be flagged as registered")
	}
	if contact.UserID == nil || *contact.UserID != user.ID {
		t.Errorf("Expected entry linked to user %d, got %v", user.ID, contact.UserID)
	}
}

func TestSyncGlobalContactAdoptsReportedNumber(t *testing.T) {
	conn := openTestDB(t)

	// The number was reported before its owner ever registered.
	seeded := GlobalContact{PhoneNumber: "15551234567", CountryCode: "1", SpamCount: 2, TotalReports: 5}
	if err := conn.Create(&seeded).Error; err != nil {
		t.Fatalf("Failed to seed directory entry: %v", err)
	}

	user := User{FirstName: "Ana", LastName: "Li", PhoneNumber: "15551234567", CountryCode: "1", Password: "hash"}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if err := SyncGlobalContact(conn, &user); err != nil {
		t.Fatalf("SyncGlobalContact failed: %v", err)
	}

	var count int64
	if err := conn.Model(&GlobalContact{}).Where("phone_number = ?", user.PhoneNumber).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected exactly one directory entry, got %d", count)
	}

	var contact GlobalContact
	if err := conn.Where("phone_number = ?", user.PhoneNumber).First(&contact).Error; err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !contact.IsRegisteredUser {
		t.Error("Adopted entry should be flagged as registered")
	}
	if contact.Name != "Ana Li" {
		t.Errorf("Adopted entry should carry the account name, got %q", contact.Name)
	}
	if contact.SpamCount != 2 || contact.TotalReports != 5 {
		t.Errorf("Report counters must be untouched by the account sync, got %d/%d",
			contact.SpamCount, contact.TotalReports)
	}
}

func TestSyncGlobalContactIdempotent(t *testing.T) {
	conn := openTestDB(t)

	user := User{FirstName: "Ana", LastName: "Li", PhoneNumber: "15551234567", CountryCode: "1", Password: "hash"}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := SyncGlobalContact(conn, &user); err != nil {
			t.Fatalf("SyncGlobalContact run %d failed: %v", i, err)
		}
	}

	var count int64
	if err := conn.Model(&GlobalContact{}).Where("phone_number = ?", user.PhoneNumber).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one directory entry after repeated syncs, got %d", count)
	}
}

func TestSyncGlobalContactRefreshesOnUpdate(t *testing.T) {
	conn := openTestDB(t)

	user := User{FirstName: "Ana", LastName: "Li", PhoneNumber: "15551234567", CountryCode: "1", Password: "hash"}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if err := SyncGlobalContact(conn, &user); err != nil {
		t.Fatalf("Initial sync failed: %v", err)
	}

	user.LastName = "Lim"
	email := "ana@li.dev"
	user.Email = &email
	if err := SyncGlobalContact(conn, &user); err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	var contact GlobalContact
	if err := conn.Where("phone_number = ?", user.PhoneNumber).First(&contact).Error; err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if contact.Name != "Ana Lim" {
		t.Errorf("Expected refreshed name 'Ana Lim', got %q", contact.Name)
	}
	if contact.Email == nil || *contact.Email != email {
		t.Errorf("Expected refreshed email %q, got %v", email, contact.Email)
	}
}
