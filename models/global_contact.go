// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GlobalContact is the centralized directory row for a phone number. A row
// exists for every number the system has ever seen, whether or not its owner
// holds an account.
type GlobalContact struct {
	ID               uint    `gorm:"primaryKey"`
	PhoneNumber      string  `gorm:"size:15;not null;uniqueIndex"`
	Name             string  `gorm:"size:100;index"`
	CountryCode      string  `gorm:"size:5"`
	IsRegisteredUser bool    `gorm:"not null;default:false"`
	SpamCount        int     `gorm:"not null;default:0"`
	TotalReports     int     `gorm:"not null;default:0"`
	Email            *string `gorm:"default:null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           *uint
	User             *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

// SpamLikelihood is the ratio of spam reports to total reports, 0 when the
// number has never been reported.
func (gc *GlobalContact) SpamLikelihood() float64 {
	if gc.TotalReports == 0 {
		return 0
	}
	return float64(gc.SpamCount) / float64(gc.TotalReports)
}

// SyncGlobalContact mirrors an account into the contact directory inside the
// caller's transaction. The upsert is keyed by phone number: a row created
// earlier by a spam report is adopted and relabeled, never duplicated. Spam
// counters are owned by the reporting flow and are not written here; the
// single-statement ON CONFLICT update keeps a racing counter increment safe.
func SyncGlobalContact(tx *gorm.DB, user *User) error {
	contact := GlobalContact{
		PhoneNumber:      user.PhoneNumber,
		Name:             user.DisplayName(),
		CountryCode:      user.CountryCode,
		Email:            user.Email,
		IsRegisteredUser: true,
		UserID:           &user.ID,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone_number"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":               user.DisplayName(),
			"country_code":       user.CountryCode,
			"email":              user.Email,
			"is_registered_user": true,
			"user_id":            user.ID,
		}),
	}).Create(&contact).Error
}

func init() {
	AllModels = append(AllModels, &GlobalContact{})
}
