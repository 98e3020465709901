// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpamReport is append-only; no update or delete path exists.
type SpamReport struct {
	ID          uint      `gorm:"primaryKey"`
	RID         uuid.UUID `gorm:"type:uuid;not null"`
	PhoneNumber string    `gorm:"size:15;not null;index"`
	CountryCode string    `gorm:"size:5;not null"`
	Reason      string    `gorm:"size:255;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ReporterID  uint
	Reporter    User `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (report *SpamReport) BeforeCreate(tx *gorm.DB) (err error) {
	report.RID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &SpamReport{})
}
