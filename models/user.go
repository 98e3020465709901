// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

type User struct {
	ID          uint    `gorm:"primaryKey"`
	Salutation  *string `gorm:"size:10;default:null"`
	FirstName   string  `gorm:"size:50;not null"`
	LastName    string  `gorm:"size:50;not null"`
	Occupation  *string `gorm:"size:100;default:null"`
	PhoneNumber string  `gorm:"size:15;not null;uniqueIndex"`
	CountryCode string  `gorm:"size:5;not null"`
	Email       *string `gorm:"default:null"`
	Password    string  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// DisplayName is the name mirrored into the contact directory.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

func init() {
	AllModels = append(AllModels, &User{})
}
