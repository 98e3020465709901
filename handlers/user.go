// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"spamcheck-server/models"
	"time"
)

// serializeProfile renders an account for client responses. The password
// digest is never part of the serialized form.
func serializeProfile(user *models.User) ProfileData {
	return ProfileData{
		ID:          user.ID,
		Salutation:  user.Salutation,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Occupation:  user.Occupation,
		PhoneNumber: user.PhoneNumber,
		CountryCode: user.CountryCode,
		Email:       user.Email,
		DateJoined:  user.CreatedAt.Format(time.RFC3339),
	}
}
