// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"spamcheck-server/db"
	"spamcheck-server/models"
	"spamcheck-server/validators"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nyaruka/phonenumbers"
	"gorm.io/gorm"
)

// LookupNumberHandler godoc
// @Summary      Look up a phone number
// @Description  Retrieves the directory entry for a phone number with its spam likelihood, plus region and carrier when the number is parseable.
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        phone_number  path  string  true  "Phone number, digits only"
// @Success      200 {object} NumberLookupResponse     "Number retrieved"
// @Failure      400 {object} ValidationErrorResponse  "Invalid phone number"
// @Failure      404 {object} ErrorResponse            "Number not in the directory"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /numbers/{phone_number} [get]
func LookupNumberHandler(c echo.Context) error {
	logger := c.Logger()

	phoneNumber := c.Param("phone_number")
	if messages := validators.PhoneNumber(phoneNumber); len(messages) > 0 {
		logger.Error("Invalid phone number in lookup.")
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed.",
			Details: map[string]string{"phone_number": messages[0]},
		})
	}

	entry := models.GlobalContact{}
	if err := db.Conn.Where("phone_number = ?", phoneNumber).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "No directory entry exists for this phone number.",
			})
		}
		logger.Errorf("Failed to fetch directory entry: %v", err)
		return echo.ErrInternalServerError
	}

	resp := NumberLookupResponse{
		PhoneNumber:      entry.PhoneNumber,
		Name:             entry.Name,
		CountryCode:      entry.CountryCode,
		IsRegisteredUser: entry.IsRegisteredUser,
		SpamCount:        entry.SpamCount,
		TotalReports:     entry.TotalReports,
		SpamLikelihood:   entry.SpamLikelihood(),
		Email:            entry.Email,
		LastUpdated:      entry.UpdatedAt.Format(time.RFC3339),
		Message:          "Number retrieved successfully.",
	}

	// Stored numbers may or may not embed the calling code already; try both
	// forms before giving up on enrichment.
	for _, candidate := range []string{"+" + entry.PhoneNumber, "+" + entry.CountryCode + entry.PhoneNumber} {
		parsed, err := phonenumbers.Parse(candidate, "")
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			continue
		}
		region := phonenumbers.GetRegionCodeForNumber(parsed)
		resp.Region = &region
		if carrier, _, err := phonenumbers.GetCarrierWithPrefixForNumber(parsed, "en"); err == nil && carrier != "" {
			resp.Carrier = &carrier
		}
		break
	}

	return c.JSON(http.StatusOK, resp)
}
