// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"spamcheck-server/db"
	"spamcheck-server/middlewares"
	"spamcheck-server/models"
	"spamcheck-server/rabbitmq"
	"spamcheck-server/validators"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateSpamReportHandler godoc
// @Summary      Report a phone number as spam
// @Description  Appends a spam report and updates the directory counters for the number. The directory entry is created as unregistered if the number was never seen before.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        spamReportRequest  body  SpamReportRequest  true  "Spam report payload"
// @Success      201 {object} SpamReportResponse       "Report recorded"
// @Failure      400 {object} ValidationErrorResponse  "Validation failure"
// @Failure      401 {object} echo.HTTPError           "Unauthorized"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /spam-reports/ [post]
func CreateSpamReportHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req SpamReportRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid spam report payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	fields := map[string]*string{
		"phone_number": &req.PhoneNumber,
		"country_code": &req.CountryCode,
		"reason":       &req.Reason,
	}
	if errs := validators.Check(fields, "phone_number", "country_code", "reason"); len(errs) > 0 {
		logger.Error("Spam report validation failed.")
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed.",
			Details: errs.First(),
		})
	}

	report := models.SpamReport{
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
		Reason:      req.Reason,
		ReporterID:  user.ID,
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create spam report: %v", err)
		return echo.ErrInternalServerError
	}

	// Seed a directory row for numbers never seen before; an existing row,
	// registered or not, is left untouched here.
	entry := models.GlobalContact{
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoNothing: true,
	}).Create(&entry).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to ensure directory entry: %v", err)
		return echo.ErrInternalServerError
	}

	// Row-atomic increments, so a concurrent account sync (which never writes
	// counters) cannot clobber them.
	if err := tx.Model(&models.GlobalContact{}).
		Where("phone_number = ?", req.PhoneNumber).
		Updates(map[string]any{
			"spam_count":    gorm.Expr("spam_count + 1"),
			"total_reports": gorm.Expr("total_reports + 1"),
		}).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to update report counters: %v", err)
		return echo.ErrInternalServerError
	}

	countryCode := req.CountryCode
	stat := models.Stats{Type: models.StatsTypeSpamReport, CountryCode: &countryCode}
	if err := tx.Create(&stat).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create report stat: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	if rabbitmq.Enabled() {
		event := models.NewReportEvent(report.PhoneNumber, report.CountryCode, report.Reason)
		if client, err := rabbitmq.NewClient(rabbitmq.Config{}); err != nil {
			logger.Errorf("Failed to initialize AMQP client: %v", err)
		} else {
			defer client.Close()
			if err := client.PublishReportEvent(c.Request().Context(), event); err != nil {
				logger.Errorf("Failed to publish report event: %v", err)
			}
		}
	}

	logger.Infof("Spam report recorded successfully")
	return c.JSON(http.StatusCreated, SpamReportResponse{
		Message:  "Spam report recorded successfully.",
		ReportID: report.RID.String(),
	})
}
