// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"spamcheck-server/crypto"
	"spamcheck-server/db"
	"spamcheck-server/models"
	"spamcheck-server/validators"

	"github.com/labstack/echo/v4"
)

// RegisterHandler godoc
// @Summary      Register a new user
// @Description  Creates a new user account and mirrors it into the contact directory.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body  RegisterRequest  true  "Registration request payload"
// @Success      201 {object} GenericResponse          "User registered"
// @Failure      400 {object} ValidationErrorResponse  "Duplicate phone number or validation failure"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /register/ [post]
func RegisterHandler(c echo.Context) error {
	logger := c.Logger()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid registration request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	count := db.Conn.Where("phone_number = ?", req.PhoneNumber).First(&models.User{}).RowsAffected
	if count > 0 {
		logger.Error("Phone number is already registered.")
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "A user with this phone number already exists.",
		})
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	hash, err := newCrypto.HashPassword(req.Password)
	if err != nil {
		logger.Errorf("Failed to hash password: %v", err)
		return echo.ErrInternalServerError
	}

	fields := map[string]*string{
		"salutation":   req.Salutation,
		"first_name":   &req.FirstName,
		"last_name":    &req.LastName,
		"occupation":   req.Occupation,
		"phone_number": &req.PhoneNumber,
		"country_code": &req.CountryCode,
		"email":        req.Email,
	}
	if errs := validators.Check(fields, "first_name", "last_name", "country_code", "phone_number"); len(errs) > 0 {
		logger.Error("Registration validation failed.")
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed.",
			Details: errs.First(),
		})
	}

	user := models.User{
		Salutation:  req.Salutation,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Occupation:  req.Occupation,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
		Email:       req.Email,
		Password:    hash,
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	if err := models.SyncGlobalContact(tx, &user); err != nil {
		tx.Rollback()
		logger.Errorf("Failed to sync global contact: %v", err)
		return echo.ErrInternalServerError
	}

	countryCode := user.CountryCode
	stat := models.Stats{Type: models.StatsTypeSignup, CountryCode: &countryCode}
	if err := tx.Create(&stat).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create signup stat: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("User registered successfully")
	return c.JSON(http.StatusCreated, GenericResponse{Message: "User registered successfully."})
}
