// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"spamcheck-server/crypto"
	"spamcheck-server/db"
	"spamcheck-server/middlewares"
	"spamcheck-server/models"
	"spamcheck-server/validators"

	"github.com/labstack/echo/v4"
)

// GetProfileHandler godoc
// @Summary      Get the caller's profile
// @Description  Retrieves the authenticated user's own account. The account is resolved from the session, never from client input.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileData     "Profile retrieved"
// @Failure      401 {object} echo.HTTPError  "Unauthorized, invalid or expired session token"
// @Router       /profile/ [get]
func GetProfileHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	return c.JSON(http.StatusOK, serializeProfile(user))
}

// UpdateProfileHandler godoc
// @Summary      Update the caller's profile
// @Description  Applies a partial update to the authenticated user's own account. Supplied fields are validated and applied together; omitted fields are untouched. The mirrored contact directory entry is refreshed in the same transaction.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        updateProfileRequest  body  UpdateProfileRequest  true  "Subset of mutable profile fields"
// @Success      200 {object} UpdateProfileResponse    "Profile updated"
// @Failure      400 {object} ValidationErrorResponse  "Validation failure"
// @Failure      401 {object} echo.HTTPError           "Unauthorized"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /profile/ [patch]
func UpdateProfileHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid profile update payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	fields := map[string]*string{}
	if req.Salutation != nil {
		fields["salutation"] = req.Salutation
	}
	if req.FirstName != nil {
		fields["first_name"] = req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = req.LastName
	}
	if req.Occupation != nil {
		fields["occupation"] = req.Occupation
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.CountryCode != nil {
		fields["country_code"] = req.CountryCode
	}
	if req.Email != nil {
		fields["email"] = req.Email
	}

	// Only the supplied subset is validated; a blank value for a field that
	// cannot be cleared is a violation.
	required := []string{}
	for _, field := range []string{"first_name", "last_name", "country_code", "phone_number"} {
		if value, ok := fields[field]; ok && *value == "" {
			required = append(required, field)
		}
	}
	if errs := validators.Check(fields, required...); len(errs) > 0 {
		logger.Error("Profile update validation failed.")
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed.",
			Details: errs.First(),
		})
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
		count := db.Conn.Where("phone_number = ?", *req.PhoneNumber).First(&models.User{}).RowsAffected
		if count > 0 {
			logger.Error("Phone number is already registered.")
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "A user with this phone number already exists.",
			})
		}
	}

	updates := map[string]any{}
	if req.Salutation != nil {
		updates["salutation"] = *req.Salutation
		user.Salutation = req.Salutation
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
		user.LastName = *req.LastName
	}
	if req.Occupation != nil {
		updates["occupation"] = *req.Occupation
		user.Occupation = req.Occupation
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.CountryCode != nil {
		updates["country_code"] = *req.CountryCode
		user.CountryCode = *req.CountryCode
	}
	if req.Email != nil {
		updates["email"] = *req.Email
		user.Email = req.Email
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	if len(updates) > 0 {
		if err := tx.Model(user).Updates(updates).Error; err != nil {
			tx.Rollback()
			logger.Errorf("Failed to update user: %v", err)
			return echo.ErrInternalServerError
		}
	}

	if err := models.SyncGlobalContact(tx, user); err != nil {
		tx.Rollback()
		logger.Errorf("Failed to sync global contact: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Profile updated successfully")
	return c.JSON(http.StatusOK, UpdateProfileResponse{
		Message: "Profile updated successfully.",
		Data:    serializeProfile(user),
	})
}

// DeleteAccountHandler godoc
// @Summary      Delete user account
// @Description  Deletes the authenticated user's account after password confirmation. The directory entry for the number is unlinked and re-flagged as unregistered; its report counters are kept.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        deleteAccountRequest  body  DeleteAccountRequest  true  "Account deletion request payload with password confirmation"
// @Success      200 {object} GenericResponse  "Account deleted"
// @Failure      400 {object} echo.HTTPError   "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError   "Unauthorized, invalid password or expired session token"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /profile/ [delete]
func DeleteAccountHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid delete account request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Password == "" {
		logger.Error("Password is required for account deletion.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required.",
		}
	}

	newCrypto := crypto.NewCrypto()
	if err := newCrypto.VerifyPassword(req.Password, user.Password); err != nil {
		logger.Error("Password verification failed for account deletion.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Password is incorrect, please check your password",
		}
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	if err := tx.Model(&models.GlobalContact{}).Where("user_id = ?", user.ID).Updates(map[string]any{
		"user_id":            nil,
		"is_registered_user": false,
	}).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to unlink global contact: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to delete user sessions: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Unscoped().Where("owner_id = ?", user.ID).Delete(&models.Contact{}).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to delete user contacts: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Unscoped().Where("reporter_id = ?", user.ID).Delete(&models.SpamReport{}).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to delete user spam reports: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Unscoped().Delete(user).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to delete user account: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("User account deleted successfully.")
	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Account deleted successfully",
	})
}

// ChangePasswordHandler godoc
// @Summary      Change user password
// @Description  Changes the authenticated user's password after validating the current password.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        changePasswordRequest  body  ChangePasswordRequest  true  "Password change request payload with current and new password"
// @Success      200 {object} GenericResponse  "Password changed"
// @Failure      400 {object} echo.HTTPError   "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError   "Unauthorized, invalid current password or expired session token"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /profile/password [put]
func ChangePasswordHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid change password request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.CurrentPassword == "" {
		logger.Error("Current password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "current_password field is required",
		}
	}

	if req.NewPassword == "" {
		logger.Error("New password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "new_password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	if err := newCrypto.VerifyPassword(req.CurrentPassword, user.Password); err != nil {
		logger.Error("Current password verification failed.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Current password is incorrect, please check your password",
		}
	}

	if err := newCrypto.VerifyPassword(req.NewPassword, user.Password); err == nil {
		logger.Error("New password is the same as current password.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "New password must be different from the current password",
		}
	}

	hashedNewPassword, err := newCrypto.HashPassword(req.NewPassword)
	if err != nil {
		logger.Errorf("Failed to hash new password: %v", err)
		return echo.ErrInternalServerError
	}

	if err := db.Conn.Model(user).Update("password", hashedNewPassword).Error; err != nil {
		logger.Errorf("Failed to update password in database: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Info("Password changed successfully.")
	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Password changed successfully",
	})
}
