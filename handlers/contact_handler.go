// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"spamcheck-server/db"
	"spamcheck-server/middlewares"
	"spamcheck-server/models"
	"spamcheck-server/validators"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// CreateContactHandler godoc
// @Summary      Add a personal contact
// @Description  Adds an entry to the caller's private address book. Entries are not deduplicated against the contact directory.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        contactRequest  body  ContactRequest  true  "Contact payload"
// @Success      201 {object} ContactResponse          "Contact added"
// @Failure      400 {object} ValidationErrorResponse  "Validation failure"
// @Failure      401 {object} echo.HTTPError           "Unauthorized"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /contacts/ [post]
func CreateContactHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid contact request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	fields := map[string]*string{
		"name":         &req.Name,
		"phone_number": &req.PhoneNumber,
		"country_code": &req.CountryCode,
	}
	if errs := validators.Check(fields, "name", "phone_number", "country_code"); len(errs) > 0 {
		logger.Error("Contact validation failed.")
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed.",
			Details: errs.First(),
		})
	}

	contact := models.Contact{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
		OwnerID:     user.ID,
	}
	if err := db.Conn.Create(&contact).Error; err != nil {
		logger.Errorf("Failed to create contact: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusCreated, ContactResponse{
		Message: "Contact added successfully.",
		Data:    serializeContact(&contact),
	})
}

// GetContactsHandler godoc
// @Summary      List personal contacts
// @Description  Retrieves the caller's address book, newest first.
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number"  default(1)
// @Param        page_size  query  int  false  "Page size"    default(20)
// @Success      200 {object} ContactListResponse  "Contacts retrieved"
// @Failure      401 {object} echo.HTTPError       "Unauthorized"
// @Failure      500 {object} echo.HTTPError       "Internal server error"
// @Router       /contacts/ [get]
func GetContactsHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := db.Conn.Model(&models.Contact{}).Where("owner_id = ?", user.ID).Count(&total).Error; err != nil {
		logger.Errorf("Failed to count contacts: %v", err)
		return echo.ErrInternalServerError
	}

	var contacts []models.Contact
	if err := db.Conn.Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&contacts).Error; err != nil {
		logger.Errorf("Failed to fetch contacts: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]ContactDetails, 0, len(contacts))
	for i := range contacts {
		details = append(details, serializeContact(&contacts[i]))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return c.JSON(http.StatusOK, ContactListResponse{
		Data: details,
		Pagination: PaginationDetails{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Message: "Contacts retrieved successfully.",
	})
}

func serializeContact(contact *models.Contact) ContactDetails {
	return ContactDetails{
		ID:          contact.ID,
		Name:        contact.Name,
		PhoneNumber: contact.PhoneNumber,
		CountryCode: contact.CountryCode,
		DateAdded:   contact.CreatedAt.Format(time.RFC3339),
	}
}
