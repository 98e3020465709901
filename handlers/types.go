// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model RegisterRequest
type RegisterRequest struct {
	// Salutation, e.g. Mr., Mrs., Dr.
	Salutation *string `json:"salutation" example:"Ms."`
	// User's first name
	// required: true
	FirstName string `json:"first_name" example:"Ana"`
	// User's last name
	// required: true
	LastName string `json:"last_name" example:"Li"`
	// User's occupation
	Occupation *string `json:"occupation" example:"Engineer"`
	// Phone number, digits only
	// required: true
	PhoneNumber string `json:"phone_number" example:"15551234567"`
	// Calling country code
	// required: true
	CountryCode string `json:"country_code" example:"1"`
	// Optional email address
	Email *string `json:"email" example:"ana@li.dev"`
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error
	Error string `json:"error"`
}

// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Always "Validation failed."
	Error string `json:"error" example:"Validation failed."`
	// First failure message per field
	Details map[string]string `json:"details"`
}

// swagger:model ProfileData
type ProfileData struct {
	// Unique identifier for the user
	ID uint `json:"id" example:"1"`
	// Salutation
	Salutation *string `json:"salutation" example:"Ms."`
	// First name
	FirstName string `json:"first_name" example:"Ana"`
	// Last name
	LastName string `json:"last_name" example:"Li"`
	// Occupation
	Occupation *string `json:"occupation" example:"Engineer"`
	// Phone number
	PhoneNumber string `json:"phone_number" example:"15551234567"`
	// Calling country code
	CountryCode string `json:"country_code" example:"1"`
	// Email address
	Email *string `json:"email" example:"ana@li.dev"`
	// Timestamp of registration
	DateJoined string `json:"date_joined" example:"2023-10-01T12:00:00Z"`
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Salutation  *string `json:"salutation"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Occupation  *string `json:"occupation"`
	PhoneNumber *string `json:"phone_number"`
	CountryCode *string `json:"country_code"`
	Email       *string `json:"email"`
}

// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Message indicating successful update
	Message string `json:"message" example:"Profile updated successfully."`
	// The updated profile
	Data ProfileData `json:"data"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Phone number the account was registered with
	PhoneNumber string `json:"phone_number" example:"15551234567"`
	// User's password
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	// Authentication session token
	// Should be used in the Authorization header as a Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Operation successful"`
}

// swagger:model PaginationDetails
type PaginationDetails struct {
	// Current page number
	Page int `json:"page"`
	// Page size
	PageSize int `json:"page_size"`
	// Total number of items
	Total int64 `json:"total"`
	// Total number of pages
	TotalPages int `json:"total_pages"`
}

// swagger:model ContactRequest
type ContactRequest struct {
	// Contact's name
	Name string `json:"name" example:"John Doe"`
	// Contact's phone number, digits only
	PhoneNumber string `json:"phone_number" example:"2371234567"`
	// Calling country code
	CountryCode string `json:"country_code" example:"237"`
}

// swagger:model ContactDetails
type ContactDetails struct {
	// Contact ID
	ID uint `json:"id"`
	// Contact's name
	Name string `json:"name"`
	// Contact's phone number
	PhoneNumber string `json:"phone_number"`
	// Calling country code
	CountryCode string `json:"country_code"`
	// Timestamp of when the contact was added
	DateAdded string `json:"date_added" example:"2023-10-01T12:00:00Z"`
}

// swagger:model ContactResponse
type ContactResponse struct {
	// Message indicating successful creation
	Message string `json:"message" example:"Contact added successfully."`
	// The created contact
	Data ContactDetails `json:"data"`
}

// swagger:model ContactListResponse
type ContactListResponse struct {
	// List of contacts
	Data []ContactDetails `json:"data"`
	// Pagination details
	Pagination PaginationDetails `json:"pagination"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Contacts retrieved successfully."`
}

// swagger:model SpamReportRequest
type SpamReportRequest struct {
	// Reported phone number, digits only
	PhoneNumber string `json:"phone_number" example:"2371234567"`
	// Calling country code
	CountryCode string `json:"country_code" example:"237"`
	// Free-text reason for the report
	Reason string `json:"reason" example:"Robocall offering loans"`
}

// swagger:model SpamReportResponse
type SpamReportResponse struct {
	// Message indicating the report was recorded
	Message string `json:"message" example:"Spam report recorded successfully."`
	// Identifier of the recorded report
	ReportID string `json:"report_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// swagger:model NumberLookupResponse
type NumberLookupResponse struct {
	// Phone number the entry is keyed by
	PhoneNumber string `json:"phone_number"`
	// Display name
	Name string `json:"name"`
	// Calling country code
	CountryCode string `json:"country_code"`
	// Whether the number belongs to a registered account
	IsRegisteredUser bool `json:"is_registered_user"`
	// Number of spam reports
	SpamCount int `json:"spam_count"`
	// Total number of reports
	TotalReports int `json:"total_reports"`
	// Ratio of spam reports to total reports, 0 when unreported
	SpamLikelihood float64 `json:"spam_likelihood"`
	// Email, present only for registered numbers
	Email *string `json:"email"`
	// ISO region derived from the number, when parseable
	Region *string `json:"region"`
	// Carrier derived from the number, when known
	Carrier *string `json:"carrier"`
	// Timestamp of the last directory update
	LastUpdated string `json:"last_updated" example:"2023-10-01T12:00:00Z"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Number retrieved successfully."`
}

// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password" example:"MySecretPassword@123"`
	// New password
	// required: true
	NewPassword string `json:"new_password" example:"MyNewPassword@456"`
}

// swagger:model DeleteAccountRequest
type DeleteAccountRequest struct {
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
}
