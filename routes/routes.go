// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"spamcheck-server/commons"
	"spamcheck-server/handlers"
	"spamcheck-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering routes")
	e.POST("/register/", handlers.RegisterHandler)
	e.POST("/auth/login", handlers.LoginHandler)
	e.POST("/auth/logout", handlers.LogoutHandler, middlewares.VerifySessionMiddleware)
	e.GET("/profile/", handlers.GetProfileHandler, middlewares.VerifySessionMiddleware)
	e.PATCH("/profile/", handlers.UpdateProfileHandler, middlewares.VerifySessionMiddleware)
	e.DELETE("/profile/", handlers.DeleteAccountHandler, middlewares.VerifySessionMiddleware)
	e.PUT("/profile/password", handlers.ChangePasswordHandler, middlewares.VerifySessionMiddleware)
	e.POST("/contacts/", handlers.CreateContactHandler, middlewares.VerifySessionMiddleware)
	e.GET("/contacts/", handlers.GetContactsHandler, middlewares.VerifySessionMiddleware)
	e.POST("/spam-reports/", handlers.CreateSpamReportHandler, middlewares.VerifySessionMiddleware)
	e.GET("/numbers/:phone_number", handlers.LookupNumberHandler, middlewares.VerifySessionMiddleware)
	commons.Logger.Info("Routes registered successfully")
}
