package handlers

import (
	"net/http"

	"github.com/diegocode81/api-mock-adn-agenda/internal/http/middleware"
	"github.com/diegocode81/api-mock-adn-agenda/internal/services"

	"github.com/gin-gonic/gin"
)

// GetRegistration handles GET /api/registration.
func GetRegistration(c *gin.Context) {
	svc := services.RegistrationService{RequestID: middleware.GetRequestID(c)}
	reg, err := svc.Lookup(c.Query("userId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, reg)
}
