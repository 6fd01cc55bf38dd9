package handlers

import (
	"net/http"

	"github.com/diegocode81/api-mock-adn-agenda/internal/http/middleware"
	"github.com/diegocode81/api-mock-adn-agenda/internal/services"

	"github.com/gin-gonic/gin"
)

// GetClientTray handles GET /api/clients.
func GetClientTray(c *gin.Context) {
	q := services.TrayQuery{
		UserID:   c.Query("userId"),
		Page:     c.Query("page"),
		PageSize: c.Query("pageSize"),
	}
	// Optional filters keep presence information: an explicitly empty
	// value must be rejected, not ignored.
	if v, ok := c.GetQuery("clientStatus"); ok {
		q.ClientStatus = &v
	}
	if v, ok := c.GetQuery("campaignActive"); ok {
		q.CampaignActive = &v
	}

	svc := services.TrayService{RequestID: middleware.GetRequestID(c)}
	resp, err := svc.List(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
