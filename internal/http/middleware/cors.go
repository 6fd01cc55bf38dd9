package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin unconditionally. Acceptable only because
// this service is a QA test fixture, not a production trust boundary.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "Accept", "Origin"},
		MaxAge:          24 * time.Hour,
	})
}
