package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/diegocode81/api-mock-adn-agenda/internal/config"
	h "github.com/diegocode81/api-mock-adn-agenda/internal/http/handlers"
	"github.com/diegocode81/api-mock-adn-agenda/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	// Every endpoint is read-only; anything but GET gets a 405.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Header("Allow", stdhttp.MethodGet)
		c.JSON(stdhttp.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/docs", h.SwaggerUI(env))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		api.GET("/clients", h.GetClientTray)
		api.GET("/registration", h.GetRegistration)

		api.GET("/openapi.json", h.ClientTrayOpenAPI(env))
		api.GET("/registration/openapi.json", h.RegistrationOpenAPI(env))
	}

	h.SetRouter(r)
	return r
}
