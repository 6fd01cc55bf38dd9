package handlers

import (
	"fmt"
	"net/http"

	intconfig "github.com/diegocode81/api-mock-adn-agenda/internal/config"
	"github.com/diegocode81/api-mock-adn-agenda/internal/services"

	"github.com/gin-gonic/gin"
)

const swaggerShell = `<!doctype html>
<html><head>
  <meta charset="utf-8" />
  <title>Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css" />
</head><body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
  <script>
    window.addEventListener('load', () => {
      window.ui = SwaggerUIBundle({
        url: '%s/api/openapi.json',
        dom_id: '#swagger-ui'
      });
    });
  </script>
</body></html>`

// requestOrigin derives the externally visible base URL, honoring a
// reverse proxy's X-Forwarded-Proto and the PUBLIC_BASE_URL override.
func requestOrigin(c *gin.Context, env intconfig.Env) string {
	if env.PublicBaseURL != "" {
		return env.PublicBaseURL
	}
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
		if c.Request.TLS != nil {
			proto = "https"
		}
	}
	return proto + "://" + c.Request.Host
}

// ClientTrayOpenAPI serves the client-tray contract document.
func ClientTrayOpenAPI(env intconfig.Env) gin.HandlerFunc {
	svc := services.OpenAPIService{}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ClientTrayDocument(requestOrigin(c, env)))
	}
}

// RegistrationOpenAPI serves the registration contract document. The
// two documents stay independent; they describe different endpoints.
func RegistrationOpenAPI(env intconfig.Env) gin.HandlerFunc {
	svc := services.OpenAPIService{}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.RegistrationDocument(requestOrigin(c, env)))
	}
}

// SwaggerUI serves the static documentation viewer shell, bootstrapped
// against the client-tray document.
func SwaggerUI(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		html := fmt.Sprintf(swaggerShell, requestOrigin(c, env))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}
