package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
	// PublicBaseURL overrides the origin echoed into the OpenAPI
	// documents' server list. When empty the origin is derived per
	// request from X-Forwarded-Proto and Host.
	PublicBaseURL string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	publicBaseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")

	return Env{
		AppAddr:       appAddr,
		GinMode:       ginMode,
		PublicBaseURL: publicBaseURL,
	}
}
