package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig bundles the settings required to run the server.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	AdminUserName string
	AdminPassword string
	FetchTimeout  time.Duration
}

// AdminAuthEnabled reports whether the admin surface requires a login.
// Without configured credentials the admin pages stay open, matching the
// behaviour of a single-user deployment behind its own access control.
func (c AppConfig) AdminAuthEnabled() bool {
	return c.AdminUserName != "" && c.AdminPassword != ""
}

// Load reads the application configuration from environment variables and
// fills in safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "linkshare.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "linkshare-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	fetchTimeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			fetchTimeout = time.Duration(seconds) * time.Second
		}
	}

	adminUserName := strings.TrimSpace(os.Getenv("ADMIN_USER_NAME"))
	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		AdminUserName: adminUserName,
		AdminPassword: adminPassword,
		FetchTimeout:  fetchTimeout,
	}
}
