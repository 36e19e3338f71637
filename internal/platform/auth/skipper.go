package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists URL paths that bypass authentication. These are the
// infrastructure endpoints (health checks) and the credential endpoints
// themselves, which must be reachable without a bearer token.
var publicPaths = map[string]bool{
	"/health":             true,
	"/health/db":          true,
	"/api/v1/auth/signup": true,
	"/api/v1/auth/login":  true,
}

// AuthSkipper returns true for requests whose path should skip authentication.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given path bypasses auth middleware.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
