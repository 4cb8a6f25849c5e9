/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/profile"
)

const (
	header          = "X-API-Key"
	identityKey     = "callerIdentity"
	healthCheckPath = "/healthcheck"
	versionPath     = "/version"
)

// APIKeyIdentity returns a middleware that reads the caller's API key from
// the X-API-Key header and stores it as the caller identity. The key is the
// lookup handle for the caller's application profile; requests without one
// are rejected before any profile lookup happens.
func APIKeyIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := strings.ToLower(c.Request().URL.Path)

			if strings.HasSuffix(path, healthCheckPath) || strings.HasPrefix(path, versionPath) {
				return next(c)
			}

			apiKeyHeader := c.Request().Header.Get(header)
			if apiKeyHeader == "" {
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized",
				}
			}

			c.Set(identityKey, apiKeyHeader)

			return next(c)
		}
	}
}

// CallerIdentity returns the application identity stored by APIKeyIdentity.
func CallerIdentity(c echo.Context) profile.ID {
	identity, _ := c.Get(identityKey).(string)

	return identity
}
