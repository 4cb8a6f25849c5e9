/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
)

const checkTimeout = 10 * time.Second

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller serves the aggregated component health status.
type Controller struct {
	checker health.Checker
}

// NewController registers GET /healthcheck with the given component checks.
func NewController(router router, checks []health.Check) *Controller {
	opts := []health.CheckerOption{
		health.WithTimeout(checkTimeout),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	c := &Controller{checker: health.NewChecker(opts...)}

	router.GET("/healthcheck", echo.WrapHandler(health.NewHandler(c.checker)))

	return c
}
