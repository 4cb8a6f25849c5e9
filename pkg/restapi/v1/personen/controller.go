/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package personen_test -source=controller.go

package personen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/profile"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/resterr"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/v1/mw"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/service/personsearch"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/service/subset"
)

var logger = log.New("personen-controller")

const profileMismatchMessage = "Mismatch in application/profile"

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type searchService interface {
	Search(ctx context.Context, applicationID profile.ID, rawBody []byte) (*personsearch.Result, error)
}

type subsetService interface {
	Check(ctx context.Context, applicationID profile.ID, bsn string) (*subset.Result, error)
}

// Config holds the dependencies of the personen controller.
type Config struct {
	SearchService searchService
	SubsetService subsetService
}

// Controller exposes the person search and the reduced person lookup.
type Controller struct {
	searchService searchService
	subsetService subsetService
}

// NewController registers the personen routes on the given router.
func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		searchService: cfg.SearchService,
		subsetService: cfg.SubsetService,
	}

	router.POST("/personen", func(ctx echo.Context) error {
		return c.Search(ctx)
	})
	router.GET("/personen/:bsn", func(ctx echo.Context) error {
		return c.Check(ctx)
	})
	router.GET("/personen", func(ctx echo.Context) error {
		return c.Check(ctx)
	})

	return c
}

// Search handles POST /personen. The registry reply, success or not, is
// relayed with its original status code.
func (c *Controller) Search(ctx echo.Context) error {
	req := ctx.Request()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return writeError(ctx, fmt.Errorf("read request body: %w", err))
	}

	result, err := c.searchService.Search(req.Context(), mw.CallerIdentity(ctx), body)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.Blob(result.StatusCode, echo.MIMEApplicationJSON, result.Body)
}

// Check handles the reduced person lookup. The citizen service number comes
// from the path, or from the X-BSN header when the path form is used without
// one.
func (c *Controller) Check(ctx echo.Context) error {
	bsn := ctx.Param("bsn")
	if bsn == "" {
		bsn = ctx.Request().Header.Get("X-BSN")
	}

	if bsn == "" {
		return ctx.String(http.StatusBadRequest, "missing burgerservicenummer")
	}

	result, err := c.subsetService.Check(ctx.Request().Context(), mw.CallerIdentity(ctx), bsn)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// writeError maps service errors onto the wire. Authorization failures all
// produce the same opaque body so a caller cannot distinguish an unknown key
// from a disallowed field.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, resterr.ErrMalformedRequest):
		return ctx.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, resterr.ErrProfileNotFound), errors.Is(err, resterr.ErrFieldsNotAllowed):
		logger.Warnc(ctx.Request().Context(), "request rejected",
			logfields.WithApplicationID(mw.CallerIdentity(ctx)), log.WithError(err))

		return ctx.String(http.StatusForbidden, profileMismatchMessage)
	default:
		logger.Errorc(ctx.Request().Context(), "request failed", log.WithError(err))

		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
