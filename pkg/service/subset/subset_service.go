/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination subset_service_mocks_test.go -package subset_test -source=subset_service.go

// Package subset answers the reduced person lookup: instead of relaying the
// registry document it reports only the person's age and whether the person
// has children and partners on record.
package subset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/brp"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/profile"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/resterr"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/service/personsearch"
)

// subsetFields is the fixed field set requested from the registry. The
// caller's profile must allow every one of them.
var subsetFields = []string{"kinderen", "leeftijd", "partners"} //nolint:gochecknoglobals

type searchEngine interface {
	Authorize(ctx context.Context, applicationID profile.ID, requestedFields []string) error
	Forward(ctx context.Context, req *brp.SearchRequest) (*personsearch.Result, error)
}

// Result is the reduced view of a registry person record.
type Result struct {
	Leeftijd int  `json:"leeftijd"`
	Kinderen bool `json:"kinderen"`
	Partners bool `json:"partners"`
}

// Service resolves reduced person lookups through the search engine.
type Service struct {
	engine searchEngine
}

// New returns a new subset service.
func New(engine searchEngine) *Service {
	return &Service{engine: engine}
}

// Check looks up the person with the given citizen service number and reduces
// the registry reply to age and the presence of children and partners.
func (s *Service) Check(ctx context.Context, applicationID profile.ID, bsn string) (*Result, error) {
	if err := s.engine.Authorize(ctx, applicationID, subsetFields); err != nil {
		return nil, err
	}

	result, err := s.engine.Forward(ctx, &brp.SearchRequest{
		Type:                brp.TypeRaadpleegMetBurgerservicenummer,
		Fields:              subsetFields,
		Burgerservicenummer: []string{bsn},
	})
	if err != nil {
		return nil, err
	}

	if result.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry lookup returned status %d", result.StatusCode)
	}

	var resp brp.SearchResponse

	if err = json.Unmarshal(result.Body, &resp); err != nil {
		return nil, fmt.Errorf("decode registry reply: %w", err)
	}

	if len(resp.Personen) == 0 {
		return nil, resterr.ErrNoPersonRecords
	}

	persoon := resp.Personen[0]

	return &Result{
		Leeftijd: persoon.Leeftijd,
		Kinderen: len(persoon.Kinderen) > 0,
		Partners: len(persoon.Partners) > 0,
	}, nil
}
