/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package brp defines the wire types of the Haal Centraal BRP "personen"
// API: the tagged search request union and the parts of the response this
// gateway inspects.
package brp

import (
	"encoding/json"
	"fmt"
)

// SearchType discriminates the search request union.
type SearchType string

const (
	TypeRaadpleegMetBurgerservicenummer                  SearchType = "RaadpleegMetBurgerservicenummer"
	TypeZoekMetGeslachtsnaamEnGeboortedatum              SearchType = "ZoekMetGeslachtsnaamEnGeboortedatum"
	TypeZoekMetNaamEnGemeenteVanInschrijving             SearchType = "ZoekMetNaamEnGemeenteVanInschrijving"
	TypeZoekMetNummeraanduidingIdentificatie             SearchType = "ZoekMetNummeraanduidingIdentificatie"
	TypeZoekMetAdresseerbaarObjectIdentificatie          SearchType = "ZoekMetAdresseerbaarObjectIdentificatie"
	TypeZoekMetPostcodeEnHuisnummer                      SearchType = "ZoekMetPostcodeEnHuisnummer"
	TypeZoekMetStraatHuisnummerEnGemeenteVanInschrijving SearchType = "ZoekMetStraatHuisnummerEnGemeenteVanInschrijving"
)

// SearchRequest is one inbound query. Selector attributes are optional and
// only the ones belonging to Type may be set; all fields are omitempty so
// that re-marshalling yields exactly the attributes the caller provided plus
// the type tag, nothing defaulted.
type SearchRequest struct {
	Type   SearchType `json:"type"`
	Fields []string   `json:"fields,omitempty"`

	Burgerservicenummer              []string `json:"burgerservicenummer,omitempty"`
	Geboortedatum                    string   `json:"geboortedatum,omitempty"`
	Geslachtsnaam                    string   `json:"geslachtsnaam,omitempty"`
	Voorvoegsel                      string   `json:"voorvoegsel,omitempty"`
	Voornamen                        string   `json:"voornamen,omitempty"`
	GemeenteVanInschrijving          string   `json:"gemeenteVanInschrijving,omitempty"`
	NummeraanduidingIdentificatie    string   `json:"nummeraanduidingIdentificatie,omitempty"`
	AdresseerbaarObjectIdentificatie string   `json:"adresseerbaarObjectIdentificatie,omitempty"`
	Postcode                         string   `json:"postcode,omitempty"`
	Huisnummer                       int      `json:"huisnummer,omitempty"`
	Huisletter                       string   `json:"huisletter,omitempty"`
	Huisnummertoevoeging             string   `json:"huisnummertoevoeging,omitempty"`
	Straat                           string   `json:"straat,omitempty"`
	InclusiefOverledenPersonen       *bool    `json:"inclusiefOverledenPersonen,omitempty"`
}

// ParseSearchRequest decodes raw into a SearchRequest and validates the type
// tag and its required selectors. Unrecognized types are rejected rather
// than forwarded underspecified.
func ParseSearchRequest(raw []byte) (*SearchRequest, error) {
	req := &SearchRequest{}

	if err := json.Unmarshal(raw, req); err != nil {
		return nil, fmt.Errorf("decode search request: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks the type tag and the selectors the declared type requires.
func (r *SearchRequest) Validate() error {
	switch r.Type {
	case TypeRaadpleegMetBurgerservicenummer:
		if len(r.Burgerservicenummer) == 0 {
			return requiredSelectorError(r.Type, "burgerservicenummer")
		}
	case TypeZoekMetGeslachtsnaamEnGeboortedatum:
		if r.Geboortedatum == "" || r.Geslachtsnaam == "" {
			return requiredSelectorError(r.Type, "geboortedatum, geslachtsnaam")
		}
	case TypeZoekMetNaamEnGemeenteVanInschrijving:
		if r.Geslachtsnaam == "" || r.Voornamen == "" || r.GemeenteVanInschrijving == "" {
			return requiredSelectorError(r.Type, "geslachtsnaam, voornamen, gemeenteVanInschrijving")
		}
	case TypeZoekMetNummeraanduidingIdentificatie:
		if r.NummeraanduidingIdentificatie == "" {
			return requiredSelectorError(r.Type, "nummeraanduidingIdentificatie")
		}
	case TypeZoekMetAdresseerbaarObjectIdentificatie:
		if r.AdresseerbaarObjectIdentificatie == "" {
			return requiredSelectorError(r.Type, "adresseerbaarObjectIdentificatie")
		}
	case TypeZoekMetPostcodeEnHuisnummer:
		if r.Postcode == "" || r.Huisnummer == 0 {
			return requiredSelectorError(r.Type, "postcode, huisnummer")
		}
	case TypeZoekMetStraatHuisnummerEnGemeenteVanInschrijving:
		if r.Straat == "" || r.Huisnummer == 0 || r.GemeenteVanInschrijving == "" {
			return requiredSelectorError(r.Type, "straat, huisnummer, gemeenteVanInschrijving")
		}
	default:
		return fmt.Errorf("unrecognized search type %q", r.Type)
	}

	return nil
}

// Marshal produces the canonical upstream payload: the type tag plus the
// non-empty attributes of the inbound request.
func (r *SearchRequest) Marshal() ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	return payload, nil
}

func requiredSelectorError(searchType SearchType, selectors string) error {
	return fmt.Errorf("search type %s requires selector(s) %s", searchType, selectors)
}
