/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
)

var (
	// ErrProfileNotFound indicates that no application profile exists for the
	// presented API key identifier. Distinct from a profile with an empty
	// allowed-field set, which is a valid deny-everything policy.
	ErrProfileNotFound = errors.New("application profile not found")

	// ErrFieldsNotAllowed indicates that the requested fields are not a subset
	// of the caller's allowed fields.
	ErrFieldsNotAllowed = errors.New("requested fields exceed application profile")

	// ErrMalformedRequest indicates a body that is not valid JSON, carries an
	// unrecognized search type, or misses the selector its type requires.
	ErrMalformedRequest = errors.New("malformed search request")

	// ErrNoPersonRecords indicates an upstream response with an empty personen
	// array where at least one record was required.
	ErrNoPersonRecords = errors.New("upstream response contains no person records")
)
