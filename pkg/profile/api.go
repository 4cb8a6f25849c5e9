/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

type ID = string

// Application is the field-level access policy bound to one calling application.
// It is administered out-of-band in the policy table and read-only here.
type Application struct {
	ID            ID       `json:"id" dynamodbav:"id"`
	Name          string   `json:"name,omitempty" dynamodbav:"name"`
	AllowedFields []string `json:"fields" dynamodbav:"fields,stringset"`
}

// Allows reports whether every requested field is part of the allowed fields
// in the profile. An empty request is vacuously allowed; an empty profile
// allows nothing else.
func (a *Application) Allows(requestedFields []string) bool {
	allowed := make(map[string]struct{}, len(a.AllowedFields))

	for _, field := range a.AllowedFields {
		allowed[field] = struct{}{}
	}

	for _, field := range requestedFields {
		if _, ok := allowed[field]; !ok {
			return false
		}
	}

	return true
}
