/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package brp

import (
	"encoding/json"
)

// SearchResponse is the part of the upstream response body the gateway
// inspects. Person records pass through verbatim on the regular endpoint,
// so only the attributes the subset reducer needs are typed here.
type SearchResponse struct {
	Personen []Persoon `json:"personen"`
}

// Persoon is one person record. Kinderen and partners stay raw: the reducer
// only ever derives existence from them.
type Persoon struct {
	Leeftijd int               `json:"leeftijd"`
	Kinderen []json.RawMessage `json:"kinderen"`
	Partners []json.RawMessage `json:"partners"`
}
