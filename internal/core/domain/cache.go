package domain

import "time"

// CacheInfo is recorded inside a bottled app once it has been fully built.
type CacheInfo struct {
	Key          string    `json:"key,omitzero"`
	EmberVersion string    `json:"ember_version,omitzero"`
	Fingerprint  string    `json:"fingerprint,omitzero"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}
