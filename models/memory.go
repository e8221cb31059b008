package models

import "time"

/*
	Payloads for the memory operations of the Alphahuman Memory API.
	Every request is scoped server-side to the bearer token that issued it,
	so a namespace partitions one caller's items rather than the global
	store.
*/

// MemoryItem is a single semantic memory record. Key is unique within a
// namespace. CreatedAt and UpdatedAt are populated by the server on read.
type MemoryItem struct {
	Key       string         `json:"key"`
	Content   string         `json:"content"`
	Namespace string         `json:"namespace,omitempty"` // server defaults to "default"
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
	UpdatedAt time.Time      `json:"updated_at,omitzero"`
}

type IngestRequest struct {
	Items []MemoryItem `json:"items"`
}

type IngestResponse struct {
	Ingested int `json:"ingested"`
	Updated  int `json:"updated"`
	Errors   int `json:"errors"`
}

// ReadRequest filters are passed through verbatim; combination semantics
// are owned by the server.
type ReadRequest struct {
	Key       string   `json:"key,omitempty"`
	Keys      []string `json:"keys,omitempty"`
	Namespace string   `json:"namespace,omitempty"`
}

type ReadResponse struct {
	Items []MemoryItem `json:"items"`
	Count int          `json:"count"`
}

// DeleteRequest selects items by key, keys, or DeleteAll. Namespace only
// scopes a selection; it is not a selector on its own.
type DeleteRequest struct {
	Key       string   `json:"key,omitempty"`
	Keys      []string `json:"keys,omitempty"`
	Namespace string   `json:"namespace,omitempty"`
	DeleteAll bool     `json:"delete_all,omitempty"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}
