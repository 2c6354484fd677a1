package registry

import (
	"context"
	"errors"
	"net/http"
	"time"
)

var (
	ErrNotFound = errors.New("not_found")
	ErrUpstream = errors.New("upstream_failed")
)

// Record is the shared response shape for all registry lookups.
type Record struct {
	Source         string `json:"source"`
	TaxID          string `json:"tax_id"`
	RegistrationID string `json:"registration_id,omitempty"`
	Name           string `json:"name"`
	LegalForm      string `json:"legal_form,omitempty"`
	Status         string `json:"status,omitempty"`
	Jurisdiction   string `json:"jurisdiction"`
	LegalAddress   string `json:"legal_address,omitempty"`
	RegisteredAt   string `json:"registered_at,omitempty"`
	Raw            any    `json:"raw,omitempty"`
}

// Lookup is implemented by every registry client.
type Lookup interface {
	Lookup(ctx context.Context, id string) (*Record, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
