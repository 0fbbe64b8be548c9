// Package locationprovider defines the collaborator interface the
// surrounding transport layer uses to resolve addresses before the matching
// core ever sees a request (spec.md §6). The core never calls this
// interface itself — it always computes its own distances via the Distance
// Oracle.
package locationprovider

import (
	"context"
	"fmt"

	"github.com/communityrides/ride-matcher/internal/ridematch"
)

// GeocodeResult is a resolved address.
type GeocodeResult struct {
	Coordinate       ridematch.Coordinate
	FormattedAddress string
}

// Provider resolves addresses to coordinates and back.
type Provider interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
	ReverseGeocode(ctx context.Context, coord ridematch.Coordinate) (*GeocodeResult, error)
}

// NoopProvider is an in-memory stand-in used for local development and
// tests, grounded on the teacher's internal/maps package boundary: the
// matcher core does not need a concrete geocoding backend, only the
// interface. A production caller wires an internal/maps-style adapter.
type NoopProvider struct{}

// NewNoopProvider constructs a NoopProvider.
func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

// Geocode always fails: this provider carries no real geocoding backend.
func (NoopProvider) Geocode(_ context.Context, address string) (*GeocodeResult, error) {
	return nil, fmt.Errorf("locationprovider: no geocoding backend configured for address %q", address)
}

// ReverseGeocode always fails: this provider carries no real geocoding backend.
func (NoopProvider) ReverseGeocode(_ context.Context, coord ridematch.Coordinate) (*GeocodeResult, error) {
	return nil, fmt.Errorf("locationprovider: no geocoding backend configured for coordinate (%f, %f)", coord.Lat, coord.Lng)
}
