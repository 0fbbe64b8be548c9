package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_RejectsBadLatitude(t *testing.T) {
	req := MatchRequest{
		Passengers:    []PassengerRequest{},
		Drivers:       []DriverRequest{},
		EventLocation: CoordinateRequest{Latitude: 200, Longitude: 0},
		Direction:     "FROM_EVENT",
	}

	err := ValidateStruct(req)
	assert.Error(t, err)
}

func TestValidateStruct_RejectsBadDirection(t *testing.T) {
	req := MatchRequest{
		EventLocation: CoordinateRequest{Latitude: 37.7, Longitude: -122.4},
		Direction:     "SIDEWAYS",
	}

	err := ValidateStruct(req)
	assert.Error(t, err)
}

func TestValidateStruct_AcceptsValidRequest(t *testing.T) {
	req := MatchRequest{
		Passengers: []PassengerRequest{
			{
				PersonRequest: PersonRequest{
					ID:             "p1",
					Name:           "Alice",
					Gender:         "female",
					Age:            30,
					HomeCoordinate: CoordinateRequest{Latitude: 37.7, Longitude: -122.4},
				},
				NeedsRide:        true,
				GenderPreference: "any",
			},
		},
		Drivers: []DriverRequest{
			{
				PersonRequest: PersonRequest{
					ID:             "d1",
					Name:           "Bob",
					Gender:         "male",
					Age:            40,
					HomeCoordinate: CoordinateRequest{Latitude: 37.8, Longitude: -122.3},
				},
				CanDrive:       true,
				AvailableSeats: 3,
			},
		},
		EventLocation: CoordinateRequest{Latitude: 37.75, Longitude: -122.35},
		Direction:     "FROM_EVENT",
	}

	err := ValidateStruct(req)
	assert.NoError(t, err)
}
