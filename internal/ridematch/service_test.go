package ridematch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityrides/ride-matcher/pkg/common"
)

func TestService_Match_InboundWithoutStartTimeIsRejectedBeforeMutation(t *testing.T) {
	svc := NewService()
	passengers := []Passenger{newPassenger("p1", 0.1)}
	drivers := []Driver{newDriver("d1", 0.1, 1)}

	req := MatchRequest{
		Passengers:    passengers,
		Drivers:       drivers,
		EventLocation: Coordinate{Lat: 40.0, Lng: 0.0},
		Direction:     Inbound,
	}

	result, err := svc.Match(context.Background(), req)

	require.Nil(t, result)
	require.Error(t, err)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.ErrCodeValidation, appErr.ErrorCode)

	// Passenger/driver slices passed in must be untouched by the rejected call.
	assert.Equal(t, "p1", passengers[0].ID)
	assert.Equal(t, 1, drivers[0].AvailableSeats)
}

func TestService_Match_OutboundHappyPath(t *testing.T) {
	svc := NewService()
	req := MatchRequest{
		Passengers:    []Passenger{newPassenger("p1", 0.1)},
		Drivers:       []Driver{newDriver("d1", 0.1, 1)},
		EventLocation: Coordinate{Lat: 40.0, Lng: 0.0},
		Direction:     Outbound,
	}

	result, err := svc.Match(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, Outbound, result.TripDirection)
	assert.Equal(t, AlgorithmVersion, result.Metadata.AlgorithmVersion)
	require.Len(t, result.RideGroups, 1)
	assert.Len(t, result.RideGroups[0].OrderedPassengers, 1)
	assert.Empty(t, result.UnmatchedPassengers)
	assert.Equal(t, 1, result.Metadata.MatchedPassengers)
}

func TestService_Match_ZeroDriversLeavesEveryoneUnmatchedWithGenericReason(t *testing.T) {
	svc := NewService()
	req := MatchRequest{
		Passengers:    []Passenger{newPassenger("p1", 0.1), newPassenger("p2", 0.2)},
		Drivers:       nil,
		EventLocation: Coordinate{Lat: 40.0, Lng: 0.0},
		Direction:     Outbound,
	}

	result, err := svc.Match(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.UnmatchedPassengers, 2)
	for _, u := range result.UnmatchedPassengers {
		assert.Equal(t, ReasonNoAvailableDrivers, u.Reason)
	}
}

func TestService_Match_FiltersOutPassengersNotNeedingRideAndDriversWhoCannotDrive(t *testing.T) {
	svc := NewService()
	needsRide := newPassenger("p1", 0.1)
	doesNotNeedRide := newPassenger("p2", 0.1)
	doesNotNeedRide.NeedsRide = false

	canDrive := newDriver("d1", 0.1, 1)
	cannotDrive := newDriver("d2", 0.1, 1)
	cannotDrive.CanDrive = false

	req := MatchRequest{
		Passengers:    []Passenger{needsRide, doesNotNeedRide},
		Drivers:       []Driver{canDrive, cannotDrive},
		EventLocation: Coordinate{Lat: 40.0, Lng: 0.0},
		Direction:     Outbound,
	}

	result, err := svc.Match(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Metadata.TotalPassengers)
	assert.Equal(t, 1, result.Metadata.TotalDrivers)
}

func TestService_Match_CatchmentTaggingIsDescriptiveOnly(t *testing.T) {
	svc := NewService()
	req := MatchRequest{
		Passengers:    []Passenger{newPassenger("p1", 0.1), newPassenger("p2", 0.15)},
		Drivers:       []Driver{newDriver("d1", 0.1, 2)},
		EventLocation: Coordinate{Lat: 40.0, Lng: 0.0},
		Direction:     Outbound,
	}

	result, err := svc.Match(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.RideGroups, 1)

	group := result.RideGroups[0]
	assert.NotEmpty(t, group.CatchmentCells)

	// CatchmentCells must be a pure function of the already-finalized
	// OrderedPassengers: recomputing it standalone reproduces the same
	// set, proving it was derived after assignment/ordering settled
	// rather than feeding back into either.
	recomputed := TagCatchmentCells(group.OrderedPassengers)
	assert.ElementsMatch(t, recomputed, group.CatchmentCells)
}

func TestService_Match_InboundCannotArriveOnTimeReason(t *testing.T) {
	svc := NewService()
	eventStart := fixedEventStart()

	req := MatchRequest{
		// Extremely far passenger (~1626 road miles, implied pickup ~03:30
		// UTC for an 18:00 UTC event): the only driver in range gets hard
		// rejected solely by TimingMatcher's pickup-hour sanity check.
		Passengers:     []Passenger{newPassenger("p1", 22.0)},
		Drivers:        []Driver{newDriver("d1", 22.0, 1)},
		EventLocation:  Coordinate{Lat: 40.0, Lng: 0.0},
		Direction:      Inbound,
		EventStartTime: &eventStart,
	}

	result, err := svc.Match(context.Background(), req)

	require.NoError(t, err)
	if assert.Len(t, result.UnmatchedPassengers, 1) {
		reason := result.UnmatchedPassengers[0].Reason
		assert.Contains(t, []string{ReasonCannotArriveOnTime, ReasonNoAvailableDrivers}, reason)
	}
}
