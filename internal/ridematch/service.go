package ridematch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/communityrides/ride-matcher/pkg/common"
	"github.com/communityrides/ride-matcher/pkg/logger"
	"go.uber.org/zap"
)

// AlgorithmVersion is surfaced in result metadata.
const AlgorithmVersion = "1.0.0"

// MatchRequest is the core operation's input, per spec.md §6.
type MatchRequest struct {
	Passengers      []Passenger
	Drivers         []Driver
	EventLocation   Coordinate
	Direction       Direction
	EventStartTime  *time.Time
	EventEndTime    *time.Time
	ConfigOverrides *ConfigOverrides
}

// Service is the orchestration layer implementing the Match operation.
type Service struct {
	baseConfig MatchingConfig
}

// NewService constructs a Service with the default matching configuration.
func NewService() *Service {
	return &Service{baseConfig: DefaultConfig()}
}

// Match runs one matching call end to end: validation, context building,
// assignment, route optimization, and (for inbound) timing. Input records
// are never mutated; output ride groups are fresh copies.
func (s *Service) Match(ctx context.Context, req MatchRequest) (*MatchingResult, error) {
	start := time.Now()

	if req.Direction == Inbound && req.EventStartTime == nil {
		return nil, common.NewValidationError("eventStartTime is required when direction is TO_EVENT")
	}

	cfg := Merge(s.baseConfig, req.ConfigOverrides)

	passengers := filterPassengers(req.Passengers)
	drivers := filterDrivers(req.Drivers)

	event := EventContext{
		Coordinate: req.EventLocation,
		StartTime:  req.EventStartTime,
		EndTime:    req.EventEndTime,
		Direction:  req.Direction,
	}

	mc := BuildContext(event, passengers, drivers, cfg)
	Assign(mc)

	rideGroups := make([]RideGroup, 0, len(drivers))
	for _, driverID := range mc.DriverOrder {
		rideGroups = append(rideGroups, buildRideGroup(mc, driverID, req.EventStartTime))
	}

	unmatchedPassengers := buildUnmatchedPassengers(mc, passengers, drivers, cfg)
	unmatchedDrivers := buildUnmatchedDrivers(mc, drivers)

	matchedPassengers := len(passengers) - len(unmatchedPassengers)
	matchedDrivers := len(drivers) - len(unmatchedDrivers)

	result := &MatchingResult{
		ID:                  uuid.New(),
		TripDirection:       req.Direction,
		StartLocation:       req.EventLocation,
		EventStartTime:      req.EventStartTime,
		RideGroups:          rideGroups,
		UnmatchedPassengers: unmatchedPassengers,
		UnmatchedDrivers:    unmatchedDrivers,
		Metadata: MatchingMetadata{
			TotalPassengers:    len(passengers),
			TotalDrivers:       len(drivers),
			MatchedPassengers:  matchedPassengers,
			MatchedDrivers:     matchedDrivers,
			MatchingDurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
			AlgorithmVersion:   AlgorithmVersion,
			PriorityOrder:      cfg.PriorityOrder,
			TripDirection:      req.Direction,
		},
	}

	logger.InfoContext(ctx, "matching run completed",
		zap.String("result_id", result.ID.String()),
		zap.String("direction", string(req.Direction)),
		zap.Int("total_passengers", result.Metadata.TotalPassengers),
		zap.Int("matched_passengers", result.Metadata.MatchedPassengers),
		zap.Int("total_drivers", result.Metadata.TotalDrivers),
		zap.Float64("duration_ms", result.Metadata.MatchingDurationMs),
	)

	return result, nil
}

func filterPassengers(in []Passenger) []Passenger {
	out := make([]Passenger, 0, len(in))
	for _, p := range in {
		if p.NeedsRide {
			out = append(out, p)
		}
	}
	return out
}

func filterDrivers(in []Driver) []Driver {
	out := make([]Driver, 0, len(in))
	for _, d := range in {
		if d.CanDrive && d.AvailableSeats > 0 {
			out = append(out, d)
		}
	}
	return out
}

func buildRideGroup(mc *MatcherContext, driverID string, eventStart *time.Time) RideGroup {
	driver := *mc.Drivers[driverID]
	group := RideGroup{
		Driver:    driver,
		Direction: mc.Event.Direction,
	}

	assigned := mc.Assignments[driverID]
	if len(assigned) == 0 {
		return group
	}

	route := OptimizeRoute(mc, driverID)
	_, destination := routeEndpoints(mc.Event.Direction, driverID)
	lastStop := route.PassengerOrder[len(route.PassengerOrder)-1]
	totalRouteDistance := route.TotalDistance + mc.DistAt(lastStop, destination)

	group.Waypoints = route.Waypoints
	group.TotalRouteDistance = totalRouteDistance
	group.TotalDetour = totalRouteDistance - mc.DriverDirectDistance[driverID]

	orderedPassengers := make([]Passenger, 0, len(route.PassengerOrder))
	for _, passengerID := range route.PassengerOrder {
		orderedPassengers = append(orderedPassengers, *mc.Passengers[passengerID])
	}
	group.OrderedPassengers = orderedPassengers
	group.CatchmentCells = TagCatchmentCells(orderedPassengers)

	if mc.Event.Direction == Inbound && eventStart != nil {
		schedule := PlanTiming(mc, driverID, route.PassengerOrder, *eventStart)
		group.Schedule = &schedule
	}

	return group
}

func buildUnmatchedDrivers(mc *MatcherContext, drivers []Driver) []Driver {
	var out []Driver
	for _, d := range drivers {
		if len(mc.Assignments[d.ID]) == 0 {
			out = append(out, d)
		}
	}
	return out
}

// buildUnmatchedPassengers applies the four-rule reason-selection order
// from spec.md §6, refined by the cannot_arrive_on_time resolution in §9.
func buildUnmatchedPassengers(mc *MatcherContext, passengers []Passenger, drivers []Driver, cfg MatchingConfig) []UnmatchedPassenger {
	anyDriverLeavingEarly := false
	totalRemainingSeats := 0
	for _, d := range drivers {
		if d.LeavingEarly {
			anyDriverLeavingEarly = true
		}
		totalRemainingSeats += mc.AvailableSeats[d.ID]
	}

	var out []UnmatchedPassenger
	for _, passengerID := range mc.PassengerOrder {
		if !mc.AvailablePassengers[passengerID] {
			continue
		}
		p := *mc.Passengers[passengerID]

		reason := selectUnmatchedReason(mc, p, drivers, cfg, anyDriverLeavingEarly, totalRemainingSeats)
		out = append(out, UnmatchedPassenger{
			Passenger:       p,
			Reason:          reason,
			SuggestedAction: SuggestedActionFor(reason),
		})
	}
	return out
}

func selectUnmatchedReason(mc *MatcherContext, p Passenger, drivers []Driver, cfg MatchingConfig, anyDriverLeavingEarly bool, totalRemainingSeats int) string {
	if mc.Event.Direction == Outbound && p.LeavingEarly && !anyDriverLeavingEarly {
		return ReasonEarlyDepartureMismatch
	}

	// With no drivers at all, "no seats" is a degenerate reading of rule 2;
	// fall through to the generic no_available_drivers bucket instead
	// (spec.md §9 empty-input behavior).
	if len(drivers) > 0 && totalRemainingSeats == 0 {
		return ReasonNoSeatsAvailable
	}

	if len(drivers) > 0 && cfg.EnforceGenderPreference && p.GenderPreference == PreferenceSameGender {
		noSameGenderSeats := true
		for _, d := range drivers {
			if mc.AvailableSeats[d.ID] <= 0 {
				continue
			}
			if d.Gender == p.Gender || d.Gender == GenderPreferNotToSay || p.Gender == GenderPreferNotToSay {
				noSameGenderSeats = false
				break
			}
		}
		if noSameGenderSeats {
			return ReasonGenderPreferenceUnmet
		}
	}

	if mc.Event.Direction == Inbound {
		if trace := mc.RejectionTrace[p.ID]; trace.TimingRejectedOnly() {
			return ReasonCannotArriveOnTime
		}
	}

	return ReasonNoAvailableDrivers
}
