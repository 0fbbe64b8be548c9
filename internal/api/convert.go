// Package api adapts the HTTP transport to the matcher core: request
// binding and validation, DTO-to-domain conversion, and response shaping,
// grounded on the teacher's internal/rides handler layer.
package api

import (
	"github.com/communityrides/ride-matcher/internal/ridematch"
	"github.com/communityrides/ride-matcher/pkg/validation"
)

func toCoordinate(req validation.CoordinateRequest) ridematch.Coordinate {
	return ridematch.Coordinate{Lat: req.Latitude, Lng: req.Longitude}
}

func toPerson(req validation.PersonRequest) ridematch.Person {
	home := toCoordinate(req.HomeCoordinate)
	return ridematch.Person{
		ID:                 req.ID,
		Name:               req.Name,
		Gender:             ridematch.Gender(req.Gender),
		Age:                req.Age,
		HomeCoordinate:     &home,
		LeavingEarly:       req.LeavingEarly,
		EarlyDepartureTime: req.EarlyDepartureTime,
	}
}

func toPassenger(req validation.PassengerRequest) ridematch.Passenger {
	pref := ridematch.GenderPreference(req.GenderPreference)
	if pref == "" {
		pref = ridematch.PreferenceAny
	}
	return ridematch.Passenger{
		Person:           toPerson(req.PersonRequest),
		NeedsRide:        req.NeedsRide,
		GenderPreference: pref,
	}
}

func toDriver(req validation.DriverRequest) ridematch.Driver {
	return ridematch.Driver{
		Person:         toPerson(req.PersonRequest),
		CanDrive:       req.CanDrive,
		AvailableSeats: req.AvailableSeats,
	}
}

func toPassengers(reqs []validation.PassengerRequest) []ridematch.Passenger {
	out := make([]ridematch.Passenger, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toPassenger(r))
	}
	return out
}

func toDrivers(reqs []validation.DriverRequest) []ridematch.Driver {
	out := make([]ridematch.Driver, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toDriver(r))
	}
	return out
}

func toWeightsOverride(req *validation.WeightsRequest) *ridematch.WeightsOverride {
	if req == nil {
		return nil
	}
	return &ridematch.WeightsOverride{
		RouteEfficiency:  req.RouteEfficiency,
		Detour:           req.Detour,
		GenderMatch:      req.GenderMatch,
		AgeMatch:         req.AgeMatch,
		DriverPreference: req.DriverPreference,
		EarlyDeparture:   req.EarlyDeparture,
	}
}

func toTimingOverride(req *validation.TimingConfigRequest) *ridematch.TimingConfig {
	if req == nil {
		return nil
	}
	cfg := ridematch.DefaultConfig().Timing
	if req.TrafficBufferMultiplier != nil {
		cfg.TrafficBufferMultiplier = *req.TrafficBufferMultiplier
	}
	if req.LoadTimeMinutes != nil {
		cfg.LoadTimeMinutes = *req.LoadTimeMinutes
	}
	return &cfg
}

func toConfigOverrides(req *validation.ConfigOverridesRequest) *ridematch.ConfigOverrides {
	if req == nil {
		return nil
	}
	return &ridematch.ConfigOverrides{
		MaxDetourMiles:          req.MaxDetourMiles,
		EnforceGenderPreference: req.EnforceGenderPreference,
		GroupByAgeRange:         req.GroupByAgeRange,
		Timing:                  toTimingOverride(req.Timing),
		Weights:                 toWeightsOverride(req.Weights),
		PriorityOrder:           req.PriorityOrder,
	}
}

// toMatchRequest converts the validated HTTP body into the core's
// MatchRequest. Callers must run validation.ValidateStruct first.
func toMatchRequest(req validation.MatchRequest) ridematch.MatchRequest {
	return ridematch.MatchRequest{
		Passengers:      toPassengers(req.Passengers),
		Drivers:         toDrivers(req.Drivers),
		EventLocation:   toCoordinate(req.EventLocation),
		Direction:       ridematch.Direction(req.Direction),
		EventStartTime:  req.EventStartTime,
		EventEndTime:    req.EventEndTime,
		ConfigOverrides: toConfigOverrides(req.ConfigOverrides),
	}
}
