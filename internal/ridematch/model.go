// Package ridematch implements the community-event carpool matching engine:
// distance matrix construction, multi-criterion scoring, phased assignment,
// nearest-neighbor stop ordering, and backward timing for inbound trips.
package ridematch

import (
	"time"

	"github.com/google/uuid"
)

// Direction is the trip direction for a matching run.
type Direction string

const (
	// Outbound is FROM_EVENT: drivers leave the event and drop passengers home.
	Outbound Direction = "FROM_EVENT"
	// Inbound is TO_EVENT: drivers pick passengers up at home and arrive at the event.
	Inbound Direction = "TO_EVENT"
)

// Gender enumerates the person attribute used by GenderMatcher.
type Gender string

const (
	GenderMale          Gender = "male"
	GenderFemale        Gender = "female"
	GenderNonBinary     Gender = "non_binary"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// GenderPreference is a passenger's driver-gender requirement.
type GenderPreference string

const (
	PreferenceSameGender GenderPreference = "same_gender"
	PreferenceAny        GenderPreference = "any"
)

// EventSentinelID is the identifier the distance matrix uses for the event
// location itself.
const EventSentinelID = "event"

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Person holds the attributes shared by passengers and drivers.
type Person struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Gender             Gender     `json:"gender"`
	Age                int        `json:"age"`
	HomeCoordinate     *Coordinate `json:"home_coordinate,omitempty"`
	LeavingEarly       bool       `json:"leaving_early"`
	EarlyDepartureTime *time.Time `json:"early_departure_time,omitempty"`
}

// Passenger is a person requesting a ride.
type Passenger struct {
	Person
	NeedsRide        bool             `json:"needs_ride"`
	GenderPreference GenderPreference `json:"gender_preference,omitempty"`
}

// Driver is a person offering seats.
type Driver struct {
	Person
	CanDrive       bool `json:"can_drive"`
	AvailableSeats int  `json:"available_seats"`
}

// EventContext describes the event a matching run is organized around.
type EventContext struct {
	Coordinate Coordinate `json:"coordinate"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Direction  Direction  `json:"direction"`
}

// TimingConfig tunes the Distance Oracle and Timing Planner.
type TimingConfig struct {
	TrafficBufferMultiplier float64
	LoadTimeMinutes         float64
}

// Weights are the per-matcher contributions to the aggregate score. They
// should sum to ~1.0 when persisted; MatchingConfig itself does not enforce
// this at construction time (only config persistence does, per spec).
type Weights struct {
	RouteEfficiency  float64
	Detour           float64
	GenderMatch      float64
	AgeMatch         float64
	DriverPreference float64
	EarlyDeparture   float64
}

// MatchingConfig controls one matching run.
type MatchingConfig struct {
	MaxDetourMiles          float64
	EnforceGenderPreference bool
	GroupByAgeRange         float64
	Timing                  TimingConfig
	Weights                 Weights
	// PriorityOrder records matcher evaluation order for metadata/reporting;
	// it does not change the hard-coded evaluation order inside the
	// aggregator (spec.md §4.4), only what's surfaced to callers.
	PriorityOrder []string
}

// Sum returns the sum of all weight fields, used by config
// persistence validation (spec.md §7 - validation at save time, not per call).
func (w Weights) Sum() float64 {
	return w.RouteEfficiency + w.Detour + w.GenderMatch + w.AgeMatch + w.DriverPreference + w.EarlyDeparture
}

// MatcherContext is the immutable + mutable state shared by one matching
// call. Only the Assignment Engine mutates the ledger section; matchers are
// read-only over it.
type MatcherContext struct {
	// Immutable section.
	Event    EventContext
	Config   MatchingConfig
	Index    map[string]int
	Distance [][]float64 // miles, from Index[a] to Index[b]

	DriverDirectDistance map[string]float64 // miles

	Passengers map[string]*Passenger
	Drivers    map[string]*Driver
	// PassengerOrder and DriverOrder preserve input enumeration order for
	// deterministic tie-breaking (spec.md §4.4: "ties broken by preserving
	// the order in which passengers are enumerated").
	PassengerOrder []string
	DriverOrder    []string

	// Mutable ledger, owned exclusively by the Assignment Engine.
	AvailablePassengers map[string]bool
	AvailableSeats      map[string]int
	Assignments         map[string][]string // driverID -> ordered passenger IDs

	// RejectionTrace records, per passenger, whether every hard reject seen
	// during scoring was the inbound TimingMatcher's implicit-pickup-hour
	// reject. It drives the cannot_arrive_on_time refinement (spec.md §9)
	// and is otherwise unused.
	RejectionTrace map[string]*RejectionTrace
}

// RejectionTrace tracks hard-reject causes encountered for one passenger
// across every driver it was scored against during a run.
type RejectionTrace struct {
	SawTimingReject bool
	SawOtherReject  bool
}

// TimingRejectedOnly reports whether this passenger was hard-rejected at
// least once, and every hard reject encountered was TimingMatcher's.
func (t *RejectionTrace) TimingRejectedOnly() bool {
	return t != nil && t.SawTimingReject && !t.SawOtherReject
}

// DistAt returns the distance in miles between two identifiers in the
// matrix, or +Inf if either is unknown.
func (mc *MatcherContext) DistAt(a, b string) float64 {
	ia, ok := mc.Index[a]
	if !ok {
		return posInf
	}
	ib, ok := mc.Index[b]
	if !ok {
		return posInf
	}
	return mc.Distance[ia][ib]
}

// Waypoint is one stop in a ride group's optimized route.
type Waypoint struct {
	PassengerID        string  `json:"passenger_id"`
	StopOrder          int     `json:"stop_order"`
	DropOffOrder       *int    `json:"drop_off_order,omitempty"`
	PickupOrder        *int    `json:"pickup_order,omitempty"`
	DetourAdded        float64 `json:"detour_added"`
	DistanceFromOrigin float64 `json:"distance_from_origin"`
}

// PassengerSchedule is one passenger's ready-by time within a group schedule.
type PassengerSchedule struct {
	PassengerID     string    `json:"passenger_id"`
	ShouldBeReadyBy time.Time `json:"should_be_ready_by"`
}

// GroupSchedule is the inbound-only timing result for a ride group.
type GroupSchedule struct {
	DriverDepartureTime time.Time           `json:"driver_departure_time"`
	PassengerTimes      []PassengerSchedule `json:"passenger_times"`
	EstimatedArrival    time.Time           `json:"estimated_arrival"`
}

// RideGroup is one driver with its ordered passengers.
type RideGroup struct {
	Driver             Driver         `json:"driver"`
	OrderedPassengers  []Passenger    `json:"ordered_passengers"`
	Direction          Direction      `json:"direction"`
	TotalRouteDistance float64        `json:"total_route_distance"`
	TotalDetour        float64        `json:"total_detour"`
	Waypoints          []Waypoint     `json:"waypoints"`
	Schedule           *GroupSchedule `json:"schedule,omitempty"`

	// CatchmentCells is descriptive-only H3 metadata (SPEC_FULL §4.8); it
	// never feeds back into scoring or assignment.
	CatchmentCells []string `json:"catchment_cells,omitempty"`
}

// UnmatchedPassenger records why a passenger could not be placed.
type UnmatchedPassenger struct {
	Passenger       Passenger `json:"passenger"`
	Reason          string    `json:"reason"`
	SuggestedAction string    `json:"suggested_action"`
}

// Unmatched reason taxonomy (spec.md §6, stable string values).
const (
	ReasonNoAvailableDrivers    = "no_available_drivers"
	ReasonExceedsDetourLimit    = "exceeds_detour_limit"
	ReasonGenderPreferenceUnmet = "gender_preference_unmet"
	ReasonNoSeatsAvailable      = "no_seats_available"
	ReasonCheckedInTooLate      = "checked_in_too_late"
	ReasonEarlyDepartureMismatch = "early_departure_mismatch"
	ReasonCannotArriveOnTime    = "cannot_arrive_on_time"
)

var suggestedActions = map[string]string{
	ReasonNoAvailableDrivers:     "Check back later or contact event organizers for alternate transportation.",
	ReasonExceedsDetourLimit:     "Consider a meeting point closer to other riders' routes.",
	ReasonGenderPreferenceUnmet:  "Relax the same-gender preference or wait for a matching driver.",
	ReasonNoSeatsAvailable:       "Wait for more drivers to register or arrange a private ride.",
	ReasonCheckedInTooLate:       "Arrive earlier next time to be matched before drivers fill up.",
	ReasonEarlyDepartureMismatch: "Coordinate with an early-leaving driver directly.",
	ReasonCannotArriveOnTime:     "Your home is too far from the event to arrive on time with available drivers.",
}

// SuggestedActionFor returns the human-readable action for a reason code.
func SuggestedActionFor(reason string) string {
	if action, ok := suggestedActions[reason]; ok {
		return action
	}
	return "Contact event organizers for assistance."
}

// MatchingMetadata summarizes a completed run.
type MatchingMetadata struct {
	TotalPassengers    int       `json:"total_passengers"`
	TotalDrivers       int       `json:"total_drivers"`
	MatchedPassengers  int       `json:"matched_passengers"`
	MatchedDrivers     int       `json:"matched_drivers"`
	MatchingDurationMs float64   `json:"matching_duration_ms"`
	AlgorithmVersion   string    `json:"algorithm_version"`
	PriorityOrder      []string  `json:"priority_order"`
	TripDirection      Direction `json:"trip_direction"`
}

// MatchingResult is the output of one Match call.
type MatchingResult struct {
	ID                  uuid.UUID           `json:"id"`
	TripDirection       Direction           `json:"trip_direction"`
	StartLocation       Coordinate          `json:"start_location"`
	EventStartTime      *time.Time          `json:"event_start_time,omitempty"`
	RideGroups          []RideGroup         `json:"ride_groups"`
	UnmatchedPassengers []UnmatchedPassenger `json:"unmatched_passengers"`
	UnmatchedDrivers    []Driver            `json:"unmatched_drivers"`
	Metadata            MatchingMetadata    `json:"metadata"`
}

const posInf = 1e18 // treated as +Infinity for distance-matrix purposes
