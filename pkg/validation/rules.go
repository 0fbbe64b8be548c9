package validation

import "time"

// FieldErrors holds validation failure messages keyed by field. Its Error
// text is what the HTTP handler returns in a 400 response.
type FieldErrors struct {
	Errors map[string]string
}

func (e *FieldErrors) Error() string {
	msg := "validation failed"
	for field, detail := range e.Errors {
		msg += ": " + field + " " + detail
		break
	}
	return msg
}

// NewFieldErrors converts go-playground/validator errors into FieldErrors,
// storing the validator's whole message under the single key "_".
func NewFieldErrors(errs interface{ Error() string }) *FieldErrors {
	return &FieldErrors{Errors: map[string]string{"_": errs.Error()}}
}

// CoordinateRequest mirrors ridematch.Coordinate with validation tags.
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// PersonRequest carries the fields common to passengers and drivers.
type PersonRequest struct {
	ID                 string            `json:"id" validate:"required"`
	Name               string            `json:"name" validate:"required"`
	Gender             string            `json:"gender" validate:"required,gender"`
	Age                int               `json:"age" validate:"required,gte=18"`
	HomeCoordinate     CoordinateRequest `json:"home_coordinate" validate:"required"`
	LeavingEarly       bool              `json:"leaving_early"`
	EarlyDepartureTime *time.Time        `json:"early_departure_time,omitempty"`
}

// PassengerRequest is a PersonRequest plus passenger-only fields.
type PassengerRequest struct {
	PersonRequest
	NeedsRide        bool   `json:"needs_ride"`
	GenderPreference string `json:"gender_preference" validate:"omitempty,oneof=same_gender any"`
}

// DriverRequest is a PersonRequest plus driver-only fields.
type DriverRequest struct {
	PersonRequest
	CanDrive       bool `json:"can_drive"`
	AvailableSeats int  `json:"available_seats" validate:"gte=0"`
}

// WeightsRequest overrides the scoring weights field-wise.
type WeightsRequest struct {
	RouteEfficiency  *float64 `json:"route_efficiency,omitempty"`
	Detour           *float64 `json:"detour,omitempty"`
	GenderMatch      *float64 `json:"gender_match,omitempty"`
	AgeMatch         *float64 `json:"age_match,omitempty"`
	DriverPreference *float64 `json:"driver_preference,omitempty"`
	EarlyDeparture   *float64 `json:"early_departure,omitempty"`
}

// TimingConfigRequest overrides timing-related config.
type TimingConfigRequest struct {
	TrafficBufferMultiplier *float64 `json:"traffic_buffer_multiplier,omitempty"`
	LoadTimeMinutes         *float64 `json:"load_time_minutes,omitempty"`
}

// ConfigOverridesRequest is the partial config merged into the run's effective config.
type ConfigOverridesRequest struct {
	MaxDetourMiles          *float64             `json:"max_detour_miles,omitempty"`
	EnforceGenderPreference *bool                `json:"enforce_gender_preference,omitempty"`
	GroupByAgeRange         *float64             `json:"group_by_age_range,omitempty"`
	Timing                  *TimingConfigRequest `json:"timing,omitempty"`
	Weights                 *WeightsRequest      `json:"weights,omitempty"`
	PriorityOrder           []string             `json:"priority_order,omitempty"`
}

// MatchRequest is the JSON body accepted by POST /v1/match.
type MatchRequest struct {
	Passengers      []PassengerRequest      `json:"passengers" validate:"required,dive"`
	Drivers         []DriverRequest         `json:"drivers" validate:"required,dive"`
	EventLocation   CoordinateRequest       `json:"event_location" validate:"required"`
	Direction       string                  `json:"direction" validate:"required,direction"`
	EventStartTime  *time.Time              `json:"event_start_time,omitempty"`
	EventEndTime    *time.Time              `json:"event_end_time,omitempty"`
	ConfigOverrides *ConfigOverridesRequest `json:"config_overrides,omitempty"`
}
