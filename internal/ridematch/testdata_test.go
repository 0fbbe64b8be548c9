package ridematch

import "time"

// Fixtures below place everyone on a rough east-west line through the event
// so straight-line distances are easy to reason about: each 0.1 degree of
// longitude at this latitude is roughly 5.3 straight-line miles, or about
// 7.4 road miles after the 1.4x road-distance factor.

func coord(lat, lng float64) *Coordinate {
	c := Coordinate{Lat: lat, Lng: lng}
	return &c
}

func newPassenger(id string, lng float64) Passenger {
	return Passenger{
		Person: Person{
			ID:             id,
			Name:           id,
			Gender:         GenderPreferNotToSay,
			Age:            30,
			HomeCoordinate: coord(40.0, lng),
		},
		NeedsRide:        true,
		GenderPreference: PreferenceAny,
	}
}

func newDriver(id string, lng float64, seats int) Driver {
	return Driver{
		Person: Person{
			ID:             id,
			Name:           id,
			Gender:         GenderPreferNotToSay,
			Age:            30,
			HomeCoordinate: coord(40.0, lng),
		},
		CanDrive:       true,
		AvailableSeats: seats,
	}
}

func outboundEvent() EventContext {
	return EventContext{Coordinate: Coordinate{Lat: 40.0, Lng: 0.0}, Direction: Outbound}
}

func inboundEvent(start time.Time) EventContext {
	t := start
	return EventContext{Coordinate: Coordinate{Lat: 40.0, Lng: 0.0}, Direction: Inbound, StartTime: &t}
}

// fixedEventStart is a deterministic 18:00 UTC event start time used
// across inbound fixtures so pickup-hour sanity checks behave predictably.
func fixedEventStart() time.Time {
	return time.Date(2026, time.August, 15, 18, 0, 0, 0, time.UTC)
}
