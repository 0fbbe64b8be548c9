package ridematch

import "time"

// Verdict is the outcome category a matcher returns alongside its score.
// Modeling hard-reject as a distinct verdict (rather than a sentinel score
// value) keeps the aggregator's short-circuit logic explicit.
type Verdict int

const (
	VerdictAccept Verdict = iota
	VerdictSoftPenalty
	VerdictHardReject
	// VerdictNull marks a matcher that could not produce a meaningful score
	// (e.g. DetourMatcher with a non-positive maxDetourMiles or a driver
	// with no home coordinate). The aggregator coerces it per spec.md §4.4.
	VerdictNull
)

func accept(score float64) MatchResult      { return MatchResult{Score: score, Verdict: VerdictAccept} }
func softPenalty(score float64) MatchResult { return MatchResult{Score: score, Verdict: VerdictSoftPenalty} }
func hardReject() MatchResult               { return MatchResult{Score: 0, Verdict: VerdictHardReject} }
func nullResult() MatchResult               { return MatchResult{Score: 0, Verdict: VerdictNull} }

// MatchResult is one matcher's output for a (passenger, driver) pair.
type MatchResult struct {
	Score   float64
	Verdict Verdict
}

// TimingMatcher is priority 0.
func TimingMatcher(p *Passenger, d *Driver, mc *MatcherContext) MatchResult {
	if mc.Event.Direction == Outbound {
		return timingMatcherOutbound(p, d)
	}
	return timingMatcherInbound(p, mc)
}

func timingMatcherOutbound(p *Passenger, d *Driver) MatchResult {
	if p.LeavingEarly != d.LeavingEarly {
		return hardReject()
	}
	if !p.LeavingEarly {
		return accept(0.5)
	}
	if p.EarlyDepartureTime != nil && d.EarlyDepartureTime != nil && p.EarlyDepartureTime.Before(*d.EarlyDepartureTime) {
		return hardReject()
	}
	return accept(1.0)
}

func timingMatcherInbound(p *Passenger, mc *MatcherContext) MatchResult {
	if mc.Event.StartTime == nil {
		return accept(0.5)
	}
	eventStart := *mc.Event.StartTime
	distToEvent := mc.DistAt(p.ID, EventSentinelID)
	loadTime := time.Duration(mc.Config.Timing.LoadTimeMinutes * float64(time.Minute))
	travel := time.Duration(travelMinutes(distToEvent, mc.Config.Timing.TrafficBufferMultiplier) * float64(time.Minute))
	pickupTime := eventStart.Add(-travel).Add(-loadTime)

	eventHour := eventStart.UTC().Hour()
	pickupHour := pickupTime.UTC().Hour()

	if eventHour < 12 && pickupHour < 5 {
		return hardReject()
	}
	if eventHour >= 12 && pickupHour < 6 {
		return hardReject()
	}
	return accept(0.7)
}

// EarlyDepartureMatcher is priority 1. It is vestigial: its weight is 0 by
// default and its mismatch branch never actually applies because
// TimingMatcher already hard-rejects leavingEarly mismatches at priority 0.
// Kept per design note in spec.md §9.
func EarlyDepartureMatcher(p *Passenger, d *Driver, mc *MatcherContext) MatchResult {
	if mc.Event.Direction == Inbound {
		return accept(0.5)
	}
	switch {
	case p.LeavingEarly && d.LeavingEarly:
		return accept(1.0)
	case !p.LeavingEarly && !d.LeavingEarly:
		return accept(0.5)
	default:
		return accept(0.1)
	}
}

// CapacityMatcher is priority 2.
func CapacityMatcher(d *Driver, mc *MatcherContext) MatchResult {
	remaining := mc.AvailableSeats[d.ID]
	if remaining <= 0 {
		return hardReject()
	}
	fillRatio := float64(d.AvailableSeats-remaining) / float64(d.AvailableSeats)
	return accept(0.5 + 0.5*fillRatio)
}

// RouteEfficiencyMatcher is priority 3.
func RouteEfficiencyMatcher(p *Passenger, d *Driver, mc *MatcherContext) MatchResult {
	origin, destination := routeEndpoints(mc.Event.Direction, d.ID)
	directDistance := mc.DriverDirectDistance[d.ID]

	r := mc.DistAt(origin, p.ID) + mc.DistAt(p.ID, destination)
	if r >= posInf {
		return hardReject()
	}

	if mc.Event.Direction == Inbound && r-directDistance > mc.Config.MaxDetourMiles {
		return hardReject()
	}

	if r == 0 {
		return accept(1.0)
	}
	e := directDistance / r
	score := clamp((e-0.5)*2, 0, 1)
	return accept(score)
}

// DriverPreferenceMatcher is priority 4, reserved for future expansion.
func DriverPreferenceMatcher() MatchResult {
	return accept(0.5)
}

// DetourMatcher is priority 5.
func DetourMatcher(p *Passenger, d *Driver, mc *MatcherContext) MatchResult {
	directDistance := mc.DriverDirectDistance[d.ID]
	if directDistance >= posInf || mc.Config.MaxDetourMiles <= 0 {
		return nullResult()
	}

	origin, destination := routeEndpoints(mc.Event.Direction, d.ID)
	current := mc.Assignments[d.ID]

	withoutPassenger := routeDistance(mc, origin, current, destination)
	withPassenger := routeDistance(mc, origin, append(append([]string{}, current...), p.ID), destination)

	incrementalDetour := withPassenger - withoutPassenger
	totalDetour := withPassenger - directDistance

	if mc.Event.Direction == Inbound && totalDetour > mc.Config.MaxDetourMiles {
		return hardReject()
	}

	score := clamp(1-incrementalDetour/mc.Config.MaxDetourMiles, 0, 1)
	return accept(score)
}

// GenderMatcher is priority 6.
func GenderMatcher(p *Passenger, d *Driver, mc *MatcherContext) MatchResult {
	gendersCompatible := p.Gender == d.Gender ||
		p.Gender == GenderPreferNotToSay ||
		d.Gender == GenderPreferNotToSay

	if p.GenderPreference == PreferenceSameGender {
		if gendersCompatible {
			return accept(1.0)
		}
		if mc.Config.EnforceGenderPreference {
			return hardReject()
		}
		return softPenalty(0.2)
	}

	if gendersCompatible {
		return accept(1.0)
	}
	return accept(0.6)
}

// AgeMatcher is priority 7 and never rejects.
func AgeMatcher(p *Passenger, d *Driver, mc *MatcherContext) MatchResult {
	delta := float64(p.Age - d.Age)
	if delta < 0 {
		delta = -delta
	}
	if mc.Config.GroupByAgeRange > 0 && delta <= mc.Config.GroupByAgeRange {
		return accept(1 - 0.5*delta/mc.Config.GroupByAgeRange)
	}
	over := delta - mc.Config.GroupByAgeRange
	score := 0.5 - over/50
	if score < 0.1 {
		score = 0.1
	}
	return accept(score)
}

// routeEndpoints returns the (origin, destination) identifiers a driver's
// route runs between, depending on trip direction (spec.md GLOSSARY).
func routeEndpoints(direction Direction, driverID string) (origin, destination string) {
	if direction == Outbound {
		return EventSentinelID, driverID
	}
	return driverID, EventSentinelID
}

// routeDistance sums consecutive leg distances from origin through stops
// (in the given order) to destination. An empty stops list collapses to the
// direct origin->destination distance.
func routeDistance(mc *MatcherContext, origin string, stops []string, destination string) float64 {
	if len(stops) == 0 {
		return mc.DistAt(origin, destination)
	}
	total := mc.DistAt(origin, stops[0])
	for i := 1; i < len(stops); i++ {
		total += mc.DistAt(stops[i-1], stops[i])
	}
	total += mc.DistAt(stops[len(stops)-1], destination)
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
