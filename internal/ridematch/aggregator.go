package ridematch

// RejectedByMatcher names the matcher responsible for a hard reject, used
// only to drive the unmatched-reason refinement in spec.md §9
// (cannot_arrive_on_time).
type RejectedByMatcher string

const (
	RejectedByNone            RejectedByMatcher = ""
	RejectedByTiming          RejectedByMatcher = "TimingMatcher"
	RejectedByRouteEfficiency RejectedByMatcher = "RouteEfficiencyMatcher"
	RejectedByGender          RejectedByMatcher = "GenderMatcher"
	RejectedByDetour          RejectedByMatcher = "DetourMatcher"
)

// ScoreOutcome is the Scoring Aggregator's verdict for one (passenger,
// driver) pair.
type ScoreOutcome struct {
	Score      float64
	HardReject bool
	RejectedBy RejectedByMatcher
}

// Score evaluates the scoring matchers for (p, d) against mc and applies the
// weighted sum, per spec.md §4.4. CapacityMatcher and EarlyDepartureMatcher
// are not called here; seats are enforced by the Assignment Engine.
// Evaluation order is Timing ->
// RouteEfficiency -> Gender, short-circuiting on the first hard reject.
// DetourMatcher's null result is coerced to 0.1 (soft) outbound and hard
// reject inbound. Age and DriverPreference never reject. EarlyDeparture
// does not enter the weighted sum (default weight 0).
func Score(p *Passenger, d *Driver, mc *MatcherContext) ScoreOutcome {
	timing := TimingMatcher(p, d, mc)
	if timing.Verdict == VerdictHardReject {
		return ScoreOutcome{HardReject: true, RejectedBy: RejectedByTiming}
	}

	route := RouteEfficiencyMatcher(p, d, mc)
	if route.Verdict == VerdictHardReject {
		return ScoreOutcome{HardReject: true, RejectedBy: RejectedByRouteEfficiency}
	}

	gender := GenderMatcher(p, d, mc)
	if gender.Verdict == VerdictHardReject {
		return ScoreOutcome{HardReject: true, RejectedBy: RejectedByGender}
	}

	detour := DetourMatcher(p, d, mc)
	switch detour.Verdict {
	case VerdictNull:
		if mc.Event.Direction == Inbound {
			return ScoreOutcome{HardReject: true, RejectedBy: RejectedByDetour}
		}
		detour = softPenalty(0.1)
	case VerdictHardReject:
		return ScoreOutcome{HardReject: true, RejectedBy: RejectedByDetour}
	}

	age := AgeMatcher(p, d, mc)
	pref := DriverPreferenceMatcher()

	w := mc.Config.Weights
	score := w.RouteEfficiency*route.Score +
		w.Detour*detour.Score +
		w.GenderMatch*gender.Score +
		w.AgeMatch*age.Score +
		w.DriverPreference*pref.Score

	return ScoreOutcome{Score: score}
}
