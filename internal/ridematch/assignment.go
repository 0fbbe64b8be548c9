package ridematch

import "sort"

// scoredCandidate pairs a passenger with its aggregate score against one
// driver, carrying its original enumeration index for stable tie-breaking.
type scoredCandidate struct {
	passengerID string
	score       float64
	index       int
}

// Assign runs the phased assignment engine over mc, mutating its ledger
// (AvailablePassengers, AvailableSeats, Assignments) per spec.md §4.5.
func Assign(mc *MatcherContext) {
	driverOrder := furthestFirstOrder(mc)

	if mc.Event.Direction == Outbound {
		assignOutbound(mc, driverOrder)
		return
	}
	assignInbound(mc, driverOrder)
}

// furthestFirstOrder sorts driver IDs by driverDirectDistance descending,
// tie-broken by the count of same-gender-preferring passengers each driver
// is gender-compatible with (materialized once, per the design note in
// spec.md §9).
func furthestFirstOrder(mc *MatcherContext) []string {
	genderMatchCount := make(map[string]int, len(mc.DriverOrder))
	for _, driverID := range mc.DriverOrder {
		driver := mc.Drivers[driverID]
		count := 0
		for _, passengerID := range mc.PassengerOrder {
			p := mc.Passengers[passengerID]
			if p.GenderPreference != PreferenceSameGender {
				continue
			}
			if p.Gender == driver.Gender || p.Gender == GenderPreferNotToSay || driver.Gender == GenderPreferNotToSay {
				count++
			}
		}
		genderMatchCount[driverID] = count
	}

	ordered := make([]string, len(mc.DriverOrder))
	copy(ordered, mc.DriverOrder)

	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := ordered[i], ordered[j]
		ddi, ddj := mc.DriverDirectDistance[di], mc.DriverDirectDistance[dj]
		if ddi != ddj {
			return ddi > ddj
		}
		return genderMatchCount[di] > genderMatchCount[dj]
	})

	return ordered
}

func assignOutbound(mc *MatcherContext, driverOrder []string) {
	var early, normal []string
	for _, id := range driverOrder {
		if mc.Drivers[id].LeavingEarly {
			early = append(early, id)
		} else {
			normal = append(normal, id)
		}
	}

	for _, driverID := range early {
		processOutboundDriver(mc, driverID, true)
	}
	for _, driverID := range normal {
		processOutboundDriver(mc, driverID, false)
	}

	sweepOutbound(mc)
}

func processOutboundDriver(mc *MatcherContext, driverID string, leavingEarly bool) {
	driver := mc.Drivers[driverID]
	candidates := scoreCandidates(mc, driverID, func(p *Passenger) bool {
		return p.LeavingEarly == leavingEarly
	})

	for _, c := range candidates {
		if mc.AvailableSeats[driverID] <= 0 {
			break
		}
		if c.score <= 0 {
			break
		}
		assignPassenger(mc, driverID, c.passengerID)
		_ = driver
	}
}

// sweepOutbound guarantees every remaining non-early passenger a ride when
// feasible, by picking the driver (among non-early drivers with seats) whose
// incremental total detour would be smallest. Pure minimization objective,
// not a filter (spec.md §9).
func sweepOutbound(mc *MatcherContext) {
	for _, passengerID := range mc.PassengerOrder {
		if !mc.AvailablePassengers[passengerID] {
			continue
		}
		p := mc.Passengers[passengerID]
		if p.LeavingEarly {
			continue
		}

		bestDriver := ""
		bestIncrement := posInf
		for _, driverID := range mc.DriverOrder {
			if mc.Drivers[driverID].LeavingEarly {
				continue
			}
			if mc.AvailableSeats[driverID] <= 0 {
				continue
			}
			increment := incrementalDetour(mc, driverID, passengerID)
			if increment < bestIncrement {
				bestIncrement = increment
				bestDriver = driverID
			}
		}

		if bestDriver != "" {
			assignPassenger(mc, bestDriver, passengerID)
		}
	}
}

func assignInbound(mc *MatcherContext, driverOrder []string) {
	for _, driverID := range driverOrder {
		candidates := scoreCandidates(mc, driverID, func(*Passenger) bool { return true })

		for _, c := range candidates {
			if mc.AvailableSeats[driverID] <= 0 {
				break
			}
			if c.score <= 0 {
				continue
			}
			if wouldExceedDetour(mc, driverID, c.passengerID) {
				continue
			}
			assignPassenger(mc, driverID, c.passengerID)
		}
	}
}

// scoreCandidates scores every currently-available passenger matching
// filter against driverID, dropping hard rejects, and returns them sorted
// descending by score with ties broken by enumeration order.
func scoreCandidates(mc *MatcherContext, driverID string, filter func(*Passenger) bool) []scoredCandidate {
	driver := mc.Drivers[driverID]
	var out []scoredCandidate

	for i, passengerID := range mc.PassengerOrder {
		if !mc.AvailablePassengers[passengerID] {
			continue
		}
		p := mc.Passengers[passengerID]
		if !filter(p) {
			continue
		}
		outcome := Score(p, driver, mc)
		if outcome.HardReject {
			recordRejection(mc, passengerID, outcome.RejectedBy)
			continue
		}
		out = append(out, scoredCandidate{passengerID: passengerID, score: outcome.Score, index: i})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].index < out[j].index
	})

	return out
}

// recordRejection updates the passenger's rejection trace with a hard
// reject cause, used by the cannot_arrive_on_time refinement (spec.md §9).
func recordRejection(mc *MatcherContext, passengerID string, reason RejectedByMatcher) {
	trace, ok := mc.RejectionTrace[passengerID]
	if !ok {
		trace = &RejectionTrace{}
		mc.RejectionTrace[passengerID] = trace
	}
	if reason == RejectedByTiming {
		trace.SawTimingReject = true
	} else {
		trace.SawOtherReject = true
	}
}

// incrementalDetour is the extra route distance driverID would incur by
// appending passengerID to its current assignment order.
func incrementalDetour(mc *MatcherContext, driverID, passengerID string) float64 {
	origin, destination := routeEndpoints(mc.Event.Direction, driverID)
	current := mc.Assignments[driverID]
	without := routeDistance(mc, origin, current, destination)
	with := routeDistance(mc, origin, append(append([]string{}, current...), passengerID), destination)
	return with - without
}

// wouldExceedDetour reports whether appending passengerID to driverID's
// current assignment would push total detour beyond maxDetourMiles.
func wouldExceedDetour(mc *MatcherContext, driverID, passengerID string) bool {
	origin, destination := routeEndpoints(mc.Event.Direction, driverID)
	current := mc.Assignments[driverID]
	with := routeDistance(mc, origin, append(append([]string{}, current...), passengerID), destination)
	totalDetour := with - mc.DriverDirectDistance[driverID]
	return totalDetour > mc.Config.MaxDetourMiles
}

// assignPassenger mutates the ledger: removes the passenger from the
// available set, appends it to the driver's assignment, and decrements
// seats.
func assignPassenger(mc *MatcherContext, driverID, passengerID string) {
	mc.AvailablePassengers[passengerID] = false
	mc.Assignments[driverID] = append(mc.Assignments[driverID], passengerID)
	mc.AvailableSeats[driverID]--
}
