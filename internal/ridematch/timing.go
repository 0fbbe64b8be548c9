package ridematch

import "time"

// safetyBufferMinutes is the fixed buffer subtracted from driver departure
// time (spec.md §4.7).
const safetyBufferMinutes = 10.0

// estimatedArrivalBufferMinutes is how far ahead of event start a driver is
// assumed to arrive.
const estimatedArrivalBufferMinutes = 5.0

// PlanTiming computes the inbound-only backward schedule for an ordered ride
// group, per spec.md §4.7. passengerOrder is the route-optimizer's final
// stop order (nearest neighbor from the driver's home; index N-1 is the
// final pickup before heading to the event).
func PlanTiming(mc *MatcherContext, driverID string, passengerOrder []string, eventStart time.Time) GroupSchedule {
	n := len(passengerOrder)
	cfg := mc.Config.Timing

	schedule := GroupSchedule{
		PassengerTimes: make([]PassengerSchedule, 0, n),
	}

	for k, passengerID := range passengerOrder {
		distToEvent := distanceThroughRemainder(mc, passengerOrder, k, EventSentinelID)
		speed := dynamicSpeedMph(distToEvent)
		travelMin := (distToEvent / speed) * 60.0 * cfg.TrafficBufferMultiplier
		loadBuf := float64(n-1-k) * cfg.LoadTimeMinutes

		readyBy := eventStart.Add(-time.Duration((travelMin + loadBuf) * float64(time.Minute)))
		schedule.PassengerTimes = append(schedule.PassengerTimes, PassengerSchedule{
			PassengerID:     passengerID,
			ShouldBeReadyBy: readyBy,
		})
	}

	totalRoute := routeDistance(mc, driverID, passengerOrder, EventSentinelID)
	totalSpeed := dynamicSpeedMph(totalRoute)
	totalTravelMin := (totalRoute / totalSpeed) * 60.0 * cfg.TrafficBufferMultiplier
	departure := eventStart.
		Add(-time.Duration(totalTravelMin * float64(time.Minute))).
		Add(-time.Duration(float64(n) * cfg.LoadTimeMinutes * float64(time.Minute))).
		Add(-time.Duration(safetyBufferMinutes * float64(time.Minute)))

	schedule.DriverDepartureTime = departure
	schedule.EstimatedArrival = eventStart.Add(-time.Duration(estimatedArrivalBufferMinutes * float64(time.Minute)))

	return schedule
}

// distanceThroughRemainder sums matrix distances from passengerOrder[k]
// through the later passengers in the route to destination.
func distanceThroughRemainder(mc *MatcherContext, passengerOrder []string, k int, destination string) float64 {
	if k >= len(passengerOrder) {
		return 0
	}
	total := 0.0
	for i := k; i < len(passengerOrder)-1; i++ {
		total += mc.DistAt(passengerOrder[i], passengerOrder[i+1])
	}
	total += mc.DistAt(passengerOrder[len(passengerOrder)-1], destination)
	return total
}
