package ridematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTiming_ReadyByTimesPrecedeEventStart(t *testing.T) {
	eventStart := fixedEventStart()
	passengerOrder := []string{"near", "far"}

	passengers := []Passenger{
		newPassenger("near", 0.1),
		newPassenger("far", 0.3),
	}
	driver := newDriver("d1", 0.3, 2)

	mc := BuildContext(inboundEvent(eventStart), passengers, []Driver{driver}, DefaultConfig())

	schedule := PlanTiming(mc, "d1", passengerOrder, eventStart)

	require.Len(t, schedule.PassengerTimes, 2)
	for _, pt := range schedule.PassengerTimes {
		assert.Truef(t, pt.ShouldBeReadyBy.Before(eventStart), "passenger %s should be ready before the event starts", pt.PassengerID)
	}

	assert.True(t, schedule.DriverDepartureTime.Before(schedule.PassengerTimes[0].ShouldBeReadyBy))
	assert.True(t, schedule.EstimatedArrival.Before(eventStart))
}

func TestPlanTiming_LaterPickupsHaveLaterReadyByTimes(t *testing.T) {
	eventStart := fixedEventStart()
	// "near" is picked up last (closest to the event); it should have the
	// latest ready-by time of the two.
	passengerOrder := []string{"far", "near"}

	passengers := []Passenger{
		newPassenger("far", 0.3),
		newPassenger("near", 0.1),
	}
	driver := newDriver("d1", 0.3, 2)

	mc := BuildContext(inboundEvent(eventStart), passengers, []Driver{driver}, DefaultConfig())

	schedule := PlanTiming(mc, "d1", passengerOrder, eventStart)

	require.Len(t, schedule.PassengerTimes, 2)
	farReady := schedule.PassengerTimes[0].ShouldBeReadyBy
	nearReady := schedule.PassengerTimes[1].ShouldBeReadyBy

	assert.True(t, farReady.Before(nearReady))
}
