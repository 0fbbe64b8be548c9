package ridematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_SinglePairOutbound(t *testing.T) {
	passengers := []Passenger{newPassenger("p1", 0.1)}
	drivers := []Driver{newDriver("d1", 0.1, 1)}

	mc := BuildContext(outboundEvent(), passengers, drivers, DefaultConfig())
	Assign(mc)

	require.Len(t, mc.Assignments["d1"], 1)
	assert.Equal(t, "p1", mc.Assignments["d1"][0])
	assert.False(t, mc.AvailablePassengers["p1"])
}

func TestAssign_CapacityCap(t *testing.T) {
	passengers := []Passenger{
		newPassenger("p1", 0.1),
		newPassenger("p2", 0.2),
		newPassenger("p3", 0.3),
	}
	drivers := []Driver{newDriver("d1", 0.3, 2)}

	mc := BuildContext(outboundEvent(), passengers, drivers, DefaultConfig())
	Assign(mc)

	assert.Len(t, mc.Assignments["d1"], 2)
	assert.Equal(t, 0, mc.AvailableSeats["d1"])

	unmatched := 0
	for _, p := range passengers {
		if mc.AvailablePassengers[p.ID] {
			unmatched++
		}
	}
	assert.Equal(t, 1, unmatched)
}

func TestAssign_EverybodyGetsARideWhenSeatsSuffice(t *testing.T) {
	passengers := []Passenger{
		newPassenger("p1", 0.05),
		newPassenger("p2", 0.10),
		newPassenger("p3", 0.15),
		newPassenger("p4", 0.20),
	}
	drivers := []Driver{
		newDriver("d1", 0.20, 2),
		newDriver("d2", 0.10, 2),
	}

	mc := BuildContext(outboundEvent(), passengers, drivers, DefaultConfig())
	Assign(mc)

	for _, p := range passengers {
		assert.Falsef(t, mc.AvailablePassengers[p.ID], "passenger %s should have been placed", p.ID)
	}
	assert.Len(t, mc.Assignments["d1"], 2)
	assert.Len(t, mc.Assignments["d2"], 2)
}

func TestAssign_EarlyDepartureHardReject(t *testing.T) {
	p := newPassenger("p1", 0.1)
	p.LeavingEarly = true
	d := newDriver("d1", 0.1, 1)
	d.LeavingEarly = false

	mc := BuildContext(outboundEvent(), []Passenger{p}, []Driver{d}, DefaultConfig())
	Assign(mc)

	assert.Empty(t, mc.Assignments["d1"])
	assert.True(t, mc.AvailablePassengers["p1"])
}

func TestAssign_InboundRespectsDetourLimit(t *testing.T) {
	passenger := newPassenger("p1", 5.0) // far enough to blow the detour budget
	driver := newDriver("d1", 0.1, 1)

	cfg := DefaultConfig()
	cfg.MaxDetourMiles = 1.0

	mc := BuildContext(inboundEvent(fixedEventStart()), []Passenger{passenger}, []Driver{driver}, cfg)
	Assign(mc)

	assert.Empty(t, mc.Assignments["d1"])
}

func TestFurthestFirstOrder_SortsByDirectDistanceDescending(t *testing.T) {
	drivers := []Driver{
		newDriver("near", 0.05, 1),
		newDriver("far", 0.5, 1),
	}
	mc := BuildContext(outboundEvent(), nil, drivers, DefaultConfig())

	order := furthestFirstOrder(mc)

	require.Len(t, order, 2)
	assert.Equal(t, "far", order[0])
	assert.Equal(t, "near", order[1])
}

func TestAssign_FurthestDriverPrioritizedOverCloserOne(t *testing.T) {
	// Only one passenger and two single-seat drivers at different distances;
	// the furthest driver is processed first and should claim the rider.
	passengers := []Passenger{newPassenger("p1", 0.5)}
	drivers := []Driver{
		newDriver("near", 0.05, 1),
		newDriver("far", 0.5, 1),
	}

	mc := BuildContext(outboundEvent(), passengers, drivers, DefaultConfig())
	Assign(mc)

	assert.Len(t, mc.Assignments["far"], 1)
	assert.Empty(t, mc.Assignments["near"])
}
