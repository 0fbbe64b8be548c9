package ridematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_HardRejectsShortCircuitBeforeWeighting(t *testing.T) {
	p := newPassenger("p1", 0.1)
	p.LeavingEarly = true
	d := newDriver("d1", 0.1, 1)
	d.LeavingEarly = false

	mc := BuildContext(outboundEvent(), []Passenger{p}, []Driver{d}, DefaultConfig())

	outcome := Score(mc.Passengers["p1"], mc.Drivers["d1"], mc)

	assert.True(t, outcome.HardReject)
	assert.Equal(t, RejectedByTiming, outcome.RejectedBy)
	assert.Zero(t, outcome.Score)
}

func TestScore_AcceptProducesWeightedSumWithinUnitRange(t *testing.T) {
	p := newPassenger("p1", 0.1)
	d := newDriver("d1", 0.1, 1)

	mc := BuildContext(outboundEvent(), []Passenger{p}, []Driver{d}, DefaultConfig())

	outcome := Score(mc.Passengers["p1"], mc.Drivers["d1"], mc)

	assert.False(t, outcome.HardReject)
	assert.GreaterOrEqual(t, outcome.Score, 0.0)
	assert.LessOrEqual(t, outcome.Score, 1.0)
}

func TestScore_DetourNullCoercesToSoftPenaltyOutbound(t *testing.T) {
	p := newPassenger("p1", 0.1)
	d := newDriver("d1", 0.1, 1)

	cfg := DefaultConfig()
	cfg.MaxDetourMiles = 0 // non-positive cap forces DetourMatcher's null result

	mc := BuildContext(outboundEvent(), []Passenger{p}, []Driver{d}, cfg)

	outcome := Score(mc.Passengers["p1"], mc.Drivers["d1"], mc)

	assert.False(t, outcome.HardReject)
}

func TestScore_DetourNullHardRejectsInbound(t *testing.T) {
	p := newPassenger("p1", 0.1)
	d := newDriver("d1", 0.1, 1)

	cfg := DefaultConfig()
	cfg.MaxDetourMiles = 0

	mc := BuildContext(inboundEvent(fixedEventStart()), []Passenger{p}, []Driver{d}, cfg)

	outcome := Score(mc.Passengers["p1"], mc.Drivers["d1"], mc)

	assert.True(t, outcome.HardReject)
	assert.Equal(t, RejectedByDetour, outcome.RejectedBy)
}

func TestScore_SameGenderPreferenceSoftPenaltyWhenNotEnforced(t *testing.T) {
	p := newPassenger("p1", 0.1)
	p.GenderPreference = PreferenceSameGender
	p.Gender = GenderFemale
	d := newDriver("d1", 0.1, 1)
	d.Gender = GenderMale

	cfg := DefaultConfig()
	cfg.EnforceGenderPreference = false
	mc := BuildContext(outboundEvent(), []Passenger{p}, []Driver{d}, cfg)

	outcome := Score(mc.Passengers["p1"], mc.Drivers["d1"], mc)

	assert.False(t, outcome.HardReject)
}

func TestScore_SameGenderPreferenceHardRejectsWhenEnforced(t *testing.T) {
	p := newPassenger("p1", 0.1)
	p.GenderPreference = PreferenceSameGender
	p.Gender = GenderFemale
	d := newDriver("d1", 0.1, 1)
	d.Gender = GenderMale

	cfg := DefaultConfig()
	cfg.EnforceGenderPreference = true
	mc := BuildContext(outboundEvent(), []Passenger{p}, []Driver{d}, cfg)

	outcome := Score(mc.Passengers["p1"], mc.Drivers["d1"], mc)

	assert.True(t, outcome.HardReject)
	assert.Equal(t, RejectedByGender, outcome.RejectedBy)
}
