package ridematch

// DefaultConfig returns the baseline matching configuration. Weights sum to
// 1.0.
func DefaultConfig() MatchingConfig {
	return MatchingConfig{
		MaxDetourMiles:          5.0,
		EnforceGenderPreference: false,
		GroupByAgeRange:         10,
		Timing: TimingConfig{
			TrafficBufferMultiplier: 1.3,
			LoadTimeMinutes:         3,
		},
		Weights: Weights{
			RouteEfficiency:  0.35,
			Detour:           0.25,
			GenderMatch:      0.15,
			AgeMatch:         0.15,
			DriverPreference: 0.10,
			EarlyDeparture:   0.0,
		},
		PriorityOrder: []string{
			"TimingMatcher",
			"EarlyDepartureMatcher",
			"CapacityMatcher",
			"RouteEfficiencyMatcher",
			"DriverPreferenceMatcher",
			"DetourMatcher",
			"GenderMatcher",
			"AgeMatcher",
		},
	}
}

// WeightsOverride carries optional per-field weight overrides; a nil field
// leaves the base weight untouched (spec.md §6: weights merge field-wise).
type WeightsOverride struct {
	RouteEfficiency  *float64
	Detour           *float64
	GenderMatch      *float64
	AgeMatch         *float64
	DriverPreference *float64
	EarlyDeparture   *float64
}

// ConfigOverrides is a partial MatchingConfig. Nil/zero-value fields leave
// the base config untouched, except Weights (merged field-wise via
// WeightsOverride) and PriorityOrder (replaced wholesale when non-empty).
type ConfigOverrides struct {
	MaxDetourMiles          *float64
	EnforceGenderPreference *bool
	GroupByAgeRange         *float64
	Timing                  *TimingConfig
	Weights                 *WeightsOverride
	PriorityOrder           []string
}

// Merge applies overrides on top of base and returns the effective config.
// Per spec.md §6: weights merge field-wise, priorityOrder replaces
// wholesale, every other field replaces wholesale.
func Merge(base MatchingConfig, overrides *ConfigOverrides) MatchingConfig {
	cfg := base
	if overrides == nil {
		return cfg
	}

	if overrides.MaxDetourMiles != nil {
		cfg.MaxDetourMiles = *overrides.MaxDetourMiles
	}
	if overrides.EnforceGenderPreference != nil {
		cfg.EnforceGenderPreference = *overrides.EnforceGenderPreference
	}
	if overrides.GroupByAgeRange != nil {
		cfg.GroupByAgeRange = *overrides.GroupByAgeRange
	}
	if overrides.Timing != nil {
		cfg.Timing = *overrides.Timing
	}
	if overrides.Weights != nil {
		w := overrides.Weights
		if w.RouteEfficiency != nil {
			cfg.Weights.RouteEfficiency = *w.RouteEfficiency
		}
		if w.Detour != nil {
			cfg.Weights.Detour = *w.Detour
		}
		if w.GenderMatch != nil {
			cfg.Weights.GenderMatch = *w.GenderMatch
		}
		if w.AgeMatch != nil {
			cfg.Weights.AgeMatch = *w.AgeMatch
		}
		if w.DriverPreference != nil {
			cfg.Weights.DriverPreference = *w.DriverPreference
		}
		if w.EarlyDeparture != nil {
			cfg.Weights.EarlyDeparture = *w.EarlyDeparture
		}
	}
	if len(overrides.PriorityOrder) > 0 {
		cfg.PriorityOrder = overrides.PriorityOrder
	}

	return cfg
}

// ValidateWeightsForPersistence checks that weights sum within 0.01 of 1.0,
// per spec.md §7: this validation only applies when a config is persisted,
// not on every matching call.
func ValidateWeightsForPersistence(w Weights) bool {
	sum := w.Sum()
	const tolerance = 0.01
	return sum >= 1.0-tolerance && sum <= 1.0+tolerance
}
