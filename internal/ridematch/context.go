package ridematch

// BuildContext constructs a MatcherContext for one matching run. Callers
// must pre-filter passengers to NeedsRide and drivers to CanDrive with
// AvailableSeats > 0 (spec.md §4.2). Complexity is O((P+D+1)^2) distance
// computations.
func BuildContext(event EventContext, passengers []Passenger, drivers []Driver, cfg MatchingConfig) *MatcherContext {
	mc := &MatcherContext{
		Event:                event,
		Config:               cfg,
		Index:                make(map[string]int),
		DriverDirectDistance: make(map[string]float64),
		Passengers:           make(map[string]*Passenger),
		Drivers:              make(map[string]*Driver),
		AvailablePassengers:  make(map[string]bool),
		AvailableSeats:       make(map[string]int),
		Assignments:          make(map[string][]string),
		RejectionTrace:       make(map[string]*RejectionTrace),
	}

	ids := make([]string, 0, len(passengers)+len(drivers)+1)
	coords := make([]*Coordinate, 0, len(passengers)+len(drivers)+1)

	ids = append(ids, EventSentinelID)
	eventCoord := event.Coordinate
	coords = append(coords, &eventCoord)

	for i := range passengers {
		p := &passengers[i]
		mc.Passengers[p.ID] = p
		mc.PassengerOrder = append(mc.PassengerOrder, p.ID)
		ids = append(ids, p.ID)
		coords = append(coords, p.HomeCoordinate)
		mc.AvailablePassengers[p.ID] = true
	}

	for i := range drivers {
		d := &drivers[i]
		mc.Drivers[d.ID] = d
		mc.DriverOrder = append(mc.DriverOrder, d.ID)
		ids = append(ids, d.ID)
		coords = append(coords, d.HomeCoordinate)
		mc.AvailableSeats[d.ID] = d.AvailableSeats
	}

	for idx, id := range ids {
		mc.Index[id] = idx
	}

	n := len(ids)
	mc.Distance = make([][]float64, n)
	for i := range mc.Distance {
		mc.Distance[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				mc.Distance[i][j] = 0
				continue
			}
			d := distanceBetween(coords[i], coords[j])
			mc.Distance[i][j] = d
			mc.Distance[j][i] = d
		}
	}

	for _, driver := range drivers {
		var d float64
		if driver.HomeCoordinate == nil {
			d = posInf
		} else if event.Direction == Outbound {
			d = mc.DistAt(EventSentinelID, driver.ID)
		} else {
			d = mc.DistAt(driver.ID, EventSentinelID)
		}
		mc.DriverDirectDistance[driver.ID] = d
	}

	return mc
}

// distanceBetween returns +Inf when either endpoint lacks a coordinate,
// propagating to safe rejection downstream (spec.md §4.2).
func distanceBetween(a, b *Coordinate) float64 {
	if a == nil || b == nil {
		return posInf
	}
	return roadDistanceMiles(*a, *b)
}
