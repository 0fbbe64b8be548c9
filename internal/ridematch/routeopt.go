package ridematch

// OptimizedRoute is the nearest-neighbor stop order for one driver plus the
// per-stop distance bookkeeping the Route Optimizer produces.
type OptimizedRoute struct {
	PassengerOrder []string
	Waypoints      []Waypoint
	TotalDistance  float64
}

// OptimizeRoute greedily reorders driverID's assigned passengers by nearest
// neighbor starting from the route origin (event for outbound, the driver's
// own id for inbound), per spec.md §4.6.
func OptimizeRoute(mc *MatcherContext, driverID string) OptimizedRoute {
	assigned := mc.Assignments[driverID]
	if len(assigned) == 0 {
		return OptimizedRoute{}
	}

	origin, _ := routeEndpoints(mc.Event.Direction, driverID)

	remaining := make(map[string]bool, len(assigned))
	for _, id := range assigned {
		remaining[id] = true
	}

	order := make([]string, 0, len(assigned))
	waypoints := make([]Waypoint, 0, len(assigned))

	current := origin
	var cumulative float64

	for len(remaining) > 0 {
		nearestID := ""
		nearestDist := posInf
		for _, id := range assigned {
			if !remaining[id] {
				continue
			}
			d := mc.DistAt(current, id)
			if d < nearestDist {
				nearestDist = d
				nearestID = id
			}
		}

		cumulative += nearestDist
		stopOrder := len(order) + 1

		wp := Waypoint{
			PassengerID:        nearestID,
			StopOrder:          stopOrder,
			DetourAdded:        nearestDist,
			DistanceFromOrigin: cumulative,
		}
		if mc.Event.Direction == Outbound {
			dropOff := stopOrder
			wp.DropOffOrder = &dropOff
		} else {
			pickup := stopOrder
			wp.PickupOrder = &pickup
		}

		waypoints = append(waypoints, wp)
		order = append(order, nearestID)
		delete(remaining, nearestID)
		current = nearestID
	}

	return OptimizedRoute{PassengerOrder: order, Waypoints: waypoints, TotalDistance: cumulative}
}
