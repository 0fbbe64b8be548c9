package ridematch

import "github.com/uber/h3-go/v4"

// CatchmentH3Resolution tags ride groups at the teacher's surge-zone
// resolution (~460m edge): event catchments are coarser than point-to-point
// ride matching, so the matching resolution (9) would be needlessly fine.
const CatchmentH3Resolution = 8

// TagCatchmentCells computes the deduplicated set of H3 cells (as hex
// strings) covering a ride group's passenger homes. Pure and read-only; it
// runs after the route optimizer and never feeds back into scoring or
// assignment (spec.md §4.8).
func TagCatchmentCells(passengers []Passenger) []string {
	seen := make(map[string]bool)
	var cells []string

	for _, p := range passengers {
		if p.HomeCoordinate == nil {
			continue
		}
		cell, err := h3.LatLngToCell(h3.NewLatLng(p.HomeCoordinate.Lat, p.HomeCoordinate.Lng), CatchmentH3Resolution)
		if err != nil {
			continue
		}
		hex := cell.String()
		if seen[hex] {
			continue
		}
		seen[hex] = true
		cells = append(cells, hex)
	}

	return cells
}
