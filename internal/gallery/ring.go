package gallery

import "github.com/iburimskiy/photo-rings/internal/config"

// Ring is one concentric layer of the hexagonal packing.
type Ring struct {
	Index      int
	Capacity   int
	Count      int
	Radius     float64 // percent of container
	TotalRings int
}

// RingCapacity is 1 for the center and 6n for ring n.
func RingCapacity(index int) int {
	if index == 0 {
		return 1
	}
	return 6 * index
}

// Distribute fills rings greedily from the center outwards until total
// items are placed, then spreads the radii evenly over [0, MaxRingRadius].
func Distribute(total int) []Ring {
	var rings []Ring
	remaining := total
	for index := 0; remaining > 0; index++ {
		capacity := RingCapacity(index)
		count := min(capacity, remaining)
		rings = append(rings, Ring{Index: index, Capacity: capacity, Count: count})
		remaining -= count
	}

	n := len(rings)
	for i := range rings {
		rings[i].TotalRings = n
		if i > 0 {
			rings[i].Radius = float64(i) / float64(n-1) * config.MaxRingRadius
		}
	}
	return rings
}
