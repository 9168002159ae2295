package balance

import "acequia/network"

// Safety factors for the quantity rules. These three numbers are the whole
// personality of the balancer: how deep a donor may be drained and how close
// to the brim a recipient may be filled.
const (
	// needFloorFactor keeps a donor above this fraction of its own need.
	needFloorFactor = 0.8

	// capacityFloorFactor keeps a donor above this fraction of its capacity,
	// whichever floor is higher.
	capacityFloorFactor = 0.3

	// headroomMargin caps a transfer at this fraction of the destination's
	// remaining headroom.
	headroomMargin = 0.8
)

// SafeSurplus reports how much water r can give away this hour without
// dropping below its safety floors.
//
// The minimum retained level is the larger of needFloorFactor·need and
// capacityFloorFactor·capacity; on top of that, a region never gives away
// water it needs itself, so the keep level is max(floor, need). Only the
// excess above the keep level is surplus. A nil region has none.
//
// Complexity: O(1)
func SafeSurplus(r *network.Region) float64 {
	if r == nil {
		return 0
	}

	minByNeed := needFloorFactor * r.WaterNeed
	minByCap := capacityFloorFactor * r.WaterCapacity
	minLevel := minByNeed
	if minByCap > minLevel {
		minLevel = minByCap
	}

	if r.WaterLevel <= minLevel {
		return 0
	}

	keep := minLevel
	if r.WaterNeed > keep {
		keep = r.WaterNeed
	}
	if r.WaterLevel <= keep {
		return 0
	}

	return r.WaterLevel - keep
}

// Deficit reports r's unmet demand: max(0, need − level).
// No floor or capacity logic applies; demand is absolute. Nil → 0.
//
// Complexity: O(1)
func Deficit(r *network.Region) float64 {
	if r == nil {
		return 0
	}
	if r.WaterLevel >= r.WaterNeed {
		return 0
	}
	return r.WaterNeed - r.WaterLevel
}
