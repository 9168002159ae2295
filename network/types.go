package network

import "errors"

// Sentinel errors for network construction.
var (
	// ErrEmptyName indicates a region or canal was given an empty name.
	ErrEmptyName = errors.New("network: name is empty")

	// ErrDuplicateRegion indicates AddRegion was called with a name already in use.
	ErrDuplicateRegion = errors.New("network: duplicate region name")

	// ErrDuplicateCanal indicates AddCanal was called with a name already in use.
	ErrDuplicateCanal = errors.New("network: duplicate canal name")

	// ErrUnknownRegion indicates a canal endpoint references a missing region.
	ErrUnknownRegion = errors.New("network: unknown region endpoint")
)

// MaxFlowRate is the physical ceiling of a canal's nozzle setting.
// FlowRate is a fraction of maximum throughput, so the valid range is
// [0, MaxFlowRate].
const MaxFlowRate = 1.0

// Region is a water-holding node.
//
// WaterLevel, WaterNeed and WaterCapacity are volumes in the same unit
// (thousands of litres). The flag fields are owned by the sim package, which
// recomputes them after every simulated hour; everything else only reads them.
type Region struct {
	// Name uniquely identifies this region within its Network.
	Name string

	// WaterLevel is the current stored volume. Never negative.
	WaterLevel float64

	// WaterNeed is the demand this region must meet to count as satisfied.
	WaterNeed float64

	// WaterCapacity is the maximum storable volume before the region floods.
	WaterCapacity float64

	// InDrought is set by the simulation when WaterLevel < WaterNeed.
	InDrought bool

	// InFlood is set by the simulation when WaterLevel > WaterCapacity.
	InFlood bool
}

// Headroom reports the remaining volume before the region would overflow.
// The result is negative when the region is already past capacity.
func (r *Region) Headroom() float64 {
	if r == nil {
		return 0
	}
	return r.WaterCapacity - r.WaterLevel
}

// MeetsNeed reports whether the region's current level satisfies its demand.
// A nil region trivially has no unmet demand.
func (r *Region) MeetsNeed() bool {
	if r == nil {
		return true
	}
	return r.WaterLevel >= r.WaterNeed
}

// Canal is a directed, rate-limited connector between two regions.
//
// From and To are region names; the Network validates them on AddCanal.
// FlowRate and Open are the only fields the balancer writes, once per hour,
// after first clearing them via the reset pass.
type Canal struct {
	// Name uniquely identifies this canal within its Network.
	Name string

	// From is the source region name.
	From string

	// To is the destination region name.
	To string

	// FlowRate is the nozzle setting in [0, MaxFlowRate]. Use SetFlowRate.
	FlowRate float64

	// Open reports whether water moves through this canal when the
	// simulation advances.
	Open bool
}

// SetFlowRate stores rate clamped into [0, MaxFlowRate].
// Nil-safe: a nil canal ignores the call.
func (c *Canal) SetFlowRate(rate float64) {
	if c == nil {
		return
	}
	if rate < 0 {
		rate = 0
	}
	if rate > MaxFlowRate {
		rate = MaxFlowRate
	}
	c.FlowRate = rate
}

// SetOpen marks the canal open or closed. Nil-safe.
func (c *Canal) SetOpen(open bool) {
	if c == nil {
		return
	}
	c.Open = open
}
