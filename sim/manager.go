package sim

import (
	"github.com/google/uuid"

	"acequia/network"
)

// Integration constants for canal flow. See the package comment; these two
// numbers are an external contract with balance.FlowUnitDivisor.
const (
	// SecondsPerHour is the number of integration ticks in one simulated hour.
	SecondsPerHour = 3600

	// VolumeDivisor converts accumulated per-second flow into moved volume.
	VolumeDivisor = 1000.0
)

// DefaultSimulationMax bounds a run when the scenario does not say otherwise.
const DefaultSimulationMax = 48

// levelEpsilon absorbs the rounding drift of the per-second integration when
// comparing a level against need or capacity. A transfer sized exactly to a
// deficit lands within a few ulps of the need after 3600 additions; without
// the threshold such a region could stay flagged forever.
const levelEpsilon = 1e-9

// Manager drives an acequia network through simulated hours.
//
// Hour, SimulationMax and Solved are deliberately exported fields: the
// balancer polls them every iteration for its loop condition, and scenario
// code overrides SimulationMax before a run starts.
type Manager struct {
	// RunID tags one simulation run in logs and reports.
	RunID string

	// Hour is the current simulated hour, starting at 0.
	Hour int

	// SimulationMax is the hour ceiling; the run is terminal when Hour
	// reaches it.
	SimulationMax int

	// Solved is set by NextHour once every region meets its need with no
	// region flooded.
	Solved bool

	// Penalty accumulates one point per region per hour the region ends
	// flooded or in drought.
	Penalty int

	// PenaltyByRegion splits Penalty per region name.
	PenaltyByRegion map[string]int

	net *network.Network
}

// NewManager wraps net in a Manager with the given hour ceiling.
// maxHours < 1 falls back to DefaultSimulationMax.
func NewManager(net *network.Network, maxHours int) *Manager {
	if maxHours < 1 {
		maxHours = DefaultSimulationMax
	}
	return &Manager{
		RunID:           uuid.NewString(),
		SimulationMax:   maxHours,
		PenaltyByRegion: make(map[string]int),
		net:             net,
	}
}

// Regions returns the network's regions in scenario order.
func (m *Manager) Regions() []*network.Region { return m.net.Regions() }

// Canals returns the network's canals in scenario order.
func (m *Manager) Canals() []*network.Canal { return m.net.Canals() }

// Done reports whether the run is terminal: solved, or the hour ceiling
// reached.
func (m *Manager) Done() bool {
	return m.Solved || m.Hour >= m.SimulationMax
}

// NextHour advances the simulation by one hour.
//
// Steps:
//  1. For each open canal, in scenario order, integrate its flow second by
//     second and move the resulting volume from source to destination. The
//     transfer stops early if the source runs dry mid-hour; a region's level
//     never goes negative.
//  2. Recompute flags: InDrought ⇔ level < need, InFlood ⇔ level > capacity,
//     both up to levelEpsilon.
//  3. Add one penalty point per region that ends the hour flagged.
//  4. Set Solved when every region meets its need and none is flooded.
//  5. Increment Hour.
//
// Complexity: O(C·SecondsPerHour + R) per call.
func (m *Manager) NextHour() {
	for _, c := range m.net.Canals() {
		m.updateCanal(c)
	}

	solved := true
	for _, r := range m.net.Regions() {
		r.InDrought = r.WaterLevel < r.WaterNeed-levelEpsilon
		r.InFlood = r.WaterLevel > r.WaterCapacity+levelEpsilon
		if r.InDrought || r.InFlood {
			m.Penalty++
			m.PenaltyByRegion[r.Name]++
			solved = false
		}
	}
	m.Solved = solved
	m.Hour++
}

// updateCanal integrates one canal's flow over the hour.
//
// The per-second loop mirrors the integration contract exactly: each tick
// adds FlowRate to the accumulator, and each tick's share of volume is capped
// by what the source still holds. With an always-wet source the moved volume
// is FlowRate·SecondsPerHour/VolumeDivisor.
func (m *Manager) updateCanal(c *network.Canal) {
	if !c.Open || c.FlowRate <= 0 {
		return
	}
	src := m.net.Region(c.From)
	dst := m.net.Region(c.To)
	if src == nil || dst == nil {
		return
	}

	perSecond := c.FlowRate / VolumeDivisor
	for tick := 0; tick < SecondsPerHour; tick++ {
		step := perSecond
		if step > src.WaterLevel {
			step = src.WaterLevel
		}
		if step <= 0 {
			break
		}
		src.WaterLevel -= step
		dst.WaterLevel += step
	}
}
