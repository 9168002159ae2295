package balance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"acequia/balance"
	"acequia/network"
	"acequia/sim"
)

// BalancerSuite exercises the hourly loop end to end against small networks.
type BalancerSuite struct {
	suite.Suite
}

// classicTriangle builds the North/South/East network with canals A–D and
// the standard priority plan.
func (s *BalancerSuite) classicTriangle(north, south, east network.Region) (*network.Network, network.RoutePlan) {
	n := network.New()
	s.Require().NoError(n.AddRegion(&north))
	s.Require().NoError(n.AddRegion(&south))
	s.Require().NoError(n.AddRegion(&east))

	for _, c := range []*network.Canal{
		{Name: "CanalA", From: "North", To: "South"},
		{Name: "CanalB", From: "South", To: "East"},
		{Name: "CanalC", From: "North", To: "East"},
		{Name: "CanalD", From: "East", To: "North"},
	} {
		s.Require().NoError(n.AddCanal(c))
	}

	plan := network.RoutePlan{
		{From: n.Region("North"), To: n.Region("South"), Canal: n.Canal("CanalA")},
		{From: n.Region("North"), To: n.Region("East"), Canal: n.Canal("CanalC")},
		{From: n.Region("South"), To: n.Region("East"), Canal: n.Canal("CanalB")},
		{From: n.Region("East"), To: n.Region("North"), Canal: n.Canal("CanalD")},
	}
	return n, plan
}

// TestClassicFirstHour pins the canonical scenario: North has 50 surplus,
// South needs 50 with headroom 90, so canal A is asked for min(50, 50, 72) =
// 50, which saturates the canal at rate 1.0 and moves 3.6 in the hour.
func (s *BalancerSuite) TestClassicFirstHour() {
	n, plan := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 100, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 10, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 80, WaterNeed: 40, WaterCapacity: 120},
	)
	m := sim.NewManager(n, 1)

	var out bytes.Buffer
	balance.Solve(m, plan, balance.Options{Output: &out})

	a := n.Canal("CanalA")
	s.Require().True(a.Open)
	s.Require().Equal(network.MaxFlowRate, a.FlowRate)
	s.Require().InDelta(100-3.6, n.Region("North").WaterLevel, 1e-6)
	s.Require().InDelta(10+3.6, n.Region("South").WaterLevel, 1e-6)
	s.Require().Equal(1, m.Hour)
}

// TestAllSatisfiedSchedulesNothing verifies a network already meeting every
// need terminates with canals closed and levels untouched.
func (s *BalancerSuite) TestAllSatisfiedSchedulesNothing() {
	n, plan := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 100, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 70, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 60, WaterNeed: 40, WaterCapacity: 120},
	)
	m := sim.NewManager(n, 24)

	balance.Solve(m, plan, balance.Options{Output: &bytes.Buffer{}})

	s.Require().True(m.Solved)
	s.Require().Equal(100.0, n.Region("North").WaterLevel)
	s.Require().Equal(70.0, n.Region("South").WaterLevel)
	s.Require().Equal(60.0, n.Region("East").WaterLevel)
	for _, c := range n.Canals() {
		s.Require().False(c.Open)
		s.Require().Equal(0.0, c.FlowRate)
	}
}

// TestAdvisoryEmittedOnce verifies the infeasibility warning appears exactly
// once, before the loop, and that the simulation still runs to the ceiling.
func (s *BalancerSuite) TestAdvisoryEmittedOnce() {
	n, plan := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 10, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 10, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 10, WaterNeed: 40, WaterCapacity: 120},
	)
	m := sim.NewManager(n, 5)

	var out bytes.Buffer
	balance.Solve(m, plan, balance.Options{Output: &out})

	s.Require().Equal(1, strings.Count(out.String(), "unwinnable"))
	s.Require().False(m.Solved)
	s.Require().Equal(5, m.Hour)
}

// TestAdvisoryAbsentWhenFeasible verifies no warning on a coverable total.
func (s *BalancerSuite) TestAdvisoryAbsentWhenFeasible() {
	n, plan := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 100, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 10, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 80, WaterNeed: 40, WaterCapacity: 120},
	)
	m := sim.NewManager(n, 1)

	var out bytes.Buffer
	balance.Solve(m, plan, balance.Options{Output: &out})

	s.Require().NotContains(out.String(), "unwinnable")
}

// TestNilRouteMembersSkipped verifies holes in the plan never panic and the
// loop still terminates.
func (s *BalancerSuite) TestNilRouteMembersSkipped() {
	n, _ := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 100, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 10, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 80, WaterNeed: 40, WaterCapacity: 120},
	)
	plan := network.RoutePlan{
		{From: nil, To: n.Region("South"), Canal: n.Canal("CanalA")},
		{From: n.Region("North"), To: n.Region("East"), Canal: nil},
		{},
	}
	m := sim.NewManager(n, 3)

	s.Require().NotPanics(func() {
		balance.Solve(m, plan, balance.Options{Output: &bytes.Buffer{}})
	})
	s.Require().Equal(3, m.Hour)
}

// TestSolveReachesSolution runs a small deficit to completion and checks the
// loop stops before the ceiling.
func (s *BalancerSuite) TestSolveReachesSolution() {
	n, plan := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 100, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 58, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 60, WaterNeed: 40, WaterCapacity: 120},
	)
	m := sim.NewManager(n, 24)

	balance.Solve(m, plan, balance.Options{Output: &bytes.Buffer{}})

	s.Require().True(m.Solved)
	s.Require().Less(m.Hour, 24)
	s.Require().InDelta(60.0, n.Region("South").WaterLevel, 1e-6)
}

// TestVerboseTrace verifies the per-transfer log line shape.
func (s *BalancerSuite) TestVerboseTrace() {
	n, plan := s.classicTriangle(
		network.Region{Name: "North", WaterLevel: 100, WaterNeed: 50, WaterCapacity: 150},
		network.Region{Name: "South", WaterLevel: 10, WaterNeed: 60, WaterCapacity: 100},
		network.Region{Name: "East", WaterLevel: 80, WaterNeed: 40, WaterCapacity: 120},
	)
	m := sim.NewManager(n, 1)

	var out bytes.Buffer
	balance.Solve(m, plan, balance.Options{Output: &out, Verbose: true})

	s.Require().Contains(out.String(), "North → South via CanalA")
}

func TestBalancerSuite(t *testing.T) {
	suite.Run(t, new(BalancerSuite))
}
