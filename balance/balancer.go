package balance

import (
	"fmt"
	"io"
	"os"

	"acequia/network"
	"acequia/sim"
)

// Options configures a balancing run.
//
//   - Output:  destination for the feasibility advisory and, when Verbose,
//     the per-hour transfer trace. Defaults to os.Stdout.
//   - Verbose: log every scheduled transfer.
//
// The quantity rules themselves (safety floors, headroom margin, the flow
// unit) are not options; they are the algorithm.
type Options struct {
	Output  io.Writer
	Verbose bool
}

// DefaultOptions returns production-safe defaults: stdout, quiet.
func DefaultOptions() Options {
	return Options{Output: os.Stdout}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Output == nil {
		o.Output = os.Stdout
	}
}

// Solve runs the hourly balancing loop on m until the scenario is solved or
// the hour ceiling is reached.
//
// Steps:
//  1. One-time feasibility advisory: if the sum of all current levels is
//     below the sum of all needs, print a warning that a perfect solution is
//     impossible. Advisory only — the loop runs regardless.
//  2. While !m.Solved && m.Hour != m.SimulationMax:
//     a. CloseAllCanals — no residual flow from the previous hour.
//     b. Evaluate plan in order; each route reads the same pre-hour region
//     state (the core never mutates regions), so candidates are
//     independent within one hour.
//     c. m.NextHour() — the simulation integrates flows, updates flags and
//     penalties, and may set Solved.
//
// Nil routes or route members are skipped silently; there is no error path.
//
// Complexity: O(H·(C + P)) scheduling work for H hours, C canals, P plan
// entries, plus the sim's own integration cost.
func Solve(m *sim.Manager, plan network.RoutePlan, opts Options) {
	opts.normalize()

	warnIfInfeasible(m, opts.Output)

	for !m.Solved && m.Hour != m.SimulationMax {
		CloseAllCanals(m.Canals())

		for _, rt := range plan {
			tryTransfer(rt, m.Hour, opts)
		}

		m.NextHour()
	}
}

// warnIfInfeasible emits the one-time advisory when total water cannot cover
// total need. Never alters control flow.
func warnIfInfeasible(m *sim.Manager, w io.Writer) {
	var totalWater, totalNeed float64
	for _, r := range m.Regions() {
		totalWater += r.WaterLevel
		totalNeed += r.WaterNeed
	}
	if totalWater < totalNeed {
		fmt.Fprintln(w, ">>> Scenario determined unwinnable based on initial conditions.")
		fmt.Fprintln(w, ">>> Simulation will run, but a perfect solution is impossible.")
	}
}

// tryTransfer evaluates one candidate route and, when worthwhile, schedules
// the transfer on its canal.
//
// The amount moved is min(destination deficit, source safe surplus,
// headroomMargin · destination headroom); any missing member or non-positive
// bound makes the candidate a no-op. Region state is only read here — the
// sim applies the actual movement.
func tryTransfer(rt network.Route, hour int, opts Options) {
	if rt.From == nil || rt.To == nil || rt.Canal == nil {
		return
	}

	need := Deficit(rt.To)
	surplus := SafeSurplus(rt.From)
	if need <= 0 || surplus <= 0 {
		return
	}

	headroom := rt.To.Headroom()
	if headroom <= 0 {
		return
	}

	amount := need
	if surplus < amount {
		amount = surplus
	}
	if margin := headroomMargin * headroom; margin < amount {
		amount = margin
	}
	if amount <= 0 {
		return
	}

	ScheduleTransfer(rt.Canal, amount)
	if opts.Verbose {
		fmt.Fprintf(opts.Output, "hour %d: %s → %s via %s: %.3f\n",
			hour, rt.From.Name, rt.To.Name, rt.Canal.Name, amount)
	}
}
