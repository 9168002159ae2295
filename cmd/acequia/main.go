// Command acequia runs the hourly water balancer against a scenario and
// prints the outcome.
//
// Usage:
//
//	acequia [-scenario path] [-max-hours n] [-quiet]
//
// Without -scenario the built-in classic North/South/East triangle is run.
// The process exits 0 when the scenario is solved and 1 when the hour
// ceiling is reached first.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"acequia/balance"
	"acequia/scenario"
	"acequia/sim"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "scenario yaml path (empty: built-in classic triangle)")
		maxHours     = flag.Int("max-hours", 0, "override the scenario's hour ceiling")
		quiet        = flag.Bool("quiet", false, "suppress the per-transfer trace")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[acequia] ", log.LstdFlags)

	cfg, err := scenario.Load(*scenarioPath)
	if err != nil {
		logger.Fatalf("load scenario: %v", err)
	}
	if *maxHours > 0 {
		cfg.MaxHours = *maxHours
	}

	m, plan, err := scenario.Build(cfg)
	if err != nil {
		logger.Fatalf("build scenario: %v", err)
	}
	logger.Printf("run %s: scenario %q, %d regions, %d canals, ceiling %d hours",
		m.RunID, cfg.Name, len(m.Regions()), len(m.Canals()), m.SimulationMax)

	balance.Solve(m, plan, balance.Options{Output: os.Stdout, Verbose: !*quiet})

	report(m)
	if !m.Solved {
		os.Exit(1)
	}
}

// report prints the final state of the run to stdout.
func report(m *sim.Manager) {
	if m.Solved {
		fmt.Printf("solved after %d hour(s), penalty %d\n", m.Hour, m.Penalty)
	} else {
		fmt.Printf("unsolved at hour ceiling %d, penalty %d\n", m.SimulationMax, m.Penalty)
	}
	for _, r := range m.Regions() {
		status := "ok"
		switch {
		case r.InFlood:
			status = "FLOOD"
		case r.InDrought:
			status = "DROUGHT"
		}
		fmt.Printf("  %-10s level %8.2f  need %8.2f  capacity %8.2f  penalty %3d  %s\n",
			r.Name, r.WaterLevel, r.WaterNeed, r.WaterCapacity, m.PenaltyByRegion[r.Name], status)
	}
}
