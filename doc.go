// Package acequia simulates a small network of water regions connected by
// directional canals and balances it hour by hour.
//
// What lives where:
//
//	network/  — Region, Canal, Network container, Route plans
//	sim/      — the clock: per-second flow integration, flags, penalties,
//	            solved detection
//	balance/  — the hourly greedy balancer: safety floors, transfer sizing,
//	            canal scheduling, the orchestration loop
//	scenario/ — YAML scenario files, the built-in classic triangle, legacy
//	            canal-letter resolution
//	cmd/      — the acequia CLI
//
// Quick start:
//
//	cfg, _ := scenario.Load("")            // built-in classic triangle
//	m, plan, _ := scenario.Build(cfg)
//	balance.Solve(m, plan, balance.DefaultOptions())
//	fmt.Println(m.Solved, m.Hour, m.Penalty)
//
// The balancer is deliberately greedy and local: each hour it relieves the
// deficits it can reach without creating droughts or floods elsewhere, and
// leaves the rest to the next hour. Scenarios whose total water cannot cover
// total need are announced up front and simulated anyway.
package acequia
