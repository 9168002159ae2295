// Package balance implements the hourly greedy water balancer for an acequia
// network.
//
// Each simulated hour the balancer closes every canal, walks an ordered
// RoutePlan of candidate transfers, and for each candidate computes a safe
// volume to move: no more than the destination's unmet need, no more than the
// source can give without breaching its safety floors, and no more than 80%
// of the destination's remaining headroom. Selected canals are configured
// with the flow rate that delivers that volume over one hour; the sim package
// then integrates the flows and advances the clock.
//
// The balancer is a per-hour local heuristic. It never plans across hours,
// never reorders its priorities, and is not guaranteed to solve every
// solvable scenario — it only guarantees that no transfer it schedules can
// itself create a drought or a flood.
//
// Quantity rules:
//
//   - Safe surplus: a region keeps at least max(0.8·need, 0.3·capacity) and
//     never gives away water it needs itself; only the excess above
//     max(floor, need) is movable.
//   - Deficit: max(0, need − level). Demand is absolute; no floor logic.
//   - Headroom margin: a transfer fills at most 80% of the destination's
//     remaining headroom, leaving slack against overshoot.
//
// Failure posture: every function tolerates nil regions and canals as silent
// no-ops. The balancer has no error path of its own; termination depends
// only on the Manager's solved flag and hour ceiling.
package balance
