// Package sim advances an acequia network through simulated time.
//
// The Manager owns the clock, the solved flag and the penalty tally. Its one
// interesting operation is NextHour, which integrates every open canal's flow
// second by second, moves the resulting volume from source to destination,
// recomputes each region's drought/flood flags, scores penalties, and checks
// whether the scenario is solved.
//
// Integration contract (shared with the balance package):
//
//	an open canal accumulates FlowRate units per second for SecondsPerHour
//	seconds, and the accumulated change divided by VolumeDivisor is the
//	volume actually moved. At the maximum rate of 1.0 a canal therefore
//	moves 3.6 volume units per hour.
//
// Any component converting a desired volume into a flow rate must use the
// same constants; balance.FlowUnitDivisor is derived from them and pinned by
// a contract test.
package sim
