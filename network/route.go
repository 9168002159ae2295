package network

// Route is one candidate transfer: move water From→To through Canal.
//
// Any field may be nil — a Route with a missing endpoint or canal is skipped
// by the balancer rather than rejected, so plans built from partially
// resolved topologies still run.
type Route struct {
	From  *Region
	To    *Region
	Canal *Canal
}

// RoutePlan is the ordered list of candidate transfers the balancer evaluates
// each hour. Earlier routes have priority; within one hour every route reads
// the same pre-hour region state, so evaluation order only decides which
// canal claims a shared surplus first.
type RoutePlan []Route

// Complete reports whether every route in the plan has both endpoints and a
// canal resolved. Useful for scenario validation; an incomplete plan is still
// runnable.
func (p RoutePlan) Complete() bool {
	for _, rt := range p {
		if rt.From == nil || rt.To == nil || rt.Canal == nil {
			return false
		}
	}
	return true
}
