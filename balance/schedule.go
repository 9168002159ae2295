package balance

import "acequia/network"

// FlowUnitDivisor converts a desired hourly volume into a canal flow rate:
// rate = volume / FlowUnitDivisor.
//
// The value is an external contract with the sim package's integration step:
// an open canal accumulates FlowRate per second for sim.SecondsPerHour
// seconds and the accumulated change is divided by sim.VolumeDivisor, so one
// hour at rate 1.0 moves 3600/1000 = 3.6 volume units. A contract test pins
// this constant against those of the sim package.
const FlowUnitDivisor = 3.6

// CloseAllCanals zeroes the flow rate of every canal and marks it closed.
//
// The balancer runs this before any transfer decision each hour so canals
// not selected this hour carry no residual flow. Idempotent; nil entries are
// skipped.
func CloseAllCanals(canals []*network.Canal) {
	for _, c := range canals {
		c.SetFlowRate(0)
		c.SetOpen(false)
	}
}

// ScheduleTransfer configures canal to move amount volume units over the
// coming hour.
//
// A nil canal or non-positive amount is a no-op. The computed rate is capped
// at network.MaxFlowRate; when the cap bites, less than the requested amount
// will move this hour, which the balancer accepts rather than corrects. The
// canal is opened only when the final rate is positive.
func ScheduleTransfer(canal *network.Canal, amount float64) {
	if canal == nil || amount <= 0 {
		return
	}

	rate := amount / FlowUnitDivisor
	if rate > network.MaxFlowRate {
		rate = network.MaxFlowRate
	}
	if rate <= 0 {
		return
	}

	canal.SetFlowRate(rate)
	canal.SetOpen(true)
}
