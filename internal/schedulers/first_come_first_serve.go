package schedulers

import (
	"sort"

	"scheduler-sim/internal/core"
)

// ScheduleFirstComeFirstServe runs the non-preemptive FCFS simulation.
// Processes execute in arrival order; equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) Result {
	procs := core.CloneAll(processes)
	if len(procs) == 0 {
		return Result{Algorithm: AlgorithmFirstComeFirstServe}
	}

	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return procs[order[a]].Arrival < procs[order[b]].Arrival
	})

	timeline := &core.Timeline{}
	clock := core.MinArrival(procs)
	for _, i := range order {
		p := &procs[i]
		if clock < p.Arrival {
			timeline.Record(core.IdleID, clock, p.Arrival)
			clock = p.Arrival
		}
		timeline.Record(p.ID, clock, clock+p.Burst)
		clock += p.Burst
		p.Completion = clock
		p.Remaining = 0
	}

	return Result{
		Algorithm: AlgorithmFirstComeFirstServe,
		Processes: procs,
		Segments:  timeline.Segments(),
	}
}
