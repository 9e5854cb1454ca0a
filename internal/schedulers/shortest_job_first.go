package schedulers

import (
	"sort"

	"scheduler-sim/internal/core"
)

// ScheduleShortestJobFirst runs the non-preemptive SJF simulation. The ready
// set is reconsidered only at decision points (a completion or an idle gap),
// never mid-burst.
func ScheduleShortestJobFirst(processes []core.Process) Result {
	procs := core.CloneAll(processes)
	if len(procs) == 0 {
		return Result{Algorithm: AlgorithmShortestJobFirst}
	}

	pending := make([]*core.Process, len(procs))
	for i := range procs {
		pending[i] = &procs[i]
	}
	sort.SliceStable(pending, func(a, b int) bool {
		return pending[a].Arrival < pending[b].Arrival
	})

	timeline := &core.Timeline{}
	ready := make([]*core.Process, 0, len(procs))
	clock := core.MinArrival(procs)
	for len(pending) > 0 || len(ready) > 0 {
		for len(pending) > 0 && pending[0].Arrival <= clock {
			ready = append(ready, pending[0])
			pending = pending[1:]
		}
		if len(ready) == 0 {
			timeline.Record(core.IdleID, clock, pending[0].Arrival)
			clock = pending[0].Arrival
			continue
		}

		shortest := 0
		for i := 1; i < len(ready); i++ {
			if shorterJob(ready[i], ready[shortest]) {
				shortest = i
			}
		}
		p := ready[shortest]
		ready = append(ready[:shortest], ready[shortest+1:]...)

		timeline.Record(p.ID, clock, clock+p.Burst)
		clock += p.Burst
		p.Completion = clock
		p.Remaining = 0
	}

	return Result{
		Algorithm: AlgorithmShortestJobFirst,
		Processes: procs,
		Segments:  timeline.Segments(),
	}
}

// shorterJob orders ready processes by burst, then arrival, then input order.
func shorterJob(p, q *core.Process) bool {
	if p.Burst != q.Burst {
		return p.Burst < q.Burst
	}
	return p.Before(*q)
}
