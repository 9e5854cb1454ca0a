package schedulers

import (
	"scheduler-sim/internal/core"
)

// ScheduleShortestRemainingTimeFirst runs the preemptive SRTF simulation. The
// clock advances one time unit at a time and the running process is
// re-selected every unit, so a newly arrived process with a shorter remaining
// time preempts at the next unit boundary. Adjacent units running the same
// process coalesce into one segment.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) Result {
	procs := core.CloneAll(processes)
	preemptions := make(map[string]int)
	if len(procs) == 0 {
		return Result{Algorithm: AlgorithmShortestRemainingTimeFirst, Preemptions: preemptions}
	}

	timeline := &core.Timeline{}
	clock := core.MinArrival(procs)
	completed := 0
	var last *core.Process
	for completed < len(procs) {
		cur := pickShortestRemaining(procs, clock)
		if cur == nil {
			timeline.Record(core.IdleID, clock, clock+1)
			clock++
			last = nil
			continue
		}
		if last != nil && last != cur && last.Remaining > 0 {
			preemptions[last.ID]++
		}
		timeline.Record(cur.ID, clock, clock+1)
		cur.Remaining--
		clock++
		if cur.Remaining == 0 {
			cur.Completion = clock
			completed++
		}
		last = cur
	}

	return Result{
		Algorithm:   AlgorithmShortestRemainingTimeFirst,
		Processes:   procs,
		Segments:    timeline.Segments(),
		Preemptions: preemptions,
	}
}

// pickShortestRemaining returns the ready process with the least remaining
// time, or nil when nothing has arrived. Ties fall to the earlier arrival,
// then the earlier input position, the same policy SJF uses.
func pickShortestRemaining(procs []core.Process, clock int) *core.Process {
	var best *core.Process
	for i := range procs {
		p := &procs[i]
		if p.Arrival > clock || p.Remaining == 0 {
			continue
		}
		if best == nil || p.Remaining < best.Remaining ||
			(p.Remaining == best.Remaining && p.Before(*best)) {
			best = p
		}
	}
	return best
}
