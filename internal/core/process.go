package core

// IdleID labels segments where the CPU had no ready process to run.
const IdleID = "IDLE"

// Process is one schedulable unit. ID, Arrival and Burst come from the
// caller; Index records the input order and drives deterministic
// tie-breaking. The remaining fields are filled in by a simulation run.
type Process struct {
	ID         string
	Arrival    int
	Burst      int
	Index      int
	Remaining  int
	Completion int
	Turnaround int
	Waiting    int
}

// Completed reports whether a simulation run assigned a completion time.
// Burst is positive, so a real completion is never zero.
func (p Process) Completed() bool {
	return p.Completion > 0
}

// Before breaks ties between two ready processes with an equal selection
// key: the earlier arrival wins, then the earlier input position.
func (p Process) Before(q Process) bool {
	if p.Arrival != q.Arrival {
		return p.Arrival < q.Arrival
	}
	return p.Index < q.Index
}

// CloneAll gives a simulation run its own copy of the input, with Remaining
// reset to the full burst, so runs never observe each other's bookkeeping.
func CloneAll(processes []Process) []Process {
	clone := make([]Process, len(processes))
	copy(clone, processes)
	for i := range clone {
		clone[i].Remaining = clone[i].Burst
		clone[i].Completion = 0
		clone[i].Turnaround = 0
		clone[i].Waiting = 0
	}
	return clone
}

// MinArrival is the clock baseline for a run.
func MinArrival(processes []Process) int {
	min := processes[0].Arrival
	for _, p := range processes[1:] {
		if p.Arrival < min {
			min = p.Arrival
		}
	}
	return min
}
