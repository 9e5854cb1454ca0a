package util

import "scheduler-sim/internal/core"

// CalculateAverages returns the arithmetic mean turnaround and waiting time
// across one simulation run.
func CalculateAverages(processes []core.Process) (averageTurnaround, averageWaiting float64) {
	var turnaroundSum float64
	var waitingSum float64

	for _, process := range processes {
		turnaroundSum += float64(process.Turnaround)
		waitingSum += float64(process.Waiting)
	}

	processCount := float64(len(processes))

	averageTurnaround = turnaroundSum / processCount
	averageWaiting = waitingSum / processCount
	return
}
