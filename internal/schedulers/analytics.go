package schedulers

import (
	"errors"
	"fmt"

	"scheduler-sim/internal/core"
	"scheduler-sim/internal/responses"
	"scheduler-sim/internal/util"
)

const (
	AlgorithmFirstComeFirstServe        = "FCFS"
	AlgorithmShortestJobFirst           = "SJF"
	AlgorithmShortestRemainingTimeFirst = "SRTF"
)

// ErrIncompleteSimulation means an engine returned a process without a
// completion time. That is an engine bug, not bad input.
var ErrIncompleteSimulation = errors.New("incomplete simulation")

// Result is one simulation run: the run's private processes with completion
// times assigned, the execution segments in start order, and for preemptive
// runs how often each process lost the CPU.
type Result struct {
	Algorithm   string
	Processes   []core.Process
	Segments    []core.Segment
	Preemptions map[string]int
}

// GenerateAnalytics fills turnaround and waiting time for every process in
// the run and assembles the response handed to rendering collaborators.
func GenerateAnalytics(result *Result) (responses.ScheduleResponse, error) {
	if len(result.Processes) == 0 {
		return responses.ScheduleResponse{Algorithm: result.Algorithm}, nil
	}

	for i := range result.Processes {
		p := &result.Processes[i]
		if !p.Completed() {
			return responses.ScheduleResponse{}, fmt.Errorf("%w: process %s has no completion time", ErrIncompleteSimulation, p.ID)
		}
		p.Turnaround = p.Completion - p.Arrival
		p.Waiting = p.Turnaround - p.Burst
	}
	averageTurnaround, averageWaiting := util.CalculateAverages(result.Processes)

	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, responses.ProcessResponse{
			ProcessID:   p.ID,
			Arrival:     p.Arrival,
			Burst:       p.Burst,
			Completion:  p.Completion,
			Turnaround:  p.Turnaround,
			Waiting:     p.Waiting,
			Preemptions: result.Preemptions[p.ID],
		})
	}

	var idleTime, busyTime int
	segments := make([]responses.SegmentResponse, 0, len(result.Segments))
	for _, s := range result.Segments {
		if s.Idle() {
			idleTime += s.Finish - s.Start
		} else {
			busyTime += s.Finish - s.Start
		}
		segments = append(segments, responses.SegmentResponse{
			ID:     s.ID,
			Start:  s.Start,
			Finish: s.Finish,
		})
	}

	var makespan int
	var utilization float64
	if len(segments) > 0 {
		makespan = segments[len(segments)-1].Finish
		if span := makespan - segments[0].Start; span > 0 {
			utilization = float64(busyTime) / float64(span)
		}
	}

	return responses.ScheduleResponse{
		Algorithm:         result.Algorithm,
		Processes:         details,
		Segments:          segments,
		AverageTurnaround: averageTurnaround,
		AverageWaiting:    averageWaiting,
		Makespan:          makespan,
		IdleTime:          idleTime,
		CpuUtilization:    utilization,
	}, nil
}
