package schedulers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scheduler-sim/internal/core"
)

func TestShortestRemainingTimeFirst(t *testing.T) {
	// Textbook workload: P2 preempts P1 at t=1, P4 runs after P2 completes,
	// then the preempted P1 resumes, and P3 goes last.
	result := ScheduleShortestRemainingTimeFirst(testProcesses(
		[2]int{0, 8}, [2]int{1, 4}, [2]int{2, 9}, [2]int{3, 5}))
	requireValidRun(t, result)

	require.Equal(t, []core.Segment{
		{ID: "P1", Start: 0, Finish: 1},
		{ID: "P2", Start: 1, Finish: 5},
		{ID: "P4", Start: 5, Finish: 10},
		{ID: "P1", Start: 10, Finish: 17},
		{ID: "P3", Start: 17, Finish: 26},
	}, result.Segments)

	completions := map[string]int{"P1": 17, "P2": 5, "P3": 26, "P4": 10}
	for _, p := range result.Processes {
		require.Equal(t, completions[p.ID], p.Completion, p.ID)
	}
	require.Equal(t, map[string]int{"P1": 1}, result.Preemptions)

	response, err := GenerateAnalytics(&result)
	require.NoError(t, err)
	require.InDelta(t, 6.5, response.AverageWaiting, 1e-9)
	require.InDelta(t, 13.0, response.AverageTurnaround, 1e-9)
}

func TestShortestRemainingTimeFirstEqualRemainingTieBreaksOnArrival(t *testing.T) {
	// At t=2 both P1 and P2 have remaining 2; P1 arrived first and keeps the
	// CPU until it completes.
	result := ScheduleShortestRemainingTimeFirst(testProcesses([2]int{0, 4}, [2]int{2, 2}))
	requireValidRun(t, result)

	require.Equal(t, []core.Segment{
		{ID: "P1", Start: 0, Finish: 4},
		{ID: "P2", Start: 4, Finish: 6},
	}, result.Segments)
	require.Empty(t, result.Preemptions)
}

func TestShortestRemainingTimeFirstIdleGap(t *testing.T) {
	result := ScheduleShortestRemainingTimeFirst(testProcesses([2]int{0, 1}, [2]int{3, 2}))
	requireValidRun(t, result)

	require.Equal(t, []core.Segment{
		{ID: "P1", Start: 0, Finish: 1},
		{ID: core.IdleID, Start: 1, Finish: 3},
		{ID: "P2", Start: 3, Finish: 5},
	}, result.Segments)
}

func TestShortestRemainingTimeFirstSingleLateProcess(t *testing.T) {
	result := ScheduleShortestRemainingTimeFirst(testProcesses([2]int{3, 4}))
	requireValidRun(t, result)

	require.Equal(t, []core.Segment{{ID: "P1", Start: 3, Finish: 7}}, result.Segments)
	require.Equal(t, 7, result.Processes[0].Completion)
	require.Empty(t, result.Preemptions)
}

func TestShortestRemainingTimeFirstCoalescesUnits(t *testing.T) {
	// One process running n units must produce one segment, not n.
	result := ScheduleShortestRemainingTimeFirst(testProcesses([2]int{0, 6}))
	require.Len(t, result.Segments, 1)
	require.Equal(t, core.Segment{ID: "P1", Start: 0, Finish: 6}, result.Segments[0])
}
