package responses

type ProcessResponse struct {
	ProcessID   string `json:"id"`
	Arrival     int    `json:"arrival"`
	Burst       int    `json:"burst"`
	Completion  int    `json:"completion"`
	Turnaround  int    `json:"turnaround"`
	Waiting     int    `json:"waiting"`
	Preemptions int    `json:"preemptions,omitempty"`
}

type SegmentResponse struct {
	ID     string `json:"id"`
	Start  int    `json:"start"`
	Finish int    `json:"finish"`
}

type ScheduleResponse struct {
	Algorithm         string            `json:"algorithm"`
	Processes         []ProcessResponse `json:"processes"`
	Segments          []SegmentResponse `json:"segments"`
	AverageTurnaround float64           `json:"average_turnaround"`
	AverageWaiting    float64           `json:"average_waiting"`
	Makespan          int               `json:"makespan"`
	IdleTime          int               `json:"idle_time"`
	CpuUtilization    float64           `json:"cpu_utilization"`
}

// CompareResponse carries the three algorithms run on the same input.
type CompareResponse struct {
	FirstComeFirstServe        ScheduleResponse `json:"fcfs"`
	ShortestJobFirst           ScheduleResponse `json:"sjf"`
	ShortestRemainingTimeFirst ScheduleResponse `json:"srtf"`
}
