package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"scheduler-sim/internal/responses"
)

// Reporter renders one simulation run as text: a title banner, a gantt line
// built from the segment list, and a timing table with average footers.
type Reporter struct {
	ganttWidth int
}

func NewReporter(ganttWidth int) *Reporter {
	if ganttWidth < 2 {
		ganttWidth = 8
	}
	return &Reporter{ganttWidth: ganttWidth}
}

func (r *Reporter) Write(w io.Writer, title string, response responses.ScheduleResponse) {
	r.writeTitle(w, title)
	r.writeGantt(w, response.Segments)
	r.writeTable(w, response)
}

func (r *Reporter) writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func (r *Reporter) writeGantt(w io.Writer, segments []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range segments {
		padding := strings.Repeat(" ", max((r.ganttWidth-len(s.ID))/2, 0))
		_, _ = fmt.Fprint(w, padding, s.ID, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range segments {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(segments)-1 {
			_, _ = fmt.Fprint(w, s.Finish)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func (r *Reporter) writeTable(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(response.Processes))
	for _, p := range response.Processes {
		rows = append(rows, []string{
			p.ProcessID,
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Waiting),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Utilization\n%.2f", response.CpuUtilization),
		fmt.Sprintf("Makespan\n%d", response.Makespan),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", response.AverageWaiting)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
