package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scheduler-sim/internal/requests"
)

// Load reads a workload CSV with rows "id,arrival,burst[,priority]". A first
// row whose arrival column is not numeric is treated as a header and
// skipped. Blank ids are auto-labeled during Normalize.
func Load(r io.Reader) (requests.ScheduleRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("reading workload csv: %w", err)
	}

	var request requests.ScheduleRequest
	for i, row := range rows {
		if len(row) < 3 {
			return requests.ScheduleRequest{}, fmt.Errorf("row %d: want at least id, arrival and burst columns", i+1)
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			if i == 0 {
				continue
			}
			return requests.ScheduleRequest{}, fmt.Errorf("row %d: arrival %q is not an integer", i+1, row[1])
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return requests.ScheduleRequest{}, fmt.Errorf("row %d: burst %q is not an integer", i+1, row[2])
		}

		process := requests.ProcessRequest{
			ID:      strings.TrimSpace(row[0]),
			Arrival: arrival,
			Burst:   burst,
		}
		if len(row) >= 4 {
			priority, err := strconv.Atoi(strings.TrimSpace(row[3]))
			if err != nil {
				return requests.ScheduleRequest{}, fmt.Errorf("row %d: priority %q is not an integer", i+1, row[3])
			}
			process.Priority = priority
		}
		request.Processes = append(request.Processes, process)
	}

	return request, nil
}
