package requests

import (
	"errors"
	"fmt"

	"scheduler-sim/internal/core"
)

var (
	ErrInvalidProcess = errors.New("invalid process")
	ErrDuplicateID    = errors.New("duplicate process id")
)

type ProcessRequest struct {
	ID      string `json:"id"`
	Arrival int    `json:"arrival"`
	Burst   int    `json:"burst"`
	// Priority is accepted for future algorithms but ignored by all three
	// engines.
	Priority int `json:"priority"`
}

type ScheduleRequest struct {
	Processes []ProcessRequest `json:"processes"`
}

// Normalize validates the request and turns it into the engine's process
// list. Blank ids become P<n> by input order. Validation is all-or-nothing:
// the first bad record blocks every simulation.
func (r ScheduleRequest) Normalize() ([]core.Process, error) {
	if len(r.Processes) == 0 {
		return nil, fmt.Errorf("%w: no processes supplied", ErrInvalidProcess)
	}

	seen := make(map[string]struct{}, len(r.Processes))
	processes := make([]core.Process, 0, len(r.Processes))
	for i, req := range r.Processes {
		id := req.ID
		if id == "" {
			id = fmt.Sprintf("P%d", i+1)
		}
		if req.Arrival < 0 {
			return nil, fmt.Errorf("%w: %s has negative arrival time %d", ErrInvalidProcess, id, req.Arrival)
		}
		if req.Burst <= 0 {
			return nil, fmt.Errorf("%w: %s has non-positive burst time %d", ErrInvalidProcess, id, req.Burst)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		processes = append(processes, core.Process{
			ID:        id,
			Arrival:   req.Arrival,
			Burst:     req.Burst,
			Index:     i,
			Remaining: req.Burst,
		})
	}

	return processes, nil
}
