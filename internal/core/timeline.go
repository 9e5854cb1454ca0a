package core

// Segment is one stretch of the schedule: a process run or an IDLE gap.
type Segment struct {
	ID     string
	Start  int
	Finish int
}

func (s Segment) Idle() bool {
	return s.ID == IdleID
}

// Timeline collects execution records in clock order and coalesces adjacent
// records for the same process, so a unit-stepped engine can record one time
// unit at a time without producing one segment per unit.
type Timeline struct {
	segments []Segment
}

func (t *Timeline) Record(id string, start, finish int) {
	if finish <= start {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.ID == id && last.Finish == start {
			last.Finish = finish
			return
		}
	}
	t.segments = append(t.segments, Segment{ID: id, Start: start, Finish: finish})
}

// Segments returns the recorded schedule in start order.
func (t *Timeline) Segments() []Segment {
	return t.segments
}
