package order

import (
	"fmt"
	"sort"
	"time"
)

// SequenceViolation describes one point in an event log where the status level
// regressed without matching the permitted Dispatched -> Preparing exception.
type SequenceViolation struct {
	EventType Status
	Timestamp time.Time
	Issue     string
}

// IntegrityReport is the outcome of replaying an order's event log.
// It is a diagnostic: it reports violations, it never fails.
type IntegrityReport struct {
	IsValid    bool
	Violations []SequenceViolation
}

// ValidateSequence replays the given events in timestamp order and reports
// every point where the status level decreases, except for the single
// permitted regression from Dispatched to Preparing.
//
// The input slice is not modified; events are copied and sorted by timestamp
// before the replay. An empty log is valid.
func ValidateSequence(events []*Event) IntegrityReport {
	sorted := make([]*Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp().Before(sorted[j].Timestamp())
	})

	report := IntegrityReport{IsValid: true, Violations: []SequenceViolation{}}

	previous := Unknown
	for _, event := range sorted {
		current := event.EventType()

		if previous != Unknown && current.Level() < previous.Level() {
			if !(previous == Dispatched && current == Preparing) {
				report.IsValid = false
				report.Violations = append(report.Violations, SequenceViolation{
					EventType: current,
					Timestamp: event.Timestamp(),
					Issue: fmt.Sprintf("invalid regression from level %d (%s) to level %d (%s)",
						previous.Level(), previous, current.Level(), current),
				})
			}
		}

		previous = current
	}

	return report
}
