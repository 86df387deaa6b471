package metrics

import coremetrics "github.com/colaworks/colaplan/core/metrics"

// MultiRecorder fans planning events out to multiple recorders.
type MultiRecorder struct {
	Recorders []coremetrics.PlanRecorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recorders ...coremetrics.PlanRecorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recorders}
}

// RecordWeek forwards the week event to all recorders, returning the first
// error encountered.
func (m *MultiRecorder) RecordWeek(ev coremetrics.WeekEvent) error {
	for _, r := range m.Recorders {
		if err := r.RecordWeek(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordPlan forwards the plan event to all recorders.
func (m *MultiRecorder) RecordPlan(ev coremetrics.PlanEvent) error {
	for _, r := range m.Recorders {
		if err := r.RecordPlan(ev); err != nil {
			return err
		}
	}
	return nil
}
