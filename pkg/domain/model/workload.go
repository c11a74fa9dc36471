package model

import "github.com/fintel-lab/caseflow/pkg/domain/types"

// Workload is the derived active-assignment count for one actor. It is
// recomputed from assignment records on every read; there is no stored
// counter that could drift.
type Workload struct {
	ActorID      types.ActorID
	ByStage      map[types.Stage]int
	ByReportType map[types.ReportType]int
	Total        int
}

// NewWorkload returns an empty workload for the given actor
func NewWorkload(actorID types.ActorID) *Workload {
	return &Workload{
		ActorID:      actorID,
		ByStage:      make(map[types.Stage]int),
		ByReportType: make(map[types.ReportType]int),
	}
}

// Add counts one active assignment
func (w *Workload) Add(stage types.Stage, reportType types.ReportType) {
	w.ByStage[stage]++
	w.ByReportType[reportType]++
	w.Total++
}
