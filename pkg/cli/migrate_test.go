package cli

import (
	"testing"

	"github.com/m-mizutani/gt"
)

// Index field paths must name the stored document fields exactly, or the
// built indexes never back the repository queries.
func TestIndexConfigMatchesDocumentFields(t *testing.T) {
	documentFields := map[string]map[string]bool{
		"submissions": {
			"ValidationStatus": true, "ReviewStatus": true, "ReportType": true,
			"SubmittedAt": true, "ReferenceNumber": true,
		},
		"assignments": {
			"SubmissionID": true, "Stage": true, "AssigneeID": true,
			"Active": true, "AssignedAt": true,
		},
		"audit_log": {
			"SubmissionID": true, "Stage": true, "DecidedBy": true, "DecidedAt": true,
		},
	}

	cfg := getIndexConfig()
	gt.Array(t, cfg.Collections).Length(3)

	for _, col := range cfg.Collections {
		fields, ok := documentFields[col.Name]
		gt.Bool(t, ok).True()
		for _, idx := range col.Indexes {
			for _, f := range idx.Fields {
				gt.Bool(t, fields[f.Path]).True()
			}
		}
	}
}
