package types

import "fmt"

// ReportType represents the kind of regulatory report
type ReportType string

const (
	// ReportTypeCTR is a Currency Transaction Report
	ReportTypeCTR ReportType = "CTR"
	// ReportTypeSTR is a Suspicious Transaction Report
	ReportTypeSTR ReportType = "STR"
)

// AllReportTypes returns all valid report types
func AllReportTypes() []ReportType {
	return []ReportType{
		ReportTypeCTR,
		ReportTypeSTR,
	}
}

// IsValid checks if the report type is valid
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeCTR, ReportTypeSTR:
		return true
	default:
		return false
	}
}

// String returns the string representation of the report type
func (t ReportType) String() string {
	return string(t)
}

// ParseReportType parses a string into a ReportType
func ParseReportType(s string) (ReportType, error) {
	t := ReportType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid report type: %s", s)
	}
	return t, nil
}
