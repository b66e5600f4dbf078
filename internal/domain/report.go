package domain

import "time"

// ReportType distinguishes the answer widget a report button presents.
type ReportType string

const (
	ReportTypeOpenText       ReportType = "open_text"
	ReportTypeMultipleChoice ReportType = "multiple_choice"
	ReportTypeYesNo          ReportType = "yes_no"
	ReportTypeChecklist      ReportType = "checklist"
	ReportTypeNotifyCall     ReportType = "notify_call"
)

// IsValid checks if the type is one of the allowed values.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeOpenText, ReportTypeMultipleChoice, ReportTypeYesNo,
		ReportTypeChecklist, ReportTypeNotifyCall:
		return true
	default:
		return false
	}
}

// ReportButton configures one report action available at a booth. Options
// and follow-up are stored as JSON documents since their shape depends on
// the report type.
type ReportButton struct {
	ID           string
	Label        string
	Question     string
	Type         ReportType
	Options      []byte
	FollowUp     []byte
	DepartmentID *string
	CreatedAt    time.Time
}

// Report is a submitted report row. Task completions also append one of
// these as a secondary audit artifact; a completed task may legitimately
// have no matching report if that second write failed.
type Report struct {
	ID          string
	EventID     string
	BoothCode   string
	StaffName   string
	ReportLabel string
	Response    string
	Timestamp   time.Time
}

// InternalLabelMarker wraps labels of built-in report configs. Reports with
// such labels are excluded from the occurrence ranking.
const InternalLabelMarker = "__"

// IsInternalLabel reports whether a report label belongs to a built-in
// config rather than a user-defined button.
func IsInternalLabel(label string) bool {
	return len(label) >= 2*len(InternalLabelMarker) &&
		label[:len(InternalLabelMarker)] == InternalLabelMarker &&
		label[len(label)-len(InternalLabelMarker):] == InternalLabelMarker
}
