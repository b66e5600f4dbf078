package dto

// ValidateCheckinRequest represents the request body for POST /checkin/validate.
type ValidateCheckinRequest struct {
	BoothCode    string `json:"booth_code"`
	PersonalCode string `json:"personal_code"`
}

// SalesCheckinRequest represents the request body for POST /checkin/sales.
// Payload is forwarded to the sales webhook as-is.
type SalesCheckinRequest struct {
	StaffID     string         `json:"staff_id"`
	CompanyName string         `json:"company_name"`
	BoothCode   string         `json:"booth_code"`
	Payload     map[string]any `json:"payload"`
}

// AssignTaskRequest represents the request body for POST /staff/{id}/tasks.
type AssignTaskRequest struct {
	ActionLabel string `json:"action_label"`
	CompanyName string `json:"company_name"`
	BoothCode   string `json:"booth_code,omitempty"`
	Details     string `json:"details,omitempty"`
}

// CompleteTaskRequest represents the request body for
// POST /staff/{id}/tasks/complete. Description is the original assignment
// description, prefix included.
type CompleteTaskRequest struct {
	Description string `json:"description"`
	EventID     string `json:"event_id"`
	BoothCode   string `json:"booth_code"`
	StaffName   string `json:"staff_name"`
	ActionLabel string `json:"action_label"`
}

// SubmitReportRequest represents the request body for POST /reports.
type SubmitReportRequest struct {
	EventID     string `json:"event_id"`
	BoothCode   string `json:"booth_code"`
	StaffID     string `json:"staff_id,omitempty"`
	StaffName   string `json:"staff_name"`
	ReportLabel string `json:"report_label"`
	Response    string `json:"response"`
}
