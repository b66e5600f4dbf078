package dto

import (
	"encoding/json"
	"time"

	"github.com/expocheck/expocheck/internal/domain"
	"github.com/expocheck/expocheck/internal/repository"
)

// CheckinResponse represents a validated check-in session.
type CheckinResponse struct {
	Staff   StaffInfo   `json:"staff"`
	Event   EventInfo   `json:"event"`
	Company CompanyInfo `json:"company"`
}

// StaffInfo represents a staff member in responses.
type StaffInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PersonalCode string  `json:"personal_code"`
	DepartmentID *string `json:"department_id,omitempty"`
	Role         *string `json:"role,omitempty"`
}

// EventInfo represents an event in responses.
type EventInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	IsActive bool   `json:"is_active"`
}

// CompanyInfo represents a participant company in responses.
type CompanyInfo struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	BoothCode string `json:"booth_code"`
}

// AssignedTaskResponse represents one derived task.
type AssignedTaskResponse struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"staff_id"`
	StaffName   string    `json:"staff_name,omitempty"`
	CompanyName string    `json:"company_name"`
	BoothCode   *string   `json:"booth_code,omitempty"`
	ActionLabel string    `json:"action_label"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

// TasksResponse represents a list of derived tasks.
type TasksResponse struct {
	Tasks []AssignedTaskResponse `json:"tasks"`
}

// ActivityResponse represents one raw activity log entry.
type ActivityResponse struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"staff_id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ActivitiesResponse represents a staff member's raw activity log.
type ActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ReportResponse represents one submitted report.
type ReportResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	BoothCode   string    `json:"booth_code"`
	StaffName   string    `json:"staff_name"`
	ReportLabel string    `json:"report_label"`
	Response    string    `json:"response"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReportsResponse represents the reports submitted for an event.
type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ReportButtonResponse represents one report button config.
type ReportButtonResponse struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Question string          `json:"question"`
	Type     string          `json:"type"`
	Options  json.RawMessage `json:"options,omitempty"`
	FollowUp json.RawMessage `json:"follow_up,omitempty"`
}

// ButtonsResponse represents the report buttons available at a booth.
type ButtonsResponse struct {
	Buttons []ReportButtonResponse `json:"buttons"`
}

// RankingEntryResponse represents one ranking row.
type RankingEntryResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankingResponse represents a ranking aggregation.
type RankingResponse struct {
	By      string                 `json:"by"`
	Entries []RankingEntryResponse `json:"entries"`
}

// ToAssignedTaskResponse converts a domain.AssignedTask.
func ToAssignedTaskResponse(task *domain.AssignedTask) AssignedTaskResponse {
	return AssignedTaskResponse{
		ID:          task.ID,
		StaffID:     task.StaffID,
		StaffName:   task.StaffName,
		CompanyName: task.CompanyName,
		BoothCode:   task.BoothCode,
		ActionLabel: task.ActionLabel,
		Description: task.Description,
		Timestamp:   task.Timestamp,
		Status:      string(task.Status),
	}
}

// ToTasksResponse converts a slice of derived tasks.
func ToTasksResponse(tasks []*domain.AssignedTask) TasksResponse {
	resp := TasksResponse{Tasks: make([]AssignedTaskResponse, len(tasks))}
	for i, task := range tasks {
		resp.Tasks[i] = ToAssignedTaskResponse(task)
	}
	return resp
}

// ToActivityResponse converts a domain.Activity.
func ToActivityResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID,
		StaffID:     activity.StaffID,
		Description: activity.Description,
		Timestamp:   activity.Timestamp,
	}
}

// ToReportResponse converts a domain.Report.
func ToReportResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		EventID:     report.EventID,
		BoothCode:   report.BoothCode,
		StaffName:   report.StaffName,
		ReportLabel: report.ReportLabel,
		Response:    report.Response,
		Timestamp:   report.Timestamp,
	}
}

// ToButtonsResponse converts a slice of report buttons.
func ToButtonsResponse(buttons []*domain.ReportButton) ButtonsResponse {
	resp := ButtonsResponse{Buttons: make([]ReportButtonResponse, len(buttons))}
	for i, button := range buttons {
		resp.Buttons[i] = ReportButtonResponse{
			ID:       button.ID,
			Label:    button.Label,
			Question: button.Question,
			Type:     string(button.Type),
			Options:  json.RawMessage(button.Options),
			FollowUp: json.RawMessage(button.FollowUp),
		}
	}
	return resp
}

// ToRankingResponse converts ranking entries.
func ToRankingResponse(by string, entries []repository.RankingEntry) RankingResponse {
	resp := RankingResponse{By: by, Entries: make([]RankingEntryResponse, len(entries))}
	for i, entry := range entries {
		resp.Entries[i] = RankingEntryResponse{Label: entry.Label, Count: entry.Count}
	}
	return resp
}
