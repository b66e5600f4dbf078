package handler

import (
	"encoding/json"
	"net/http"

	"github.com/expocheck/expocheck/internal/handler/dto"
	"github.com/expocheck/expocheck/internal/service"
)

// handlePendingTasks lists the outstanding tasks for a staff member.
// @Summary List pending tasks for a staff member
// @Description Derives the pending task list from the staff member's activity log. A store outage yields an empty list, not an error.
// @Tags tasks
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} dto.TasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /staff/{id}/tasks [get]
func (h *Handler) handlePendingTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	tasks := h.taskService.PendingTasksForStaff(ctx, staffID)

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}

// handleCompleteTask marks a task complete.
// @Summary Complete a task
// @Description Appends a completion activity and an audit report. A REPORT_NOT_RECORDED failure means the task is completed but the report is missing; do not retry the whole command.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.CompleteTaskRequest true "Completion request"
// @Success 204
// @Failure 502 {object} dto.ErrorResponse
// @Router /staff/{id}/tasks/complete [post]
func (h *Handler) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Description == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "description is required")
		return
	}
	if req.EventID == "" || req.BoothCode == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "event_id and booth_code are required")
		return
	}

	err := h.taskService.CompleteTask(ctx, service.CompleteTaskParams{
		StaffID:     staffID,
		Description: req.Description,
		EventID:     req.EventID,
		BoothCode:   req.BoothCode,
		StaffName:   req.StaffName,
		ActionLabel: req.ActionLabel,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAssignTask assigns a task to a staff member.
// @Summary Assign a task
// @Description Appends an assignment activity in the task wire format
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.AssignTaskRequest true "Assignment request"
// @Success 201 {object} dto.ActivityResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /staff/{id}/tasks [post]
func (h *Handler) handleAssignTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	activity, err := h.taskService.AssignTask(ctx, service.AssignTaskParams{
		StaffID:     staffID,
		ActionLabel: req.ActionLabel,
		CompanyName: req.CompanyName,
		BoothCode:   req.BoothCode,
		Details:     req.Details,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToActivityResponse(activity))
}

// handleStaffActivities returns the raw activity log for a staff member.
// @Summary Get a staff member's activity log
// @Description Raw append-only activity log, newest first
// @Tags tasks
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} dto.ActivitiesResponse
// @Security BearerAuth
// @Router /staff/{id}/activities [get]
func (h *Handler) handleStaffActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	activities, err := h.activityRepo.ListByStaff(ctx, staffID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch activities")
		return
	}

	resp := dto.ActivitiesResponse{Activities: make([]dto.ActivityResponse, len(activities))}
	for i, activity := range activities {
		resp.Activities[i] = dto.ToActivityResponse(activity)
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleEventTasks lists every derived task for an event's staff roster.
// @Summary List all tasks for an event
// @Description Derived tasks for the whole roster, completed ones included, newest first
// @Tags tasks
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.TasksResponse
// @Security BearerAuth
// @Router /events/{id}/tasks [get]
func (h *Handler) handleEventTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	tasks := h.taskService.AssignedTasksByEvent(ctx, eventID)

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}
