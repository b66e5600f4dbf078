package handler

import (
	"encoding/json"
	"net/http"

	"github.com/expocheck/expocheck/internal/handler/dto"
	"github.com/expocheck/expocheck/internal/service"
)

// handleSubmitReport records a report submission.
// @Summary Submit a report
// @Description Persists the report and logs a staff activity (best effort)
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.SubmitReportRequest true "Report submission"
// @Success 201 {object} dto.ReportResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /reports [post]
func (h *Handler) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.EventID == "" || req.BoothCode == "" || req.ReportLabel == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "event_id, booth_code and report_label are required")
		return
	}

	report, err := h.reportService.SubmitReport(ctx, service.SubmitReportParams{
		EventID:     req.EventID,
		BoothCode:   req.BoothCode,
		StaffID:     req.StaffID,
		StaffName:   req.StaffName,
		ReportLabel: req.ReportLabel,
		Response:    req.Response,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToReportResponse(report))
}

// handleBoothButtons lists the report buttons configured for a booth.
// @Summary List report buttons for a booth
// @Tags reports
// @Produce json
// @Param code path string true "Booth code"
// @Success 200 {object} dto.ButtonsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /booths/{code}/buttons [get]
func (h *Handler) handleBoothButtons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boothCode := r.PathValue("code")
	if boothCode == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "booth code is required")
		return
	}

	buttons, err := h.reportService.ButtonsForBooth(ctx, boothCode)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToButtonsResponse(buttons))
}

// handleEventReports lists the reports submitted for an event.
// @Summary List reports for an event
// @Tags reports
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.ReportsResponse
// @Security BearerAuth
// @Router /events/{id}/reports [get]
func (h *Handler) handleEventReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	reports, err := h.reportService.ReportsByEvent(ctx, eventID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	resp := dto.ReportsResponse{Reports: make([]dto.ReportResponse, len(reports))}
	for i, report := range reports {
		resp.Reports[i] = dto.ToReportResponse(report)
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleEventRanking aggregates report counts for an event.
// @Summary Get report rankings for an event
// @Description Group-by-count rankings over submitted reports
// @Tags reports
// @Produce json
// @Param id path string true "Event ID"
// @Param by query string false "Grouping: booth (default), label, staff"
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/ranking [get]
func (h *Handler) handleEventRanking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, ok := extractUUID(w, r, "id")
	if !ok {
		return
	}

	by := r.URL.Query().Get("by")
	if by == "" {
		by = string(service.RankingByBooth)
	}

	entries, err := h.reportService.Ranking(ctx, eventID, service.RankingBy(by))
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToRankingResponse(by, entries))
}
