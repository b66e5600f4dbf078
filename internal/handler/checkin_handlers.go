package handler

import (
	"encoding/json"
	"net/http"

	"github.com/expocheck/expocheck/internal/handler/dto"
	"github.com/expocheck/expocheck/internal/service"
)

// handleValidateCheckin validates a booth code / personal code pair.
// @Summary Validate a booth check-in
// @Description Resolves booth code and personal code into staff, event and company
// @Tags checkin
// @Accept json
// @Produce json
// @Param request body dto.ValidateCheckinRequest true "Check-in codes"
// @Success 200 {object} dto.CheckinResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /checkin/validate [post]
func (h *Handler) handleValidateCheckin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.ValidateCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.BoothCode == "" || req.PersonalCode == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "booth_code and personal_code are required")
		return
	}

	result, err := h.checkinService.ValidateCheckin(ctx, req.BoothCode, req.PersonalCode)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.CheckinResponse{
		Staff: dto.StaffInfo{
			ID:           result.Staff.ID,
			Name:         result.Staff.Name,
			PersonalCode: result.Staff.PersonalCode,
			DepartmentID: result.Staff.DepartmentID,
			Role:         result.Staff.Role,
		},
		Event: dto.EventInfo{
			ID:       result.Event.ID,
			Name:     result.Event.Name,
			Date:     result.Event.Date,
			IsActive: result.Event.IsActive,
		},
		Company: dto.CompanyInfo{
			ID:        result.Company.ID,
			EventID:   result.Company.EventID,
			Name:      result.Company.Name,
			BoothCode: result.Company.BoothCode,
		},
	})
}

// handleSalesCheckin forwards a sales check-in to the webhook.
// @Summary Submit a sales check-in
// @Description Forwards the payload to the sales webhook and logs a staff activity
// @Tags checkin
// @Accept json
// @Produce json
// @Param request body dto.SalesCheckinRequest true "Sales check-in"
// @Success 204
// @Failure 502 {object} dto.ErrorResponse
// @Router /checkin/sales [post]
func (h *Handler) handleSalesCheckin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.SalesCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.StaffID == "" || req.BoothCode == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "staff_id and booth_code are required")
		return
	}

	err := h.checkinService.SalesCheckin(ctx, service.SalesCheckinParams{
		StaffID:     req.StaffID,
		CompanyName: req.CompanyName,
		BoothCode:   req.BoothCode,
		Payload:     req.Payload,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
