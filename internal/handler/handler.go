package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/expocheck/expocheck/docs" // Import generated docs
	"github.com/expocheck/expocheck/internal/handler/dto"
	"github.com/expocheck/expocheck/internal/middleware"
	"github.com/expocheck/expocheck/internal/repository"
	"github.com/expocheck/expocheck/internal/service"
	"github.com/expocheck/expocheck/internal/static"
	"github.com/expocheck/expocheck/internal/webhook"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool           *pgxpool.Pool
	taskService    *service.TaskService
	checkinService *service.CheckinService
	reportService  *service.ReportService
	activityRepo   *repository.ActivityRepository
	staffRepo      *repository.StaffRepository
	authMiddleware *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool, salesWebhookURL string) *Handler {
	// Create repositories
	activityRepo := repository.NewActivityRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	buttonRepo := repository.NewButtonRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Create services
	taskService := service.NewTaskService(activityRepo, reportRepo, staffRepo)
	checkinService := service.NewCheckinService(
		companyRepo, staffRepo, eventRepo, activityRepo,
		webhook.New(salesWebhookURL),
	)
	reportService := service.NewReportService(reportRepo, companyRepo, buttonRepo, activityRepo)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	return &Handler{
		pool:           pool,
		taskService:    taskService,
		checkinService: checkinService,
		reportService:  reportService,
		activityRepo:   activityRepo,
		staffRepo:      staffRepo,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Landing page
	mux.HandleFunc("GET /{$}", h.handleIndex)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Booth-facing routes (no token; check-in codes are the credential)
	mux.HandleFunc("POST /api/v1/checkin/validate", h.handleValidateCheckin)
	mux.HandleFunc("POST /api/v1/checkin/sales", h.handleSalesCheckin)
	mux.HandleFunc("GET /api/v1/staff/{id}/tasks", h.handlePendingTasks)
	mux.HandleFunc("POST /api/v1/staff/{id}/tasks/complete", h.handleCompleteTask)
	mux.HandleFunc("GET /api/v1/booths/{code}/buttons", h.handleBoothButtons)
	mux.HandleFunc("POST /api/v1/reports", h.handleSubmitReport)

	// Admin routes with authentication
	mux.Handle("POST /api/v1/staff/{id}/tasks", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleAssignTask)))
	mux.Handle("GET /api/v1/staff/{id}/activities", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleStaffActivities)))
	mux.Handle("GET /api/v1/events/{id}/tasks", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleEventTasks)))
	mux.Handle("GET /api/v1/events/{id}/reports", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleEventReports)))
	mux.Handle("GET /api/v1/events/{id}/ranking", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleEventRanking)))
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleIndex serves the embedded landing page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.IndexHTML))
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// extractUUID extracts and validates a UUID path parameter.
// Returns (value, true) if valid, ("", false) if invalid (error already sent
// to the client).
func extractUUID(w http.ResponseWriter, r *http.Request, param string) (string, bool) {
	value := r.PathValue(param)
	if value == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", param+" is required")
		return "", false
	}

	if _, err := uuid.Parse(value); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", param+" must be a valid UUID")
		return "", false
	}

	return value, true
}
