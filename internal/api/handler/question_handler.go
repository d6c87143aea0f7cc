package handler

import (
	"encoding/json"
	"net/http"

	"preptrack/internal/api/middleware"
	"preptrack/internal/app/service"
	"preptrack/internal/common"
	"preptrack/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type QuestionHandler struct {
	questionService  *service.QuestionService
	dashboardService *service.DashboardService
}

func NewQuestionHandler(qs *service.QuestionService, ds *service.DashboardService) *QuestionHandler {
	return &QuestionHandler{questionService: qs, dashboardService: ds}
}

func (h *QuestionHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Get("/", h.listQuestions)              // GET /api/v1/questions
	r.Get("/dashboard", h.getDashboard)      // GET /api/v1/questions/dashboard
	r.Post("/", h.createQuestion)            // POST /api/v1/questions
	r.Put("/{questionID}", h.updateQuestion) // PUT /api/v1/questions/{id}
	r.Delete("/{questionID}", h.deleteQuestion)
}

func (h *QuestionHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	questions, err := h.questionService.ListQuestions(r.Context(), ownerID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	type QuestionListResponse struct {
		Count     int              `json:"count"`
		Questions []model.Question `json:"questions"`
	}
	common.RespondWithJSON(w, http.StatusOK, QuestionListResponse{
		Count:     len(questions),
		Questions: questions,
	})
}

func (h *QuestionHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	summary, err := h.dashboardService.GetSummary(r.Context(), ownerID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, summary)
}

func (h *QuestionHandler) createQuestion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	question, err := h.questionService.CreateQuestion(r.Context(), ownerID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, question)
}

func (h *QuestionHandler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	questionID := chi.URLParam(r, "questionID")

	var req service.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	question, err := h.questionService.UpdateQuestion(r.Context(), ownerID, questionID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	questionID := chi.URLParam(r, "questionID")

	if err := h.questionService.DeleteQuestion(r.Context(), ownerID, questionID); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]any{})
}
