package handler

import (
	"net/http"

	"preptrack/internal/app/service"
	"preptrack/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	dailyProblemService *service.DailyProblemService
}

func NewProblemHandler(dps *service.DailyProblemService) *ProblemHandler {
	return &ProblemHandler{dailyProblemService: dps}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/random", h.getRandomProblem) // GET /api/v1/problems/random
}

func (h *ProblemHandler) getRandomProblem(w http.ResponseWriter, r *http.Request) {
	problem, err := h.dailyProblemService.GetRandomEasyProblem(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}
