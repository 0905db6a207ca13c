package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pulsecheck/internal/model"
	"pulsecheck/internal/service"
)

// maxQuestionsLimit bounds the max query parameter; anything larger only
// mints extra cache keys and allocation for a result the catalog cannot
// fill anyway.
const maxQuestionsLimit = 20

// QuestionHandler serves the personalized question selection
type QuestionHandler struct {
	questionSvc *service.QuestionService
	defaultMax  int
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService, defaultMax int) *QuestionHandler {
	return &QuestionHandler{
		questionSvc: questionSvc,
		defaultMax:  defaultMax,
	}
}

// Get handles GET /v1/users/{userId}/questions?max=&mode=
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	max := h.defaultMax
	if raw := r.URL.Query().Get("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "max must be an integer")
			return
		}
		max = parsed
	}
	if max > maxQuestionsLimit {
		max = maxQuestionsLimit
	}
	mode := model.ParseSelectionMode(r.URL.Query().Get("mode"))

	questions := h.questionSvc.SelectQuestions(r.Context(), userID, max, mode)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"mode":      mode,
	})
}
