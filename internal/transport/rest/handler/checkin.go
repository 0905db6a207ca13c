package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pulsecheck/internal/model"
	"pulsecheck/internal/service"
)

// CheckinHandler records the signals that feed the selection engine
type CheckinHandler struct {
	checkinSvc *service.CheckinService
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(checkinSvc *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinSvc: checkinSvc}
}

// CreateCheckinRequest is the request body for recording a check-in
type CreateCheckinRequest struct {
	MoodScore   float64 `json:"moodScore"`
	StressLevel float64 `json:"stressLevel"`
	EnergyLevel float64 `json:"energyLevel"`
}

// CreateCheckin handles POST /v1/users/{userId}/checkins
func (h *CheckinHandler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req CreateCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkin := &model.Checkin{
		UserID:      userID,
		MoodScore:   req.MoodScore,
		StressLevel: req.StressLevel,
		EnergyLevel: req.EnergyLevel,
	}
	if err := h.checkinSvc.RecordCheckin(r.Context(), checkin); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": checkin.ID})
}

// CreateJournalRequest is the request body for recording a journal entry
type CreateJournalRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

// CreateJournal handles POST /v1/users/{userId}/journal
func (h *CheckinHandler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry := &model.JournalEntry{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
		Tags:   req.Tags,
	}
	if err := h.checkinSvc.RecordJournal(r.Context(), entry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": entry.ID})
}

// CreateResponseRequest is the request body for recording a question response
type CreateResponseRequest struct {
	TemplateID string         `json:"templateId"`
	Category   model.Category `json:"category"`
	Score      float64        `json:"score"`
}

// CreateResponse handles POST /v1/users/{userId}/responses
func (h *CheckinHandler) CreateResponse(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req CreateResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response := &model.QuestionResponse{
		UserID:     userID,
		TemplateID: req.TemplateID,
		Category:   req.Category,
		Score:      req.Score,
	}
	if err := h.checkinSvc.RecordResponse(r.Context(), response); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": response.ID})
}

// SetFocusAreasRequest is the request body for replacing focus areas
type SetFocusAreasRequest struct {
	FocusAreas []string `json:"focusAreas"`
}

// SetFocusAreas handles PUT /v1/users/{userId}/focus-areas
func (h *CheckinHandler) SetFocusAreas(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req SetFocusAreasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.checkinSvc.SetFocusAreas(r.Context(), userID, req.FocusAreas); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
