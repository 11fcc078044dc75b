package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nutrilens/advisor-svc/internal/domain"
	"nutrilens/advisor-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Advisor service.AdvisorServiceInterface
}

func NewHandler(advisor service.AdvisorServiceInterface) *Handler {
	return &Handler{Advisor: advisor}
}

func (h *Handler) RegisterRoutes(r, api *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api.HandleFunc("/meals/{id}/advice", h.getAdvice).Methods("GET")
	api.HandleFunc("/chat", h.postChat).Methods("POST")
	api.HandleFunc("/chat", h.getChatHistory).Methods("GET")
	api.HandleFunc("/tips/daily", h.getDailyTip).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "advisor-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getAdvice(w http.ResponseWriter, r *http.Request) {
	mealID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid meal id", http.StatusBadRequest)
		return
	}

	advice, err := h.Advisor.Advice(r.Context(), mealID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) postChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.Advisor.Chat(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) getChatHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Advisor.ChatHistory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) getDailyTip(w http.ResponseWriter, r *http.Request) {
	tip, err := h.Advisor.DailyTip(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"tip": tip})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidMessage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, domain.ErrAdviceNotReady):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
