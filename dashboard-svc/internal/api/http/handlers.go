package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"nutrilens/aggregator"
	"nutrilens/dashboard-svc/internal/service"
	"nutrilens/session"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	defaultHistoryDays = 7
	defaultBestDays    = 30
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	Dashboard service.DashboardServiceInterface
	Hub       *service.Hub
}

func NewHandler(dashboard service.DashboardServiceInterface, hub *service.Hub) *Handler {
	return &Handler{Dashboard: dashboard, Hub: hub}
}

func (h *Handler) RegisterRoutes(r, api *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api.HandleFunc("/dashboard/daily", h.getDaily).Methods("GET")
	api.HandleFunc("/dashboard/history", h.getHistory).Methods("GET")
	api.HandleFunc("/dashboard/best-days", h.getBestDays).Methods("GET")
	api.HandleFunc("/dashboard/live", h.live).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "dashboard-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	day := h.Dashboard.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := aggregator.ParseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		day = parsed
	}

	totals, err := h.Dashboard.Daily(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// getHistory defaults to the week ending today. A lone from runs to today;
// a lone to starts six days earlier.
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	to := h.Dashboard.Today()
	if raw := query.Get("to"); raw != "" {
		parsed, err := aggregator.ParseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		to = parsed
	}
	from := to.AddDays(-(defaultHistoryDays - 1))
	if raw := query.Get("from"); raw != "" {
		parsed, err := aggregator.ParseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		from = parsed
	}

	history, err := h.Dashboard.History(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []aggregator.DailyTotals{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) getBestDays(w http.ResponseWriter, r *http.Request) {
	days := defaultBestDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid days", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	best, err := h.Dashboard.BestDays(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, best)
}

func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, service.ErrUnauthenticated)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	h.Hub.Serve(service.NewClient(sess.UserID, conn))
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
	case errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidWindow):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Dashboard request failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
