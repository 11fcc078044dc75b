package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"nutrilens/aggregator"
	"nutrilens/meal-svc/internal/domain"
	"nutrilens/meal-svc/internal/service"
	"nutrilens/session"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	maxPhotoSize = 10 << 20
	// room for multipart boundaries and part headers
	maxFormOverhead = 1 << 20
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type Handler struct {
	Meals    service.MealServiceInterface
	Profiles service.ProfileServiceInterface
	Share    service.ShareServiceInterface
}

func NewHandler(mealSvc service.MealServiceInterface, profileSvc service.ProfileServiceInterface, shareSvc service.ShareServiceInterface) *Handler {
	return &Handler{
		Meals:    mealSvc,
		Profiles: profileSvc,
		Share:    shareSvc,
	}
}

// RegisterRoutes mounts /health on r and every /api route on api, which is
// expected to sit behind the session middleware.
func (h *Handler) RegisterRoutes(r, api *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api.HandleFunc("/meals/analyze", h.analyzePhoto).Methods("POST")
	api.HandleFunc("/meals", h.logMeal).Methods("POST")
	api.HandleFunc("/meals", h.listMeals).Methods("GET")
	api.HandleFunc("/meals/{id}", h.getMeal).Methods("GET")

	api.HandleFunc("/nutrition", h.getNutrition).Methods("GET")

	api.HandleFunc("/profile", h.getProfile).Methods("GET")
	api.HandleFunc("/profile", h.saveProfile).Methods("PUT")

	api.HandleFunc("/share/{date}", h.getShareLink).Methods("GET")
	api.HandleFunc("/share/{date}/qrcode", h.getShareQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "meal-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) analyzePhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+maxFormOverhead)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "File too large", http.StatusBadRequest)
			return
		}
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedPhotoTypes[contentType] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, WebP allowed", http.StatusBadRequest)
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	analysis, err := h.Meals.Analyze(r.Context(), image, contentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) logMeal(w http.ResponseWriter, r *http.Request) {
	var meal domain.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Meals.Log(r.Context(), &meal); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

// listMeals serves ?date=YYYY-MM-DD or ?from=&to= (inclusive days), and
// today when neither is given.
func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, to := aggregator.Today(), aggregator.Today()
	var err error
	switch {
	case query.Get("date") != "":
		if from, err = aggregator.ParseDate(query.Get("date")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		to = from
	case query.Get("from") != "" || query.Get("to") != "":
		if from, err = aggregator.ParseDate(query.Get("from")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if to, err = aggregator.ParseDate(query.Get("to")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	meals, err := h.Meals.ForRange(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	if meals == nil {
		meals = []domain.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

func (h *Handler) getMeal(w http.ResponseWriter, r *http.Request) {
	mealID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid meal id", http.StatusBadRequest)
		return
	}

	meal, err := h.Meals.Get(r.Context(), mealID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

func (h *Handler) getNutrition(w http.ResponseWriter, r *http.Request) {
	food := r.URL.Query().Get("food")
	if food == "" {
		http.Error(w, "food query parameter is required", http.StatusBadRequest)
		return
	}

	facts, err := h.Meals.Nutrition(r.Context(), food)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facts)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Profiles.Save(r.Context(), &profile); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) getShareLink(w http.ResponseWriter, r *http.Request) {
	day, err := aggregator.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, service.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"date": day.String(),
		"link": h.Share.Link(sess.UserID, day),
	})
}

func (h *Handler) getShareQRCode(w http.ResponseWriter, r *http.Request) {
	day, err := aggregator.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	png, err := h.Share.QRCode(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
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
	case errors.Is(err, service.ErrInvalidMeal),
		errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, domain.ErrNoFoodDetected):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, domain.ErrNutritionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUpstream):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
