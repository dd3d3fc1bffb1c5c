package reference

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Surfaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Surfaces())
}

func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, WeatherPresets())
}

func (h *Handler) Grades(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Grades())
}
