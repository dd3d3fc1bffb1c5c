package garage

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	auth "Brakelab/internal/auth"
	braking "Brakelab/internal/calc/braking"
	repo "Brakelab/internal/repo"
)

// Saved vehicle presets: a preset stores a named input scenario so users
// can re-run their own car against different conditions. Only inputs are
// persisted, never calculation results.

type Handler struct {
	Repo repo.Repository
}

type createRequest struct {
	Name     string          `json:"name"`
	Scenario json.RawMessage `json:"scenario"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Scenario) == 0 {
		http.Error(w, "Name and scenario required", http.StatusBadRequest)
		return
	}

	// reject scenarios the calculator would reject
	scenario := braking.DefaultInput()
	if err := json.Unmarshal(req.Scenario, &scenario); err != nil {
		http.Error(w, "Invalid scenario", http.StatusBadRequest)
		return
	}
	if _, err := braking.Calculate(scenario); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Repo.CreatePreset(r.Context(), userID, req.Name, req.Scenario)
	if err != nil {
		log.Printf("CreatePreset Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	presets, err := h.Repo.ListPresets(r.Context(), userID)
	if err != nil {
		log.Printf("ListPresets Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if presets == nil {
		presets = []repo.Preset{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presets)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	presetID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid preset id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletePreset(r.Context(), userID, presetID); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Preset not found", http.StatusNotFound)
			return
		}
		log.Printf("DeletePreset Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
