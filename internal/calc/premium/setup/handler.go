package setup

import (
	"encoding/json"
	"net/http"

	braking "Brakelab/internal/calc/braking"
)

type Handler struct{}

func (h *Handler) Tyres(w http.ResponseWriter, r *http.Request) {
	input := Input{Scenario: braking.DefaultInput()}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Advise(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
