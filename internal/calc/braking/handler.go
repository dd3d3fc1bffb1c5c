package braking

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

// Calc decodes the scenario over the documented defaults, so omitted
// fields keep their default values instead of Go zero values.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input := DefaultInput()
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
