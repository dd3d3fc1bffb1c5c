package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	braking "Brakelab/internal/calc/braking"
)

type Handler struct{}

type ScenarioImportResult struct {
	Count   int              `json:"count"`
	Results []braking.Result `json:"results"`
}

// Braking imports an xlsx sheet of scenarios, one per row, skipping rows
// that fail to parse or calculate (same lenient policy as the UI form).
func (h *Handler) Braking(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []braking.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseScenarioRow(rows[i])
		if err != nil {
			continue
		}
		res, err := braking.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScenarioImportResult{Count: len(results), Results: results})
}

// expected columns: speed_kmh, surface, water_mm, grade, tread_mm,
// pressure_psi, temp_c, slope_deg, abs ("y"/"n", optional)
func parseScenarioRow(row []string) (braking.Input, error) {
	input := braking.DefaultInput()
	if len(row) < 2 {
		return input, fmt.Errorf("bad row")
	}
	speed, err := toFloat(row[0])
	if err != nil {
		return input, err
	}
	input.SpeedKmh = speed
	input.Surface = row[1]
	if len(row) > 2 && row[2] != "" {
		input.WaterDepthMM, _ = toFloat(row[2])
	}
	if len(row) > 3 && row[3] != "" {
		input.GradeEU = row[3]
	}
	if len(row) > 4 && row[4] != "" {
		input.TreadDepthMM, _ = toFloat(row[4])
	}
	if len(row) > 5 && row[5] != "" {
		input.PressurePSI, _ = toFloat(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		input.AmbientTempC, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		input.SlopeDeg, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		input.ABS = row[8] == "y" || row[8] == "yes" || row[8] == "1"
	}
	return input, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
