package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	braking "Brakelab/internal/calc/braking"
)

type Input struct {
	Project  string        `json:"project"`
	Author   string        `json:"author"`
	Title    string        `json:"title"`
	Notes    string        `json:"notes"`
	Scenario braking.Input `json:"scenario"`
}

type Handler struct{}

// Generate runs the scenario and streams a one-page PDF summary.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	input := Input{Scenario: braking.DefaultInput()}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Stopping Distance Report"
	}

	res, err := braking.Calculate(input.Scenario)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Scenario")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Speed: %.0f km/h on %s, %.1f mm water, slope %.1f deg",
		input.Scenario.SpeedKmh, input.Scenario.Surface,
		res.EffectiveWaterDepthMM, input.Scenario.SlopeDeg))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if res.CanStopWithBrakes {
		pdf.Cell(0, 6, fmt.Sprintf("Reaction distance: %.1f m", res.ReactionDistanceM))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Braking distance: %.1f m", res.BrakingDistanceM))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Total stopping distance: %.1f m (%.1f ft, %.1f car lengths)",
			res.StoppingDistanceM, res.StoppingDistanceFt, res.StoppingDistanceCars))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Effective friction: %.3f, deceleration %.2f m/s2 (%.2f g)",
			res.EffectiveFriction, res.DecelerationMS2, res.DecelerationG))
	} else if res.CanStopEventually {
		pdf.Cell(0, 6, fmt.Sprintf("Brakes cannot stop the vehicle; it coasts to a stop after %.0f m",
			res.StoppingDistanceM))
	} else {
		pdf.Cell(0, 6, "The vehicle cannot stop on this slope.")
		if res.Rolling != nil {
			pdf.Ln(6)
			pdf.Cell(0, 6, fmt.Sprintf("Terminal speed: %.0f km/h", res.Rolling.TerminalSpeedKmh))
		}
	}
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Risk level: %s", res.Risk.Level))
	pdf.Ln(10)

	if len(res.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, warn := range res.Warnings {
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s", warn.Severity, warn.Message), "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, input.Notes, "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stopping-distance.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
