package batch

import (
	"encoding/json"
	"fmt"

	braking "Brakelab/internal/calc/braking"
)

type Input struct {
	// Items stay raw so each scenario can be decoded over the documented
	// defaults individually.
	Items []json.RawMessage `json:"items"`
}

type Result struct {
	Results []braking.Result `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]braking.Result, 0, len(in.Items))}
	for i, raw := range in.Items {
		item := braking.DefaultInput()
		if err := json.Unmarshal(raw, &item); err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		res, err := braking.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
