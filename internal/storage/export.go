package storage

import (
	"encoding/json"
	"io"
)

// ExportData is the JSON shape of a full run export.
type ExportData struct {
	Level   string             `json:"level"`
	FixedDT float64            `json:"fixed_dt"`
	Steps   int                `json:"steps"`
	Columns []string           `json:"columns"`
	Times   []float64          `json:"times"`
	Rows    [][]float64        `json:"rows"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a saved run as a single JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	header, rows, err := s.LoadStates(runID)
	if err != nil {
		return err
	}

	times := make([]float64, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			times = append(times, row[0])
		}
	}

	data := ExportData{
		Level:   meta.Level,
		FixedDT: meta.FixedDT,
		Steps:   len(rows),
		Columns: header,
		Times:   times,
		Rows:    rows,
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
