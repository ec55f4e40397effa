// Package storage persists benchmark runs: one directory per run holding
// metadata.json and records.csv. Records are write-once log output; they
// are never loaded back into a reactor model.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/coresim/pwrsim/internal/core"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved run.
type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Integrator string             `json:"integrator"`
	Samples    int                `json:"samples"`
	Metrics    map[string]float64 `json:"metrics"`
}

var csvHeader = []string{"time", "p", "tf", "tc", "rho", "rod", "pump", "scram"}

// Save writes a run and returns its generated id.
func (s *Store) Save(scenario string, dt, duration float64, integrator string, records []core.Record, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Integrator: integrator,
		Samples:    len(records),
		Metrics:    metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "records.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatFloat(r.T, 'f', 6, 64),
			strconv.FormatFloat(r.P, 'g', -1, 64),
			strconv.FormatFloat(r.Tf, 'f', 3, 64),
			strconv.FormatFloat(r.Tc, 'f', 3, 64),
			strconv.FormatFloat(r.Rho, 'g', -1, 64),
			strconv.FormatFloat(r.Rod, 'f', 4, 64),
			strconv.FormatBool(r.PumpOn),
			strconv.FormatBool(r.Scram),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every saved run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadRecords reads back a run's trajectory.
func (s *Store) LoadRecords(runID string) ([]core.Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "records.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []core.Record{}, nil
	}

	records := make([]core.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			continue
		}
		var rec core.Record
		fields := []*float64{&rec.T, &rec.P, &rec.Tf, &rec.Tc, &rec.Rho, &rec.Rod}
		bad := false
		for i, dst := range fields {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				bad = true
				break
			}
			*dst = v
		}
		if bad {
			continue
		}
		rec.PumpOn, _ = strconv.ParseBool(row[6])
		rec.Scram, _ = strconv.ParseBool(row[7])
		records = append(records, rec)
	}
	return records, nil
}

// ExportJSON writes a run (metadata plus records) as indented JSON.
func ExportJSON(w *json.Encoder, meta *RunMetadata, records []core.Record) error {
	return w.Encode(struct {
		Meta    *RunMetadata  `json:"meta"`
		Records []core.Record `json:"records"`
	}{meta, records})
}
