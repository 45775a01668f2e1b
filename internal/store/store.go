package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ts-lab/stosim/internal/experiment"
	"github.com/ts-lab/stosim/internal/stochastic"
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

type RunMetadata struct {
	ID        string             `json:"id"`
	Process   string             `json:"process"`
	Timestamp time.Time          `json:"timestamp"`
	N         int                `json:"n"`
	Seed      int64              `json:"seed"`
	Params    map[string]float64 `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) Save(process string, n int, seed int64, params map[string]float64, result *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", process, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Process:   process,
		Timestamp: time.Now(),
		N:         n,
		Seed:      seed,
		Params:    params,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Path) == 0 {
		return runID, nil
	}

	header := []string{"index", "y"}
	hasVariance := len(result.Variance) == len(result.Path)
	if hasVariance {
		header = append(header, "variance")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, y := range result.Path {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(y, 'f', 6, 64),
		}
		if hasVariance {
			row = append(row, strconv.FormatFloat(result.Variance[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (stochastic.Series, stochastic.Series, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return stochastic.Series{}, nil, nil
	}

	hasVariance := len(records[0]) > 2

	path := make(stochastic.Series, 0, len(records)-1)
	var variance stochastic.Series
	if hasVariance {
		variance = make(stochastic.Series, 0, len(records)-1)
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		path = append(path, y)

		if hasVariance && len(record) > 2 {
			v, err := strconv.ParseFloat(record[2], 64)
			if err != nil {
				continue
			}
			variance = append(variance, v)
		}
	}

	return path, variance, nil
}
