package store

import (
	"math"
	"testing"

	"github.com/ts-lab/stosim/internal/experiment"
	"github.com/ts-lab/stosim/internal/stochastic"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &experiment.Result{
		Path:    stochastic.Series{1.5, -0.25, 3.0},
		Metrics: map[string]float64{"mean": 1.416667},
	}

	runID, err := s.Save("ar1", 3, 42, map[string]float64{"phi": 0.9}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Process != "ar1" || meta.N != 3 || meta.Seed != 42 {
		t.Errorf("metadata round trip lost fields: %+v", meta)
	}
	if meta.Params["phi"] != 0.9 {
		t.Errorf("expected phi 0.9, got %f", meta.Params["phi"])
	}

	path, variance, err := s.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(path))
	}
	if variance != nil {
		t.Errorf("expected no variance column, got %d values", len(variance))
	}
	for i, want := range result.Path {
		if math.Abs(path[i]-want) > 1e-6 {
			t.Errorf("sample %d: expected %f, got %f", i, want, path[i])
		}
	}
}

func TestSaveWithVariance(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &experiment.Result{
		Path:     stochastic.Series{0.1, 0.2},
		Variance: stochastic.Series{0.02, 0.025},
	}

	runID, err := s.Save("garch11", 2, 7, nil, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	path, variance, err := s.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(path) != 2 || len(variance) != 2 {
		t.Fatalf("expected 2 samples with variance, got %d/%d", len(path), len(variance))
	}
	if math.Abs(variance[1]-0.025) > 1e-6 {
		t.Errorf("expected variance 0.025, got %f", variance[1])
	}
}

func TestListEmptyStore(t *testing.T) {
	s := New(t.TempDir() + "/missing")

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &experiment.Result{Path: stochastic.Series{1.0}}
	if _, err := s.Save("whitenoise", 1, 1, nil, result); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Process != "whitenoise" {
		t.Errorf("expected whitenoise, got %s", runs[0].Process)
	}
}

func TestLoadMissingRun(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, _, err := s.LoadSeries("nope"); err == nil {
		t.Error("expected error for missing series")
	}
}
