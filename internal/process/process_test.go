package process

import (
	"errors"
	"math"
	"testing"

	"github.com/ts-lab/stosim/internal/stochastic"
)

func TestSimulatorsDeterministic(t *testing.T) {
	procs := []stochastic.Process{
		NewWhiteNoise(),
		NewAR1(),
		NewMA1(),
		NewRandomWalk(),
		NewGARCH11(),
	}

	for _, p := range procs {
		a, err := p.Simulate(200, 42)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", p.Name(), err)
		}
		b, err := p.Simulate(200, 42)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", p.Name(), err)
		}

		for i := range a.Path {
			if a.Path[i] != b.Path[i] {
				t.Fatalf("%s: path differs at %d between identical seeds", p.Name(), i)
			}
		}
	}
}

func TestSimulatorsRejectBadLength(t *testing.T) {
	procs := []stochastic.Process{
		NewWhiteNoise(),
		NewAR1(),
		NewMA1(),
		NewRandomWalk(),
		NewGARCH11(),
	}

	for _, p := range procs {
		for _, n := range []int{0, -3} {
			if _, err := p.Simulate(n, 1); !errors.Is(err, stochastic.ErrInvalidParameter) {
				t.Errorf("%s: expected ErrInvalidParameter for n=%d, got %v", p.Name(), n, err)
			}
		}
	}
}

func TestWhiteNoiseMoments(t *testing.T) {
	p := NewWhiteNoise()
	p.Sigma = 0.7

	result, err := p.Simulate(100000, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.Path.Mean()) > 0.02 {
		t.Errorf("expected sample mean near 0, got %f", result.Path.Mean())
	}
	if math.Abs(result.Path.Variance()-0.49) > 0.02 {
		t.Errorf("expected sample variance near 0.49, got %f", result.Path.Variance())
	}
}

func TestWhiteNoiseNegativeSigma(t *testing.T) {
	p := NewWhiteNoise()
	p.Sigma = -1

	if _, err := p.Simulate(10, 1); !errors.Is(err, stochastic.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestAR1StationaryMeanStart(t *testing.T) {
	p := NewAR1() // c=1, phi=0.5, sigma=0.2
	const seed = 42

	result, err := p.Simulate(500, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Path) != 500 {
		t.Fatalf("expected length 500, got %d", len(result.Path))
	}

	// Replay the recursion against the same innovation stream.
	eps, _ := stochastic.Normal(seed, 500, 0, 0.2)
	want := 1.0/(1-0.5) + eps[0]
	if result.Path[0] != want {
		t.Errorf("expected y[0] = %v, got %v", want, result.Path[0])
	}
	prev := want
	for tt := 1; tt < 500; tt++ {
		prev = 1.0 + 0.5*prev + eps[tt]
		if result.Path[tt] != prev {
			t.Fatalf("recursion diverged at t=%d", tt)
		}
	}
}

func TestAR1NonStationaryStillRuns(t *testing.T) {
	p := NewAR1()
	p.Phi = 1.1

	result, err := p.Simulate(100, 3)
	if err != nil {
		t.Fatalf("expected explosive AR(1) to run, got error: %v", err)
	}
	if len(result.Path) != 100 {
		t.Errorf("expected length 100, got %d", len(result.Path))
	}
	if !result.Path.IsValid() {
		t.Error("explosive path should still be finite at n=100")
	}
}

func TestAR1StrictRejectsUnitRoot(t *testing.T) {
	p := NewAR1()
	p.Phi = 1.0
	p.Strict = true

	if _, err := p.Simulate(100, 3); !errors.Is(err, stochastic.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestRandomWalkIsCumulativeNoise(t *testing.T) {
	p := NewRandomWalk()
	const seed = 7

	result, err := p.Simulate(300, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eps, _ := stochastic.Normal(seed, 300, 0, 1)
	cum := eps.CumSum()
	for i := range cum {
		if result.Path[i] != cum[i] {
			t.Fatalf("path[%d] != cumsum of noise: %v vs %v", i, result.Path[i], cum[i])
		}
	}

	// First differences recover the noise exactly.
	d := result.Path.Diff()
	for i := range d {
		if d[i] != eps[i+1] {
			t.Fatalf("diff[%d] != eps[%d]: %v vs %v", i, i+1, d[i], eps[i+1])
		}
	}
}

func TestMA1ZeroThetaReducesToNoise(t *testing.T) {
	p := NewMA1()
	p.Const = 2.5
	p.Theta = 0
	const seed = 13

	result, err := p.Simulate(200, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eps, _ := stochastic.Normal(seed, 200, 0, 1)
	for i := range eps {
		if result.Path[i] != 2.5+eps[i] {
			t.Fatalf("path[%d]: expected const + noise, got %v", i, result.Path[i])
		}
	}
}

func TestGARCH11BurnInLengths(t *testing.T) {
	p := NewGARCH11() // c=1, phi=0.5, omega=0.02, alpha=0.3, beta=0.6

	result, err := p.Simulate(500, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Path) != 500 {
		t.Errorf("expected path length 500, got %d", len(result.Path))
	}
	if len(result.Variance) != 500 {
		t.Errorf("expected variance length 500, got %d", len(result.Variance))
	}

	for i, v := range result.Variance {
		if v <= 0 {
			t.Fatalf("conditional variance must stay positive, got %v at %d", v, i)
		}
	}
}

func TestGARCH11StrictRejectsNonStationaryVariance(t *testing.T) {
	p := NewGARCH11()
	p.Alpha = 0.5
	p.Beta = 0.6

	if _, err := p.Simulate(100, 1); !errors.Is(err, stochastic.ErrNonStationaryVariance) {
		t.Errorf("expected ErrNonStationaryVariance, got %v", err)
	}
}

func TestGARCH11NonStrictRunsAnyway(t *testing.T) {
	p := NewGARCH11()
	p.Alpha = 0.5
	p.Beta = 0.6
	p.Strict = false

	result, err := p.Simulate(50, 1)
	if err != nil {
		t.Fatalf("expected non-strict simulation to run, got %v", err)
	}
	if len(result.Path) != 50 || len(result.Variance) != 50 {
		t.Errorf("expected two length-50 series, got %d and %d", len(result.Path), len(result.Variance))
	}
}

func TestGARCH11RejectsNegativeCoefficients(t *testing.T) {
	p := NewGARCH11()
	p.Alpha = -0.1

	if _, err := p.Simulate(100, 1); !errors.Is(err, stochastic.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestConfigurableRoundTrip(t *testing.T) {
	procs := []stochastic.Configurable{
		NewWhiteNoise(),
		NewAR1(),
		NewMA1(),
		NewRandomWalk(),
		NewGARCH11(),
	}

	for _, p := range procs {
		for name := range p.Params() {
			if err := p.SetParam(name, 0.25); err != nil {
				t.Errorf("SetParam(%q) failed: %v", name, err)
			}
			if got := p.Params()[name]; got != 0.25 {
				t.Errorf("param %q: expected 0.25, got %f", name, got)
			}
		}
		if err := p.SetParam("bogus", 1); err == nil {
			t.Error("expected error for unknown parameter")
		}
	}
}
