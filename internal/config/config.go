package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultN      = 500
	DefaultSeed   = 42
	DefaultMaxLag = 20
	DefaultPhi    = 0.5
	DefaultTheta  = 0.5
	DefaultSigma  = 1.0
)

type Config struct {
	Process string       `yaml:"process"`
	N       int          `yaml:"n"`
	Seed    int64        `yaml:"seed"`
	MaxLag  int          `yaml:"max_lag"`
	Strict  *bool        `yaml:"strict,omitempty"`
	Params  ParamsConfig `yaml:"params"`
}

type ParamsConfig struct {
	Const float64 `yaml:"const"`
	Phi   float64 `yaml:"phi"`
	Theta float64 `yaml:"theta"`
	Sigma float64 `yaml:"sigma"`
	Omega float64 `yaml:"omega"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

func DefaultConfig() *Config {
	return &Config{
		Process: "ar1",
		N:       DefaultN,
		Seed:    DefaultSeed,
		MaxLag:  DefaultMaxLag,
		Params: ParamsConfig{
			Const: 1.0,
			Phi:   DefaultPhi,
			Theta: DefaultTheta,
			Sigma: DefaultSigma,
			Omega: 0.02,
			Alpha: 0.3,
			Beta:  0.6,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ProcessParams returns the parameter map relevant to the configured
// process, keyed the way the simulators name their parameters.
func (c *Config) ProcessParams() map[string]float64 {
	switch c.Process {
	case "ar1":
		return map[string]float64{"const": c.Params.Const, "phi": c.Params.Phi, "sigma": c.Params.Sigma}
	case "ma1":
		return map[string]float64{"const": c.Params.Const, "theta": c.Params.Theta, "sigma": c.Params.Sigma}
	case "garch11":
		return map[string]float64{
			"const": c.Params.Const,
			"phi":   c.Params.Phi,
			"omega": c.Params.Omega,
			"alpha": c.Params.Alpha,
			"beta":  c.Params.Beta,
		}
	default:
		return map[string]float64{"sigma": c.Params.Sigma}
	}
}
