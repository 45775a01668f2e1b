package config

func boolPtr(b bool) *bool { return &b }

var Presets = map[string]map[string]*Config{
	"whitenoise": {
		"standard": {
			Process: "whitenoise", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Sigma: 1.0},
		},
	},
	"ar1": {
		"mean-reverting": {
			Process: "ar1", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 1.0, Phi: 0.3, Sigma: 0.2},
		},
		"persistent": {
			Process: "ar1", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 1.0, Phi: 0.9, Sigma: 0.2},
		},
		"near-unit-root": {
			Process: "ar1", N: 1000, Seed: 42, MaxLag: 40,
			Params: ParamsConfig{Const: 0.0, Phi: 0.98, Sigma: 1.0},
		},
		"antipersistent": {
			Process: "ar1", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 0.0, Phi: -0.7, Sigma: 1.0},
		},
	},
	"ma1": {
		"positive": {
			Process: "ma1", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 0.0, Theta: 0.8, Sigma: 1.0},
		},
		"negative": {
			Process: "ma1", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 0.0, Theta: -0.8, Sigma: 1.0},
		},
	},
	"randomwalk": {
		"unit": {
			Process: "randomwalk", N: 1000, Seed: 42, MaxLag: 40,
			Params: ParamsConfig{Sigma: 1.0},
		},
	},
	"garch11": {
		"calm": {
			Process: "garch11", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 1.0, Phi: 0.5, Omega: 0.02, Alpha: 0.05, Beta: 0.9},
		},
		"volatile": {
			Process: "garch11", N: 500, Seed: 42, MaxLag: 20,
			Params: ParamsConfig{Const: 1.0, Phi: 0.5, Omega: 0.02, Alpha: 0.3, Beta: 0.6},
		},
		"integrated": {
			Process: "garch11", N: 500, Seed: 42, MaxLag: 20, Strict: boolPtr(false),
			Params: ParamsConfig{Const: 1.0, Phi: 0.5, Omega: 0.02, Alpha: 0.4, Beta: 0.6},
		},
	},
}

func GetPreset(proc, preset string) *Config {
	procPresets, ok := Presets[proc]
	if !ok {
		return nil
	}
	cfg, ok := procPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(proc string) []string {
	procPresets, ok := Presets[proc]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(procPresets))
	for name := range procPresets {
		names = append(names, name)
	}
	return names
}
