package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ts-lab/stosim/internal/config"
	"github.com/ts-lab/stosim/internal/diagnostics"
	"github.com/ts-lab/stosim/internal/experiment"
	"github.com/ts-lab/stosim/internal/fit"
	"github.com/ts-lab/stosim/internal/stochastic"
	"github.com/ts-lab/stosim/internal/store"
	"github.com/ts-lab/stosim/internal/viz"
)

var (
	dataDir string
	n       int
	seed    int64
	maxLag  int
	runs    int
	strict  bool
	// Process parameters
	constVal float64
	phi      float64
	theta    float64
	sigma    float64
	omega    float64
	alpha    float64
	beta     float64
	// PACF estimation method
	pacfMethod string
	// Degrees of freedom consumed by a fitted model (ljungbox)
	fitdf int
	// ARIMA order for fit requests
	orderP    int
	orderD    int
	orderQ    int
	fitMethod string
	// Config file
	configFile string
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stosim",
		Short: "stochastic process simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stosim", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate [process]",
		Short: "simulate a process and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  generateRun,
	}
	addSimFlags(generateCmd)
	generateCmd.Flags().IntVar(&runs, "runs", 1, "number of independent replications")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored path",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	acfCmd := &cobra.Command{
		Use:   "acf [run_id]",
		Short: "autocorrelation function of a stored path",
		Args:  cobra.ExactArgs(1),
		RunE:  acfRun,
	}
	acfCmd.Flags().IntVar(&maxLag, "maxlag", config.DefaultMaxLag, "maximum lag")

	pacfCmd := &cobra.Command{
		Use:   "pacf [run_id]",
		Short: "partial autocorrelation function of a stored path",
		Args:  cobra.ExactArgs(1),
		RunE:  pacfRun,
	}
	pacfCmd.Flags().IntVar(&maxLag, "maxlag", config.DefaultMaxLag, "maximum lag")
	pacfCmd.Flags().StringVar(&pacfMethod, "method", "dl", "estimation method: dl or ols")

	ljungboxCmd := &cobra.Command{
		Use:   "ljungbox [run_id]",
		Short: "Ljung-Box portmanteau test on a stored path",
		Args:  cobra.ExactArgs(1),
		RunE:  ljungboxRun,
	}
	ljungboxCmd.Flags().IntVar(&maxLag, "maxlag", config.DefaultMaxLag, "number of lags in the statistic")
	ljungboxCmd.Flags().IntVar(&fitdf, "fitdf", 0, "degrees of freedom consumed by a fitted model")

	compareCmd := &cobra.Command{
		Use:   "compare [process1] [process2] ...",
		Short: "overlay paths of several processes on the same seed",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareProcesses,
	}
	compareCmd.Flags().IntVar(&n, "n", config.DefaultN, "number of samples")
	compareCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets [process]",
		Short: "list available presets for a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for process: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	fitRequestCmd := &cobra.Command{
		Use:   "fit-request [run_id]",
		Short: "emit an estimation request for an external fitter",
		Args:  cobra.ExactArgs(1),
		RunE:  fitRequest,
	}
	fitRequestCmd.Flags().IntVar(&orderP, "p", 1, "autoregressive order")
	fitRequestCmd.Flags().IntVar(&orderD, "d", 0, "differencing order")
	fitRequestCmd.Flags().IntVar(&orderQ, "q", 0, "moving-average order")
	fitRequestCmd.Flags().StringVar(&fitMethod, "method", "ml", "estimation method: ml or css")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [process]",
		Short: "simulate with live visualization and parameter tuning",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(generateCmd, listCmd, plotCmd, acfCmd, pacfCmd, ljungboxCmd, compareCmd, presetsCmd, fitRequestCmd, exportCSVCmd, exportJSONCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&n, "n", config.DefaultN, "number of samples")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject non-stationary parameters")
	cmd.Flags().Float64Var(&constVal, "const", 1.0, "intercept (ar1, ma1, garch11)")
	cmd.Flags().Float64Var(&phi, "phi", config.DefaultPhi, "autoregressive coefficient")
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "moving-average coefficient")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "innovation standard deviation")
	cmd.Flags().Float64Var(&omega, "omega", 0.02, "garch variance intercept")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.3, "garch arch coefficient")
	cmd.Flags().Float64Var(&beta, "beta", 0.6, "garch garch coefficient")
}

// resolveConfig merges preset, config file, and flags in increasing
// precedence: CLI flags override the config file, which overrides the
// preset.
func resolveConfig(cmd *cobra.Command, process string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Process = process

	if preset != "" {
		pc := config.GetPreset(process, preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(process))
		}
		// Copy so flag overrides never mutate the shared preset table.
		c := *pc
		cfg = &c
		cfg.Process = process
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		fc.Process = process
		cfg = fc
	}

	if cmd.Flags().Changed("n") {
		cfg.N = n
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("strict") {
		s := strict
		cfg.Strict = &s
	}
	if cmd.Flags().Changed("const") {
		cfg.Params.Const = constVal
	}
	if cmd.Flags().Changed("phi") {
		cfg.Params.Phi = phi
	}
	if cmd.Flags().Changed("theta") {
		cfg.Params.Theta = theta
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Params.Sigma = sigma
	}
	if cmd.Flags().Changed("omega") {
		cfg.Params.Omega = omega
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Params.Alpha = alpha
	}
	if cmd.Flags().Changed("beta") {
		cfg.Params.Beta = beta
	}

	return cfg, nil
}

func generateRun(cmd *cobra.Command, args []string) error {
	process := args[0]

	cfg, err := resolveConfig(cmd, process)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	proc, err := registry.GetProcess(process)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		Process: process,
		N:       cfg.N,
		Seed:    cfg.Seed,
		Params:  cfg.ProcessParams(),
		Strict:  cfg.Strict,
	}

	exp := experiment.New(expCfg)
	if err := exp.Setup(proc, registry.DefaultMetrics(process)); err != nil {
		return err
	}

	fmt.Printf("simulating %s...\n", process)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(process, cfg.N, cfg.Seed, cfg.ProcessParams(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Path))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if runs > 1 {
		ensemble, err := exp.RunEnsemble(context.Background(), runs)
		if err != nil {
			return err
		}

		endpoints := make(stochastic.Series, len(ensemble))
		for i, r := range ensemble {
			endpoints[i] = r.Path[len(r.Path)-1]
		}
		fmt.Printf("\nensemble of %d replications (seeds %d..%d):\n", runs, cfg.Seed, cfg.Seed+int64(runs)-1)
		fmt.Printf("  endpoint mean: %.6f\n", endpoints.Mean())
		fmt.Printf("  endpoint std:  %.6f\n", endpoints.Std())
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runsMeta, err := st.List()
	if err != nil {
		return err
	}

	if len(runsMeta) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROCESS\tTIME\tN\tSEED")

	for _, run := range runsMeta {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Process,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	path, variance, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("process: %s\n", meta.Process)
	fmt.Printf("%s\n\n", viz.Summary(path))

	fmt.Println(viz.PlotPath(path, meta.Process))
	if len(variance) > 0 {
		fmt.Println()
		fmt.Println(viz.PlotVariance(variance))
	}

	return nil
}

func loadPath(runID string) (stochastic.Series, *store.RunMetadata, error) {
	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	path, _, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(path) == 0 {
		return nil, nil, fmt.Errorf("no data in run %s", runID)
	}
	return path, meta, nil
}

func acfRun(cmd *cobra.Command, args []string) error {
	path, meta, err := loadPath(args[0])
	if err != nil {
		return err
	}

	table, err := diagnostics.ACFWithConfidence(path, maxLag)
	if err != nil {
		return err
	}

	fmt.Print(viz.Correlogram(fmt.Sprintf("ACF  %s (%s)", meta.ID, meta.Process), table))

	if sig := diagnostics.SignificantLags(table.Values, table.ConfBound); len(sig) > 0 {
		fmt.Printf("significant lags: %v\n", sig)
	}

	return nil
}

func pacfRun(cmd *cobra.Command, args []string) error {
	path, meta, err := loadPath(args[0])
	if err != nil {
		return err
	}

	var table *diagnostics.Table
	switch pacfMethod {
	case "dl":
		table, err = diagnostics.PACFWithConfidence(path, maxLag)
	case "ols":
		var values []float64
		values, err = diagnostics.PACFOLS(path, maxLag)
		if err == nil {
			lags := make([]int, len(values))
			for i := range lags {
				lags[i] = i
			}
			table = &diagnostics.Table{Lags: lags, Values: values, ConfBound: 1.96 / math.Sqrt(float64(len(path)))}
		}
	default:
		return fmt.Errorf("unknown pacf method: %s (want dl or ols)", pacfMethod)
	}
	if err != nil {
		return err
	}

	fmt.Print(viz.Correlogram(fmt.Sprintf("PACF (%s)  %s (%s)", pacfMethod, meta.ID, meta.Process), table))
	return nil
}

func ljungboxRun(cmd *cobra.Command, args []string) error {
	path, meta, err := loadPath(args[0])
	if err != nil {
		return err
	}

	res, err := diagnostics.LjungBox(path, maxLag, fitdf)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s)\n", meta.ID, meta.Process)
	fmt.Println(viz.LjungBoxReport(res))
	return nil
}

func compareProcesses(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	paths := make([]stochastic.Series, 0, len(args))
	labels := make([]string, 0, len(args))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROCESS\tMEAN\tVARIANCE\tMIN\tMAX")

	for _, name := range args {
		proc, err := registry.GetProcess(name)
		if err != nil {
			return err
		}

		result, err := proc.Simulate(n, seed)
		if err != nil {
			return err
		}

		paths = append(paths, result.Path)
		labels = append(labels, name)

		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			name, result.Path.Mean(), result.Path.Variance(), result.Path.Min(), result.Path.Max())
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.ComparePlot(paths, labels))
	return nil
}

func fitRequest(cmd *cobra.Command, args []string) error {
	path, _, err := loadPath(args[0])
	if err != nil {
		return err
	}

	order := fit.Order{P: orderP, D: orderD, Q: orderQ}
	req, err := fit.NewRequest(path, order, fit.Method(fitMethod))
	if err != nil {
		return err
	}

	return req.Write(os.Stdout)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	path, variance, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"index", "y"}
	if len(variance) == len(path) {
		header = append(header, "variance")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, y := range path {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(y, 'f', 6, 64)}
		if len(variance) == len(path) {
			row = append(row, strconv.FormatFloat(variance[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	path, variance, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	out := struct {
		*store.RunMetadata
		Path     stochastic.Series `json:"path"`
		Variance stochastic.Series `json:"variance,omitempty"`
	}{meta, path, variance}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runLive(cmd *cobra.Command, args []string) error {
	process := args[0]

	cfg, err := resolveConfig(cmd, process)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	proc, err := registry.GetProcess(process)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		Process: process,
		N:       cfg.N,
		Seed:    cfg.Seed,
		Params:  cfg.ProcessParams(),
		Strict:  cfg.Strict,
	}
	exp := experiment.New(expCfg)
	if err := exp.Setup(proc, nil); err != nil {
		return err
	}

	m := viz.NewModel(proc, cfg.N, cfg.Seed)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
