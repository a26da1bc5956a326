package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/torus/internal/analysis"
	"github.com/san-kum/torus/internal/config"
	"github.com/san-kum/torus/internal/life"
	"github.com/san-kum/torus/internal/metrics"
	"github.com/san-kum/torus/internal/rng"
	"github.com/san-kum/torus/internal/runner"
	"github.com/san-kum/torus/internal/storage"
	"github.com/san-kum/torus/internal/sweep"
	"github.com/san-kum/torus/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	height      int
	width       int
	probability float64
	seed        int64
	delay       time.Duration
	generations int
	stopOnCycle bool
	aliveGlyph  string
	deadGlyph   string
	configFile  string
	preset      string
	save        bool
	quiet       bool
	sweepFile   string
	sweepRuns   int
	sweepSteps  int
	sweepGens   int
)

// main registers the torus commands and exits with status 1 if one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "torus",
		Short:        "toroidal game of life lab",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".torus", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "print generations to stdout",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	bindSimFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "record the run in the data directory")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "do not print generations")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	bindSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population statistics and dominant period",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tPROB\tDELAY")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%.2f\t%v\n", name, p.Height, p.Width, p.Probability, p.Delay)
			}
			return w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep initial probability across many seeds",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepFile, "file", "", "sweep definition (yaml)")
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 8, "seeds per probability")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "probabilities between 0.05 and 0.5")
	sweepCmd.Flags().IntVar(&sweepGens, "generations", 200, "generations per run")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportCmd, presetsCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bindSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid rows")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid columns")
	cmd.Flags().Float64Var(&probability, "prob", config.DefaultProbability, "initial alive probability")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based unless set here or in --config)")
	cmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "delay between generations")
	cmd.Flags().IntVar(&generations, "generations", 0, "generations to run (0 = until interrupted)")
	cmd.Flags().BoolVar(&stopOnCycle, "stop-on-cycle", false, "stop when a generation repeats")
	cmd.Flags().StringVar(&aliveGlyph, "alive", string(life.DefaultGlyphs.Alive), "glyph for living cells")
	cmd.Flags().StringVar(&deadGlyph, "dead", string(life.DefaultGlyphs.Dead), "glyph for dead cells")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("prob") {
		cfg.Probability = probability
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("stop-on-cycle") {
		cfg.StopOnCycle = stopOnCycle
	}
	if flags.Changed("alive") {
		cfg.Glyphs.Alive = aliveGlyph
	}
	if flags.Changed("dead") {
		cfg.Glyphs.Dead = deadGlyph
	}

	// A zero seed from presets or files means "pick one"; --seed 0 is honored.
	if cfg.Seed == 0 && !flags.Changed("seed") {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func seedGrid(cfg *config.Config) (*life.Grid, error) {
	return life.CreateGrid(cfg.Height, cfg.Width, rng.New(cfg.Seed, cfg.Probability))
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.GetGlyphs()
	if err != nil {
		return err
	}

	grid, err := seedGrid(cfg)
	if err != nil {
		return err
	}

	r := runner.New()
	for _, m := range metrics.Defaults() {
		r.AddMetric(m)
	}
	if !quiet {
		r.AddObserver(runner.NewPrinter(os.Stdout, glyphs))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, runErr := r.Run(ctx, grid, runner.Config{
		Delay:       cfg.Delay,
		Generations: cfg.Generations,
		StopOnCycle: cfg.StopOnCycle,
	})
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	elapsed := time.Since(start)

	fmt.Printf("generations: %d in %v (seed %d)\n", result.Generations, elapsed.Round(time.Millisecond), cfg.Seed)
	if result.Cycle != nil {
		fmt.Printf("cycle: generation %d repeats with period %d\n", result.Cycle.Start, result.Cycle.Period)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Height:      cfg.Height,
			Width:       cfg.Width,
			Probability: cfg.Probability,
			Seed:        cfg.Seed,
			Generations: result.Generations,
			Metrics:     result.Metrics,
			Cycle:       result.Cycle,
		}, result.Population)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.GetGlyphs()
	if err != nil {
		return err
	}

	grid, err := seedGrid(cfg)
	if err != nil {
		return err
	}

	return viz.Run(grid, viz.Options{
		Glyphs:      glyphs,
		Delay:       cfg.Delay,
		Generations: cfg.Generations,
		Seed:        cfg.Seed,
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tPROB\tSEED\tGENS\tCYCLE")

	for _, run := range runs {
		cycle := "-"
		if run.Cycle != nil {
			cycle = fmt.Sprintf("%d/%d", run.Cycle.Start, run.Cycle.Period)
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.2f\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Height,
			run.Width,
			run.Probability,
			run.Seed,
			run.Generations,
			cycle,
		)
	}

	return w.Flush()
}

func loadSeries(runID string) (*storage.RunMetadata, []float64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	population, err := st.LoadPopulation(runID)
	if err != nil {
		return nil, nil, err
	}

	if len(population) == 0 {
		return nil, nil, fmt.Errorf("no data for run %s", runID)
	}
	return meta, analysis.Floats(population), nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d\n", meta.Height, meta.Width)
	fmt.Printf("generations: %d\n\n", len(series)-1)

	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("living cells per generation"),
	)
	fmt.Println(graph)

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	summary := analysis.Summarize(series)
	cells := float64(meta.Height * meta.Width)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", meta.ID)
	fmt.Fprintf(w, "samples\t%d\n", len(series))
	fmt.Fprintf(w, "population min/max\t%.0f / %.0f\n", summary.Min, summary.Max)
	fmt.Fprintf(w, "population mean\t%.2f (%.2f%%)\n", summary.Mean, 100*summary.Mean/cells)
	fmt.Fprintf(w, "population final\t%.0f\n", summary.Final)
	if period := analysis.DominantPeriod(series); period > 0 {
		fmt.Fprintf(w, "dominant period\t%.2f generations\n", period)
	} else {
		fmt.Fprintln(w, "dominant period\t-")
	}
	if meta.Cycle != nil {
		fmt.Fprintf(w, "exact cycle\tfrom generation %d, period %d\n", meta.Cycle.Start, meta.Cycle.Period)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runSweep(cmd *cobra.Command, args []string) error {
	sw := sweep.DefaultSweep()
	if sweepFile != "" {
		loaded, err := sweep.LoadSweep(sweepFile)
		if err != nil {
			return fmt.Errorf("failed to load sweep: %w", err)
		}
		sw = loaded
	}
	if cmd.Flags().Changed("runs") || sweepFile == "" {
		sw.Runs = sweepRuns
	}
	if cmd.Flags().Changed("steps") || sweepFile == "" {
		sw.Steps = sweepSteps
	}
	if cmd.Flags().Changed("generations") || sweepFile == "" {
		sw.Generations = sweepGens
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %d probabilities x %d seeds on %dx%d for %d generations...\n",
		sw.Steps, sw.Runs, sw.Height, sw.Width, sw.Generations)
	start := time.Now()

	points, err := sweep.Run(ctx, sw)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start).Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROB\tFINAL\tMEAN\tCYCLED\tEXTINCT")
	final := make([]float64, len(points))
	for i, pt := range points {
		final[i] = pt.FinalDensity
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t%.0f%%\t%.0f%%\n",
			pt.Probability, pt.FinalDensity, pt.MeanDensity, 100*pt.CycleRate, 100*pt.Extinct)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(final) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(final,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("final density by initial probability"),
		))
	}
	return nil
}
