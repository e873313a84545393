package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/nvoss/sundiver/internal/export"
	"github.com/nvoss/sundiver/internal/level"
	"github.com/nvoss/sundiver/internal/metrics"
	"github.com/nvoss/sundiver/internal/sim"
	"github.com/nvoss/sundiver/internal/storage"
	"github.com/nvoss/sundiver/internal/tui"
)

var (
	dataDir   string
	levelFile string
	duration  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sundiver",
		Short: "2d orbital arcade: sun, planets, one rocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to playing the standard level.
			return tui.Run(level.Default())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sundiver", "data directory")
	rootCmd.PersistentFlags().StringVar(&levelFile, "level-file", "", "level config file (yaml)")

	playCmd := &cobra.Command{
		Use:   "play [level]",
		Short: "play a level in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playLevel,
	}

	runCmd := &cobra.Command{
		Use:   "run [level]",
		Short: "run a level headless and record telemetry",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 60.0, "simulated seconds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			return st.ExportJSON(os.Stdout, args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [output.svg]",
		Short: "render a recorded run's trajectories as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "list built-in levels",
		RunE:  listLevels,
	}

	rootCmd.AddCommand(playCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportSVGCmd, levelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveLevel picks the level from a --level-file or a preset name,
// defaulting to the standard level.
func resolveLevel(args []string) (*level.Config, error) {
	if levelFile != "" {
		return level.Load(levelFile)
	}

	name := "solo"
	if len(args) > 0 {
		name = args[0]
	}
	cfg := level.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown level: %s (available: %v)", name, level.ListPresets())
	}
	return cfg, nil
}

func playLevel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveLevel(args)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveLevel(args)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}

	rec := storage.NewRecorder(len(cfg.Planets))
	ms := []metrics.Metric{
		metrics.NewOrbitalEnergy(cfg.G, cfg.SunMass),
		metrics.NewRadialDrift(0),
	}
	s.AddObserver(rec)
	for _, m := range ms {
		s.AddObserver(m)
	}

	fmt.Printf("running %s for %.1fs of simulated time...\n", cfg.Name, duration)
	start := time.Now()

	// One fixed step per frame keeps the headless run deterministic.
	for s.Elapsed() < duration {
		s.Advance(cfg.FixedDT, sim.Input{})
	}

	elapsed := time.Since(start)

	results := make(map[string]float64, len(ms))
	for _, m := range ms {
		results[m.Name()] = m.Value()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Name, cfg.FixedDT, duration, rec, results)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", rec.Len())
	fmt.Println("\nmetrics:")
	for name, val := range results {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
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
	fmt.Fprintln(w, "ID\tLEVEL\tTIME\tDURATION\tDT\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Level,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.FixedDT,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, rows, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("level: %s\n", meta.Level)
	fmt.Printf("samples: %d\n\n", len(rows))

	radius := make([]float64, len(rows))
	speed := make([]float64, len(rows))
	for i, row := range rows {
		// Columns: time, rocket x/y, rocket vx/vy, angle, state, planets...
		radius[i] = math.Hypot(row[1], row[2])
		speed[i] = math.Hypot(row[3], row[4])
	}

	fmt.Println(asciigraph.Plot(radius,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("rocket distance to sun"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("rocket speed"),
	))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	header, rows, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	// Two trailing columns per planet.
	numPlanets := (len(header) - 7) / 2

	svg := export.TrajectorySVG(export.RunPaths(rows, numPlanets), 800, 600)
	if svg == "" {
		return fmt.Errorf("not enough samples to render")
	}
	return os.WriteFile(args[1], []byte(svg), 0644)
}

func listLevels(cmd *cobra.Command, args []string) error {
	names := level.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLANETS\tSUN MASS\tLANDING SPEED")
	for _, name := range names {
		cfg := level.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.1f\n", name, len(cfg.Planets), cfg.SunMass, cfg.LandingSpeed)
	}
	return w.Flush()
}
