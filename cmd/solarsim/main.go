package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Storm00212/Solar-system/internal/config"
	"github.com/Storm00212/Solar-system/internal/metrics"
	"github.com/Storm00212/Solar-system/internal/sim"
	"github.com/Storm00212/Solar-system/internal/store"
	"github.com/Storm00212/Solar-system/internal/viz"
)

var (
	dataDir      string
	preset       string
	configFile   string
	seed         int64
	daysPerFrame float64
	days         float64
	trailCap     int
	gravityScale float64
	softening    float64
	sampleEvery  int
	frameRate    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solarsim",
		Short: "artistically-scaled star system simulator",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".solarsim", "data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless simulation with a recorded run",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&days, "days", 3650, "simulated days")
	runCmd.Flags().IntVar(&sampleEvery, "sample-every", 10, "record every n-th frame")

	for _, cmd := range []*cobra.Command{rootCmd, liveCmd, runCmd} {
		cmd.Flags().StringVar(&preset, "preset", "full", "system preset")
		cmd.Flags().StringVar(&configFile, "config", "", "system config file (yaml)")
		cmd.Flags().Int64Var(&seed, "seed", 0, "orbital phase seed (0 = random)")
		cmd.Flags().Float64Var(&daysPerFrame, "days-per-frame", 0, "simulated days per frame")
		cmd.Flags().IntVar(&trailCap, "trail", 0, "trail capacity per body")
		cmd.Flags().Float64Var(&gravityScale, "gravity-scale", 0, "gravity multiplier")
		cmd.Flags().Float64Var(&softening, "softening", 0, "squared-distance softening")
	}
	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "display frame rate")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "display frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run's energy",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a recorded run to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list system presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSystem resolves the config file or preset and applies flag
// overrides. CLI flags win over the file, the file wins over the preset.
func loadSystem(cmd *cobra.Command) (*config.System, error) {
	var cfg *config.System
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("days-per-frame") {
		cfg.DaysPerFrame = daysPerFrame
	}
	if cmd.Flags().Changed("trail") {
		cfg.TrailCapacity = trailCap
	}
	if cmd.Flags().Changed("gravity-scale") {
		cfg.GravityScale = gravityScale
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}

	return cfg, cfg.Validate()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadSystem(cmd)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(s, frameRate))
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadSystem(cmd)
	if err != nil {
		return err
	}
	if days <= 0 {
		return fmt.Errorf("--days must be positive, got %g", days)
	}
	if sampleEvery < 1 {
		return fmt.Errorf("--sample-every must be at least 1, got %d", sampleEvery)
	}

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	observers := []metrics.Metric{
		metrics.NewEnergyDrift(),
		metrics.NewMomentumBalance(),
		metrics.NewAngularMomentumDrift(),
	}

	frames := int(days / cfg.DaysPerFrame)
	samples := make([]store.Sample, 0, frames/sampleEvery+1)

	record := func() {
		e := s.Energy()
		bodies := s.Bodies()
		sample := store.Sample{
			Day:       s.ElapsedDays(),
			Kinetic:   e.Kinetic,
			Potential: e.Potential,
			Total:     e.Total,
		}
		for _, b := range bodies {
			sample.Positions = append(sample.Positions, b.Pos)
		}
		samples = append(samples, sample)
	}

	fmt.Printf("simulating %s for %.0f days...\n", cfg.Name, days)
	start := time.Now()

	record()
	for _, m := range observers {
		m.Observe(s)
	}
	for i := 0; i < frames; i++ {
		if err := s.Advance(cfg.DaysPerFrame); err != nil {
			return err
		}
		for _, m := range observers {
			m.Observe(s)
		}
		if (i+1)%sampleEvery == 0 {
			record()
		}
	}

	elapsed := time.Since(start)

	meta := store.RunMetadata{
		System:       cfg.Name,
		Timestamp:    time.Now(),
		Seed:         cfg.Seed,
		DaysPerFrame: cfg.DaysPerFrame,
		Days:         s.ElapsedDays(),
		Bodies:       s.BodyCount(),
		Metrics:      make(map[string]float64),
	}
	for _, m := range observers {
		meta.Metrics[m.Name()] = m.Value()
	}

	runID, err := st.Save(meta, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("bodies: %d, frames: %d, samples: %d\n", s.BodyCount(), frames, len(samples))
	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tDAYS\tBODIES\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%d\t%.2e\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Days,
			run.Bodies,
			run.Metrics["energy_drift"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s, %d bodies, %.0f days\n\n", meta.System, meta.Bodies, meta.Days)

	total := make([]float64, len(samples))
	for i, s := range samples {
		total[i] = s.Total
	}
	fmt.Println(asciigraph.Plot(total,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("total energy"),
	))

	fmt.Printf("\nenergy drift: %.3e\n", meta.Metrics["energy_drift"])
	fmt.Printf("momentum:     %.3e\n", meta.Metrics["momentum"])

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"day", "kinetic", "potential", "total"}
	for i := range samples[0].Positions {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Day, 'f', 6, 64),
			strconv.FormatFloat(s.Kinetic, 'g', 12, 64),
			strconv.FormatFloat(s.Potential, 'g', 12, 64),
			strconv.FormatFloat(s.Total, 'g', 12, 64),
		}
		for _, p := range s.Positions {
			row = append(row, strconv.FormatFloat(p.X, 'f', 6, 64), strconv.FormatFloat(p.Y, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
