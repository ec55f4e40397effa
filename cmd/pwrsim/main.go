package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/coresim/pwrsim/internal/bench"
	"github.com/coresim/pwrsim/internal/config"
	"github.com/coresim/pwrsim/internal/core"
	"github.com/coresim/pwrsim/internal/export"
	"github.com/coresim/pwrsim/internal/metrics"
	"github.com/coresim/pwrsim/internal/physics"
	"github.com/coresim/pwrsim/internal/reactor"
	"github.com/coresim/pwrsim/internal/storage"
	"github.com/coresim/pwrsim/internal/viz"
)

var (
	dataDir     string
	dt          float64
	duration    float64
	integrator  string
	recordEvery int
	warnClamp   bool
	configFile  string
	preset      string
	power       float64
	series      string
	outFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pwrsim",
		Short: "PWR core physics training simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pwrsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a benchmark scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (0 = scenario default)")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration (0 = scenario default)")
	runCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4, euler)")
	runCmd.Flags().IntVar(&recordEvery, "record-every", 0, "sample cadence in steps")
	runCmd.Flags().BoolVar(&warnClamp, "warn-clamp", false, "print safety-clamp diagnostics")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list benchmark scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := bench.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SCENARIO\tDESCRIPTION")
			for _, name := range registry.List() {
				s, _ := registry.Get(name)
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every scenario and tabulate results",
		RunE:  benchAll,
	}

	criticalCmd := &cobra.Command{
		Use:   "critical",
		Short: "report the critical rod position at a power level",
		RunE:  reportCritical,
	}
	criticalCmd.Flags().Float64Var(&power, "power", 1.0, "normalized power level")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive operator console",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&power, "power", 1.0, "initial normalized power level")
	liveCmd.Flags().Float64Var(&dt, "dt", 0.02, "timestep")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run records to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and records to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render one series of a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&series, "series", "p", "series to plot (p, tf, tc, rho, rod)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "run.svg", "output file")

	rootCmd.AddCommand(runCmd, scenariosCmd, presetsCmd, benchCmd, criticalCmd,
		liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg := config.DefaultConfig()
	cfg.Scenario = name

	if preset != "" {
		pc := config.GetPreset(name, preset)
		if pc == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = pc
	}
	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
		cfg.Scenario = name
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("warn-clamp") {
		cfg.WarnOnClamp = warnClamp
	}

	registry := bench.NewRegistry()
	scenario, err := registry.Get(name)
	if err != nil {
		return err
	}
	// Scenario defaults yield to preset/config/flag overrides.
	if preset != "" || configFile != "" {
		scenario.Duration = cfg.Duration
		scenario.Dt = cfg.Dt
		scenario.RecordEvery = cfg.RecordEvery
	}
	if cmd.Flags().Changed("dt") {
		scenario.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		scenario.Duration = duration
	}
	if cmd.Flags().Changed("record-every") {
		scenario.RecordEvery = recordEvery
	}

	clamps := metrics.NewClampCounter()
	sink := core.WarnSink(clamps)
	if cfg.WarnOnClamp {
		sink = core.FuncSink(func(msg string) {
			clamps.Warn(msg)
			fmt.Fprintln(os.Stderr, msg)
		})
	}
	simCfg := cfg.SimConfig(sink)
	simCfg.WarnOnClamp = true // the counter always listens

	initial, src, err := scenario.Setup(cfg.Params)
	if err != nil {
		return err
	}
	m, err := reactor.New(initial, cfg.Params, simCfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s (%s, dt=%g, %gs)...\n", name, cfg.Integrator, scenario.Dt, scenario.Duration)
	start := time.Now()
	records, err := m.Run(scenario.Duration, scenario.Dt, src, scenario.RecordEvery)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	vals := metrics.Apply(records, metrics.Defaults(&cfg.Params)...)
	vals[clamps.Name()] = clamps.Value()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, scenario.Dt, scenario.Duration, cfg.Integrator, records, vals)
	if err != nil {
		return err
	}

	summary := bench.Summarize(name, records)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", summary.Samples)
	fmt.Printf("P: min %.4g  max %.4g  final %.4g\n", summary.PMin, summary.PMax, summary.PFinal)
	fmt.Printf("Tf max: %.1f K   Tc max: %.1f K\n", summary.TfMax, summary.TcMax)
	fmt.Println("\nmetrics:")
	for name, val := range vals {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func benchAll(cmd *cobra.Command, args []string) error {
	registry := bench.NewRegistry()
	params := core.Default()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSAMPLES\tP_MIN\tP_MAX\tP_FINAL\tTF_MAX\tWALL")

	for _, name := range registry.List() {
		start := time.Now()
		_, summary, err := registry.Run(name, params, core.DefaultSimConfig())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.1f\t%v\n",
			name, summary.Samples, summary.PMin, summary.PMax, summary.PFinal, summary.TfMax, elapsed)
	}
	return w.Flush()
}

func reportCritical(cmd *cobra.Command, args []string) error {
	params := core.Default()
	state, rod, err := physics.CriticalSteadyState(power, &params, true)
	if err != nil {
		return err
	}
	rho := physics.TotalReactivity(state, core.Controls{Rod: rod, PumpOn: true}, 0, &params)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "power\t%.4g\n", power)
	fmt.Fprintf(w, "critical rod\t%.4f\n", rod)
	fmt.Fprintf(w, "fuel temp\t%.1f K\n", state.Tf)
	fmt.Fprintf(w, "coolant temp\t%.1f K\n", state.Tc)
	fmt.Fprintf(w, "rods+scram\t%+.1f pcm\n", core.Pcm(rho.Ext))
	fmt.Fprintf(w, "doppler\t%+.1f pcm\n", core.Pcm(rho.Doppler))
	fmt.Fprintf(w, "moderator\t%+.1f pcm\n", core.Pcm(rho.Moderator))
	fmt.Fprintf(w, "xenon\t%+.1f pcm\n", core.Pcm(rho.Xenon))
	fmt.Fprintf(w, "total\t%+.1f pcm\n", core.Pcm(rho.Total))
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	params := core.Default()
	state, rod, err := physics.CriticalSteadyState(power, &params, true)
	if err != nil {
		return err
	}
	sim, err := reactor.New(state, params, core.DefaultSimConfig())
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewModel(sim, rod, dt))
	if _, err := p.Run(); err != nil {
		return err
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tINTEG\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.4fs\t%s\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Samples,
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
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nscenario: %s\nsamples: %d\n\n", meta.ID, meta.Scenario, len(records))

	plots := []struct {
		caption string
		pick    func(core.Record) float64
	}{
		{"power (normalized)", func(r core.Record) float64 { return r.P }},
		{"fuel temperature (K)", func(r core.Record) float64 { return r.Tf }},
		{"coolant temperature (K)", func(r core.Record) float64 { return r.Tc }},
		{"total reactivity (pcm)", func(r core.Record) float64 { return core.Pcm(r.Rho) }},
	}
	for _, pl := range plots {
		data := make([]float64, len(records))
		for i, r := range records {
			data[i] = pl.pick(r)
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(pl.caption),
		))
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "p", "tf", "tc", "rho", "rod", "pump", "scram"}); err != nil {
		return err
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
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return storage.ExportJSON(enc, meta, records)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}
	svg := export.TrajectorySVG(records, export.Series(series), 800, 400, "#00ff00")
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}
