package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portfolio-analyzer/internal/config"
	"portfolio-analyzer/internal/history"
	"portfolio-analyzer/internal/montecarlo"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "history":
		cmdHistory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/simulation.yaml [--stats-out results/stats.csv] [--values-out results/final_values.csv] [--paths-out results/paths.csv]")
	fmt.Println("  cli history --db ./history.sqlite [--n 10]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints a percentile/probability summary; CSV outputs are optional")
	fmt.Println("  - a fixed seed in the config makes runs reproducible")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config (omit for defaults)")
	statsOut := fs.String("stats-out", "", "Optional output CSV for summary statistics")
	valuesOut := fs.String("values-out", "", "Optional output CSV for per-path final values")
	pathsOut := fs.String("paths-out", "", "Optional output CSV for full path ledger (large)")
	timeout := fs.Duration("timeout", 0, "Optional wall-clock limit for the batch (0=none)")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	engine := montecarlo.New(cfg.EngineOptions())
	start := time.Now()
	res, err := engine.Run(ctx, cfg.ToRequest())
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	printSummary(res, elapsed)

	for _, out := range []struct {
		path  string
		write func(string) error
	}{
		{*statsOut, func(p string) error { return montecarlo.WriteStatisticsCSV(p, res.Stats) }},
		{*valuesOut, func(p string) error { return montecarlo.WriteFinalValuesCSV(p, res.FinalValues) }},
		{*pathsOut, func(p string) error { return montecarlo.WritePathsCSV(p, res) }},
	} {
		if out.path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(out.path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir for %s: %v\n", out.path, err)
			os.Exit(1)
		}
		if err := out.write(out.path); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", out.path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", out.path)
	}
}

func printSummary(res *montecarlo.Result, elapsed time.Duration) {
	s := res.Stats
	fmt.Printf("Run %s: %d paths x %d years in %s\n", res.ID, len(res.Paths), s.TimeHorizon, elapsed.Round(time.Millisecond))
	fmt.Printf("Initial investment: $%.2f\n", s.InitialInvestment)
	fmt.Printf("Final value  p5=$%.2f  p50=$%.2f  p95=$%.2f\n", s.FinalValue.P5, s.FinalValue.P50, s.FinalValue.P95)
	fmt.Printf("Annualized   p5=%.2f%%  p50=%.2f%%  p95=%.2f%%\n",
		s.AnnualizedReturn.P5*100, s.AnnualizedReturn.P50*100, s.AnnualizedReturn.P95*100)
	fmt.Printf("P(depletion)=%.4f  P(maintain)=%.4f  P(double)=%.4f\n",
		s.ProbabilityOfDepletion, s.ProbabilityOfMaintaining, s.ProbabilityOfDoubling)
	if s.DrawdownEnabled {
		fmt.Printf("Drawdown: $%.2f/yr @ %.2f%% inflation, nominal total $%.2f, mean tax paid $%.2f\n",
			s.AnnualDrawdown, s.InflationRate*100, s.TotalDrawdown, s.MeanTaxPaid)
	}
}

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "./history.sqlite", "Path to SQLite history DB")
	n := fs.Int("n", 10, "Number of recent runs to show")
	_ = fs.Parse(args)

	store, err := history.NewSQLite(*dbPath, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	recs, err := store.Recent(context.Background(), *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query history: %v\n", err)
		os.Exit(1)
	}

	if len(recs) == 0 {
		fmt.Println("no recorded runs")
		return
	}
	for _, rec := range recs {
		fmt.Printf("%s  %s  sims=%d horizon=%dy  median=$%.2f  P(depletion)=%.4f\n",
			rec.ID,
			rec.CreatedAt.Format(time.RFC3339),
			rec.Parameters.NumSimulations,
			rec.Parameters.TimeHorizon,
			rec.Statistics.FinalValue.P50,
			rec.Statistics.ProbabilityOfDepletion,
		)
	}
}
