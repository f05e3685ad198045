package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/climatefin/riskcore/internal/engine"
	"github.com/climatefin/riskcore/internal/logging"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/seed"
	"github.com/climatefin/riskcore/internal/session"
)

func main() {
	logger := logging.New(logging.Config{
		Level:  slog.LevelInfo,
		Format: logging.FormatText,
		Output: os.Stdout,
	})

	if len(os.Args) < 2 {
		fmt.Println("usage: riskcore <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "analyse":
		if err := analyse(logger, os.Args[2:]); err != nil {
			logger.Error("analyse failed", "error", err)
			os.Exit(1)
		}
	case "report":
		if err := report(logger, os.Args[2:]); err != nil {
			logger.Error("report failed", "error", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown command: %s\n", command)
		os.Exit(1)
	}
}

type runtime struct {
	ctx    context.Context
	cancel context.CancelFunc
	engine *engine.Engine
	logger *slog.Logger
}

func buildRuntime(logger *slog.Logger) *runtime {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	riskEngine := engine.New(engine.Config{
		Registry: registry.Load(),
		Sessions: session.NewStore(),
	})

	return &runtime{
		ctx:    ctx,
		cancel: cancel,
		engine: riskEngine,
		logger: logger,
	}
}

// runnerFlags are the scenario/regime/year/framework knobs shared by
// every subcommand.
type runnerFlags struct {
	scenario string
	regime   string
	year     int
	fw       string
	out      string
}

func bindRunnerFlags(fs *flag.FlagSet) *runnerFlags {
	f := &runnerFlags{}
	fs.StringVar(&f.scenario, "scenario", string(registry.ScenarioNetZero2050), "scenario id")
	fs.StringVar(&f.regime, "regime", string(registry.RegimeGlobal), "carbon pricing regime")
	fs.IntVar(&f.year, "year", time.Now().Year()+5, "analysis year")
	fs.StringVar(&f.fw, "framework", string(registry.FrameworkTCFD), "disclosure framework")
	fs.StringVar(&f.out, "out", "", "output file path (default: stdout)")
	return f
}

func writeJSON(out string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(out, data, 0o644)
}

// analyse runs the transition-risk, physical-risk, and ESG engines
// over the seed facility portfolio and prints the combined result.
func analyse(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("analyse", flag.ExitOnError)
	flags := bindRunnerFlags(fs)
	_ = fs.Parse(args)

	rt := buildRuntime(logger)
	defer rt.cancel()

	facilities := seed.Facilities()
	scenarioID := registry.ScenarioID(flags.scenario)
	regime := registry.Regime(flags.regime)
	framework := registry.FrameworkID(flags.fw)

	transitionResult, err := rt.engine.TransitionAnalysis(rt.ctx, facilities, scenarioID, regime, flags.year, flags.year)
	if err != nil {
		return fmt.Errorf("transition analysis: %w", err)
	}
	physicalResult, err := rt.engine.PhysicalAssessment(rt.ctx, facilities, scenarioID, flags.year, false)
	if err != nil {
		return fmt.Errorf("physical assessment: %w", err)
	}
	esgResult, err := rt.engine.ESGAssessment(facilities, framework)
	if err != nil {
		return fmt.Errorf("esg assessment: %w", err)
	}

	out := struct {
		Transition interface{} `json:"transition"`
		Physical   interface{} `json:"physical"`
		ESG        interface{} `json:"esg"`
	}{transitionResult, physicalResult, esgResult}

	logger.Info("analysis complete", "facilities", len(facilities), "scenario", scenarioID, "year", flags.year)
	return writeJSON(flags.out, out)
}

// report generates the multi-sheet disclosure report artefact.
func report(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	flags := bindRunnerFlags(fs)
	_ = fs.Parse(args)

	rt := buildRuntime(logger)
	defer rt.cancel()

	facilities := seed.Facilities()
	bundle, err := rt.engine.DisclosureReport(rt.ctx, facilities,
		registry.FrameworkID(flags.fw), registry.ScenarioID(flags.scenario),
		registry.Regime(flags.regime), flags.year)
	if err != nil {
		return fmt.Errorf("generate disclosure report: %w", err)
	}

	logger.Info("disclosure report generated", "facilities", len(facilities), "sheets", len(bundle))
	return writeJSON(flags.out, bundle)
}
