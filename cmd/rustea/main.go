// Command rustea runs the bundled optimization scenarios (onemax, trap)
// against the estimation-of-distribution runtime, printing progress as
// it goes or, with -watch, driving a live terminal view.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"text/tabwriter"

	"github.com/rustea/rustea-go/cmd/rustea/tui"
	"github.com/rustea/rustea-go/ea"
	"github.com/rustea/rustea-go/internal/runconfig"
	"github.com/rustea/rustea-go/internal/scenario"
)

func main() {
	os.Exit(run())
}

func run() int {
	problem := flag.String("problem", "onemax", "scenario to run: onemax or trap")
	configPath := flag.String("config", "", "path to a TOML run-config file (defaults to ./rustea.toml or ~/.config/rustea/config.toml)")
	budget := flag.Int("budget", 0, "evaluation budget override (0 keeps the scenario default)")
	population := flag.Int("population", 0, "population size override (0 keeps the scenario default)")
	watch := flag.Bool("watch", false, "show a live terminal progress view instead of periodic log lines")
	verbose := flag.Bool("verbose", false, "print a progress line every report interval")
	debug := flag.Bool("debug", false, "enable debug logging to rustea-debug.log")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if *debug {
		if err := setupDebugLog("rustea-debug.log"); err != nil {
			log.Printf("failed to set up debug log: %v", err)
			return 1
		}
	}

	if *cpuprofile != "" {
		stop, err := startCPUProfile(*cpuprofile)
		if err != nil {
			log.Printf("cpu profile: %v", err)
			return 1
		}
		defer stop()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	s, ok := scenario.ByName(*problem)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown problem %q (want onemax or trap)\n", *problem)
		return 1
	}

	path := *configPath
	if path == "" {
		path = runconfig.Path()
	}

	cfg, err := runconfig.Load(path)
	if err != nil {
		log.Printf("loading config: %v", err)
		return 1
	}

	if cfg.PopulationSize > 0 {
		s.PopulationSize = cfg.PopulationSize
	}

	if cfg.EvaluationBudget > 0 {
		s.EvaluationBudget = cfg.EvaluationBudget
	}

	if *population > 0 {
		s.PopulationSize = *population
	}

	evalBudget := s.EvaluationBudget
	if *budget > 0 {
		evalBudget = *budget
	}

	runner, err := s.Build()
	if err != nil {
		log.Printf("building runner: %v", err)
		return 1
	}
	defer runner.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		debugf("received interrupt, cancelling run")
		cancel()
	}()

	if *watch {
		return runWatched(ctx, runner, s.Name, evalBudget, path, cfg)
	}

	return runReporting(ctx, runner, s.Name, evalBudget, *verbose)
}

// reportStep is how many evaluations elapse between progress reports.
const reportStep = 2000

// runReporting drives runner in small budget increments, printing a
// tabwriter summary line at each step (or only the final line when
// verbose is false).
func runReporting(ctx context.Context, runner *ea.Runner, name string, budget int, verbose bool) int {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\tevaluations\tbest fitness\tstatus\n")

	var status ea.Status

	for step := reportStep; ; step += reportStep {
		target := step
		if target > budget {
			target = budget
		}

		var err error

		status, err = runner.Run(ctx, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run error: %v\n", err)
			w.Flush()

			return 1
		}

		if verbose || status.Kind == ea.TargetReached || status.Evaluations >= budget {
			best, _ := ea.BestIndividual(runner.Population(), runner.Evaluator())
			fitness, _ := best.Fitness()

			fmt.Fprintf(w, "%s\t%d\t%.4f\t%s\n", name, status.Evaluations, fitness, status.Kind)
		}

		if status.Kind == ea.TargetReached || status.Evaluations >= budget {
			break
		}

		select {
		case <-ctx.Done():
			goto done
		default:
		}
	}

done:
	w.Flush()

	return 0
}

// runWatched streams progress snapshots to a bubbletea program while
// driving the runner from a background goroutine. It also watches the
// config file for edits so a reload shows up in the status line — the
// structural parameters a Scenario/Runner already closed over (population
// size, operator choice) take effect on the next run rather than live,
// but reporting the reload keeps the watcher honest about what it does.
func runWatched(ctx context.Context, runner *ea.Runner, name string, budget int, configPath string, cfg runconfig.Config) int {
	updates := make(chan tui.Update, 1)

	shared := runconfig.NewShared(cfg)
	stopWatch := make(chan struct{})

	closeWatch, err := runconfig.Watch(configPath, shared, stopWatch)
	if err != nil {
		debugf("config watch disabled: %v", err)
	} else {
		defer closeWatch()
		defer close(stopWatch)
	}

	go func() {
		defer close(updates)

		for step := reportStep; ; step += reportStep {
			target := step
			if target > budget {
				target = budget
			}

			status, err := runner.Run(ctx, target)
			if err != nil {
				updates <- tui.Update{StatusLine: fmt.Sprintf("error: %v", err), Done: true}
				return
			}

			best, _ := ea.BestIndividual(runner.Population(), runner.Evaluator())
			fitness, _ := best.Fitness()

			done := status.Kind == ea.TargetReached || status.Evaluations >= budget

			statusLine := fmt.Sprintf("%s: %s", name, status.Kind)
			if reloaded := shared.Get(); reloaded != cfg {
				statusLine += " (config reloaded, applies to next run)"
			}

			updates <- tui.Update{
				Generation:  step / reportStep,
				Evaluations: status.Evaluations,
				Budget:      budget,
				BestFitness: fitness,
				Done:        done,
				StatusLine:  statusLine,
			}

			if done {
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()

	if err := tui.Run(updates, budget); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return 1
	}

	return 0
}

func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close cpu profile: %v", err)
		}
	}, nil
}

func writeMemoryProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)
		return
	}
	defer f.Close()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
