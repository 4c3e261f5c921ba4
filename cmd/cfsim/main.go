package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cfsim/internal/algo"
	"cfsim/internal/sched"
	"cfsim/internal/workload"
)

var (
	logLevel   string
	configPath string

	// workload flags; --input wins over the generator
	inputPath  string
	taskCount  int
	seed       int64
	maxArrival int64
	maxBurst   int64
	niceLow    int
	niceHigh   int

	// scheduling flags
	algoName       string
	quantum        int64
	targetLatency  int64
	minGranularity int64
	tracePath      string
)

var rootCmd = &cobra.Command{
	Use:   "cfsim",
	Short: "Deterministic single-core CPU scheduler simulator",
	Long: "cfsim replays a task set through a completely fair scheduler " +
		"(and a few classic disciplines to compare against) on a simulated " +
		"clock, so runs are exactly reproducible.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level %q: %v", logLevel, err)
		}
		logrus.SetLevel(level)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm and report per-task timings",
	Run: func(cmd *cobra.Command, args []string) {
		specs := loadWorkload()

		a, err := algo.New(algoName, algo.Options{Quantum: quantum, Fair: fairConfig()})
		if err != nil {
			logrus.Fatalf("%v (known: %v)", err, algo.Names())
		}

		events, err := a.Run(specs)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		sum := sched.Summarize(specs, events)
		logrus.Infof("%s scheduled %d tasks in %d time units (%d decisions)",
			a.Name(), len(specs), sum.Makespan, len(events))
		renderSummary(os.Stdout, sum)

		if tracePath != "" {
			if err := writeTrace(tracePath, events); err != nil {
				logrus.Fatalf("Write trace: %v", err)
			}
			logrus.Infof("Wrote %d events to %s", len(events), tracePath)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every algorithm over the same task set and compare fairness",
	Run: func(cmd *cobra.Command, args []string) {
		specs := loadWorkload()

		summaries := make([]algoSummary, 0, len(algo.Names()))
		for _, name := range algo.Names() {
			a, err := algo.New(name, algo.Options{Quantum: quantum, Fair: fairConfig()})
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			events, err := a.Run(specs)
			if err != nil {
				logrus.Fatalf("%s failed: %v", name, err)
			}
			summaries = append(summaries, algoSummary{
				name:      name,
				decisions: len(events),
				summary:   sched.Summarize(specs, events),
			})
		}
		renderComparison(os.Stdout, summaries)
	},
}

// loadWorkload resolves the task set from --input or the seeded generator.
func loadWorkload() []sched.TaskSpec {
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			logrus.Fatalf("Open workload: %v", err)
		}
		defer f.Close()

		specs, err := workload.FromCSV(f)
		if err != nil {
			logrus.Fatalf("Parse workload %s: %v", inputPath, err)
		}
		logrus.Debugf("Loaded %d tasks from %s", len(specs), inputPath)
		return specs
	}

	specs := workload.Random(workload.RandomConfig{
		Tasks:      taskCount,
		Seed:       seed,
		MaxArrival: maxArrival,
		MaxBurst:   maxBurst,
		NiceLow:    niceLow,
		NiceHigh:   niceHigh,
	})
	logrus.Debugf("Generated %d tasks from seed %d", len(specs), seed)
	return specs
}

// fairConfig layers explicit latency flags over the YAML config.
func fairConfig() sched.Config {
	cfg := sched.Load(configPath)
	if targetLatency > 0 {
		cfg.TargetLatency = targetLatency
	}
	if minGranularity > 0 {
		cfg.MinGranularity = minGranularity
	}
	return cfg
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&configPath, "config", "", "path to YAML config for the fair scheduler")

	pf.StringVar(&inputPath, "input", "", "CSV workload (id,nice,burst,arrival); omit to generate one")
	pf.IntVar(&taskCount, "tasks", 8, "number of tasks to generate")
	pf.Int64Var(&seed, "seed", 42, "PRNG seed for the generated workload")
	pf.Int64Var(&maxArrival, "max-arrival", 50, "latest generated arrival time")
	pf.Int64Var(&maxBurst, "max-burst", 100, "largest generated burst")
	pf.IntVar(&niceLow, "nice-low", -5, "lowest generated nice value")
	pf.IntVar(&niceHigh, "nice-high", 5, "highest generated nice value")

	pf.Int64Var(&quantum, "quantum", algo.DefaultQuantum, "slice length for rr, sjf and priority")
	pf.Int64Var(&targetLatency, "target-latency", 0, "fair scheduler latency window (0 = from config)")
	pf.Int64Var(&minGranularity, "min-granularity", 0, "fair scheduler slice floor (0 = from config)")

	runCmd.Flags().StringVar(&algoName, "algo", "cfs", "algorithm to run (cfs, fcfs, rr, sjf, priority)")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "write the decision trace to this CSV file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}
