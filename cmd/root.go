package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Michozord/sars-simulation/outbreak"
)

var (
	// CLI flags shared by the run and sweep subcommands
	seed             int64   // Seed for the master simulation key
	logLevel         string  // Log verbosity level
	scenarioName     string  // Named preset from the scenarios file
	scenariosFile    string  // Path to the scenario presets YAML
	horizon          float64 // Simulation horizon T (days)
	controlStart     float64 // Start of the control-assessment window (days)
	initialCases     int     // Number of untraced seed cases at time 0
	rho              float64 // Contact-tracing probability
	r0               float64 // Basic reproduction number
	subclinicalProb  float64 // Probability a case is subclinical
	presymptomatic   int     // Pre-symptomatic transmission percentage (1, 15 or 30)
	onsetToIsolation string  // Onset-to-isolation delay selector (short or long)
	numSimulations   int     // Number of Monte Carlo realizations
	workers          int     // Worker pool size (0 = number of CPUs)

	// CLI flags for the sweep subcommand
	rhoValues []float64 // Tracing probabilities to compare
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sars-sim",
	Short: "Branching-process simulator for outbreak containment analysis",
}

// setupLogging configures logrus from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveScenario merges the flag defaults, the optional named preset, and
// any explicitly-set flags (in that order of increasing precedence) into the
// scenario to simulate.
func resolveScenario(flags *pflag.FlagSet) Scenario {
	base := scenarioFromFlags()
	if scenarioName != "" {
		loaded, err := LoadScenario(scenariosFile, scenarioName)
		if err != nil {
			logrus.Fatalf("Failed to load scenario %q: %v", scenarioName, err)
		}
		base = applyFlagOverrides(loaded, flags)
	}
	if base.NumSimulations < 1 {
		logrus.Fatalf("num-simulations must be at least 1, got %d", base.NumSimulations)
	}
	return base
}

// runCmd executes one scenario using parameters from CLI flags and presets
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one containment scenario",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		scenario := resolveScenario(cmd.Flags())
		cfg, err := scenario.Build()
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting scenario: horizon=%.1f, rho=%.2f, R0=%.2f, presymptomatic=%d%%, delay=%s, %d realizations",
			cfg.Horizon, cfg.Rho, cfg.R0, cfg.Presymptomatic, cfg.Delay, scenario.NumSimulations)

		startTime := time.Now()
		runner := outbreak.NewScenarioRunner(cfg, scenario.NumSimulations, workers, outbreak.NewSimulationKey(seed))
		stats := runner.Run()
		stats.Print()

		logrus.Infof("Scenario complete in %v.", time.Since(startTime))
	},
}

// sweepCmd compares intervention scenarios across tracing probabilities
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the scenario across a list of tracing probabilities",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if len(rhoValues) == 0 {
			logrus.Fatalf("No rho values provided. Exiting sweep.")
		}

		scenario := resolveScenario(cmd.Flags())
		startTime := time.Now()
		for _, rhoValue := range rhoValues {
			point := scenario
			point.Rho = rhoValue
			cfg, err := point.Build()
			if err != nil {
				logrus.Fatalf("Invalid configuration at rho=%.2f: %v", rhoValue, err)
			}
			runner := outbreak.NewScenarioRunner(cfg, point.NumSimulations, workers, outbreak.NewSimulationKey(seed))
			stats := runner.Run()
			fmt.Printf("rho=%.2f  effective_R0_median=%.4f  controlled_fraction=%.4f\n",
				rhoValue, stats.EffectiveR0Median, stats.ControlledFraction)
		}
		logrus.Infof("Sweep complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerScenarioFlags attaches the scenario parameter flags shared by run
// and sweep. Defaults match the built-in baseline scenario.
func registerScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the master simulation key")
	cmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Named preset from the scenarios file")
	cmd.Flags().StringVar(&scenariosFile, "scenarios-file", "scenarios.yaml", "Path to the scenario presets YAML")

	cmd.Flags().Float64Var(&horizon, "horizon", 112, "Simulation horizon T in days")
	cmd.Flags().Float64Var(&controlStart, "control-start", 84, "Start of the control-assessment window in days")
	cmd.Flags().IntVar(&initialCases, "initial-cases", 20, "Number of untraced seed cases at time 0")
	cmd.Flags().Float64Var(&rho, "rho", 0.5, "Probability an infection is contact-traced")
	cmd.Flags().Float64Var(&r0, "r0", 2.5, "Basic reproduction number")
	cmd.Flags().Float64Var(&subclinicalProb, "subclinical-prob", 0.1, "Probability a case is subclinical")
	cmd.Flags().IntVar(&presymptomatic, "presymptomatic", 15, "Pre-symptomatic transmission percentage (1, 15 or 30)")
	cmd.Flags().StringVar(&onsetToIsolation, "onset-to-isolation", "short", "Onset-to-isolation delay selector (short or long)")
	cmd.Flags().IntVar(&numSimulations, "num-simulations", 1000, "Number of Monte Carlo realizations")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size (0 = number of CPUs)")
}

// init sets up CLI flags and subcommands
func init() {
	registerScenarioFlags(runCmd)
	registerScenarioFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&rhoValues, "rho-values", []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0},
		"Comma-separated list of tracing probabilities to compare")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
