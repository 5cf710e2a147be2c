package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/capacity-sim/sim"
	"github.com/inference-sim/capacity-sim/sim/capacity"
	"github.com/inference-sim/capacity-sim/sim/workload"
)

var (
	seed     int64  // Seed for random workload generation
	logLevel string // Log verbosity level

	// Cluster / hardware flags
	hardware   string  // Hardware profile key (sim.HardwareDB), empty = use ttft/decode flags
	hwFile     string  // Optional YAML file with extra hardware presets
	numDevices int     // Cluster size
	ttftMillis float64 // Time to first token (ms)
	decodeRate float64 // Decode speed (tokens/s)

	// Workload flags
	rpm               float64 // Traffic load (requests per minute)
	durationMinutes   float64 // Simulation duration (minutes)
	inputTokensMean   float64 // Average input token count
	inputTokensStdev  float64 // Stddev input token count
	outputTokensMean  float64 // Average output token count
	outputTokensStdev float64 // Stddev output token count

	// SLA flags
	maxLatencyMillis float64 // Max allowed latency (ms)
	enforceSLA       bool    // Classify requests exceeding the latency bound as dropped

	// Capacity search flags
	capacityLatencySec  float64 // Latency bound for the sustainability criterion (s)
	capacityDurationMin float64 // Evaluation duration per search candidate (minutes)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "capacity-sim",
	Short: "Discrete-event capacity simulator for LLM inference clusters",
}

// setupLogging configures logrus from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveHardware returns the effective ttft/decode-rate pair, letting an
// explicit --hardware profile override the raw flags.
func resolveHardware() (float64, float64) {
	if hardware == "" {
		return ttftMillis, decodeRate
	}
	db := sim.HardwareDB
	if hwFile != "" {
		merged, err := LoadHardwarePresets(hwFile)
		if err != nil {
			logrus.Fatalf("Unable to read hardware presets: %v", err)
		}
		db = merged
	}
	profile, ok := db[hardware]
	if !ok {
		logrus.Fatalf("Unknown hardware profile %q (available: %v)", hardware, sim.ProfileKeys())
	}
	logrus.Infof("Using hardware profile %s: ttft=%.0fms, decode=%.0f tok/s",
		profile.Name, profile.TTFTMillis, profile.OutputTokensPerSec)
	return profile.TTFTMillis, profile.OutputTokensPerSec
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one cluster simulation and print its statistics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		ttft, decode := resolveHardware()

		cluster, err := sim.NewCluster(numDevices, ttft, decode)
		if err != nil {
			logrus.Fatalf("Invalid cluster configuration: %v", err)
		}

		spec := &workload.Spec{
			RequestsPerMinute:  rpm,
			DurationMinutes:    durationMinutes,
			InputTokensMean:    inputTokensMean,
			InputTokensStdDev:  inputTokensStdev,
			OutputTokensMean:   outputTokensMean,
			OutputTokensStdDev: outputTokensStdev,
			MaxLatencyMillis:   maxLatencyMillis,
			EnforceSLA:         enforceSLA,
		}
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemWorkload)
		requests, err := workload.GenerateRequests(spec, rng)
		if err != nil {
			logrus.Fatalf("Invalid workload configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d devices, %d requests over %.1f min at %.1f rpm",
			cluster.Size(), len(requests), durationMinutes, rpm)

		s := sim.NewSimulator(cluster)
		if err := s.Run(requests); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		s.Stats().Print()
	},
}

// capacityCmd searches for the maximum sustainable request rate
var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Binary-search the maximum sustainable request rate under a latency bound",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		ttft, decode := resolveHardware()

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemCapacity)
		finder, err := capacity.NewFinder(numDevices, ttft, decode,
			inputTokensMean, inputTokensStdev, outputTokensMean, outputTokensStdev, rng)
		if err != nil {
			logrus.Fatalf("Invalid capacity-search configuration: %v", err)
		}

		result, err := finder.Find(capacityLatencySec, capacityDurationMin)
		if err != nil {
			logrus.Fatalf("Capacity search failed: %v", err)
		}
		logrus.Infof("Theoretical max rate: %.2f requests/min", result.TheoreticalMaxRPM)
		logrus.Infof("Sustainable rate    : %.2f requests/min", result.SustainableRPM)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addClusterFlags registers the flags shared by run and capacity.
func addClusterFlags(c *cobra.Command) {
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for random workload generation")
	c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	c.Flags().StringVar(&hardware, "hardware", "", "Hardware profile key (overrides --ttft-ms/--decode-rate)")
	c.Flags().StringVar(&hwFile, "hardware-file", "", "YAML file with additional hardware presets")
	c.Flags().IntVar(&numDevices, "num-devices", 8, "Number of devices in the cluster")
	c.Flags().Float64Var(&ttftMillis, "ttft-ms", 100, "Time to first token (ms)")
	c.Flags().Float64Var(&decodeRate, "decode-rate", 50, "Decode speed (tokens/s)")

	c.Flags().Float64Var(&inputTokensMean, "input-tokens", 512, "Average input token count")
	c.Flags().Float64Var(&inputTokensStdev, "input-tokens-stdev", 128, "Stddev input token count")
	c.Flags().Float64Var(&outputTokensMean, "output-tokens", 256, "Average output token count")
	c.Flags().Float64Var(&outputTokensStdev, "output-tokens-stdev", 64, "Stddev output token count")
}

// init sets up CLI flags and subcommands
func init() {
	addClusterFlags(runCmd)
	runCmd.Flags().Float64Var(&rpm, "rpm", 600, "Traffic load (requests per minute)")
	runCmd.Flags().Float64Var(&durationMinutes, "duration", 1, "Simulation duration (minutes)")
	runCmd.Flags().Float64Var(&maxLatencyMillis, "max-latency-ms", 5000, "Max allowed latency (ms)")
	runCmd.Flags().BoolVar(&enforceSLA, "enforce-sla", false, "Report requests exceeding the latency bound as dropped")

	addClusterFlags(capacityCmd)
	capacityCmd.Flags().Float64Var(&capacityLatencySec, "max-latency", 5, "Latency bound for sustainability (s)")
	capacityCmd.Flags().Float64Var(&capacityDurationMin, "duration", 2, "Evaluation duration per candidate (minutes)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(capacityCmd)
}
