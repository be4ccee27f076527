// Package main is the conntop command: it reads the connection data file
// and one state file per configured switch grid, reduces the connectivity
// statements, and prints the colored topology report to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/1000RR/connectionTopology/colorize"
	"github.com/1000RR/connectionTopology/grid"
	"github.com/1000RR/connectionTopology/groups"
	"github.com/1000RR/connectionTopology/loader"
	"github.com/1000RR/connectionTopology/report"
	"github.com/1000RR/connectionTopology/shorts"
)

var (
	// Global flags
	dataFile string
	verbose  bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "conntop <state-file-base>...",
	Short: "conntop - switch-matrix connectivity visualizer",
	Long: `conntop renders the electrical connectivity of one or more switch
grids as colored ASCII charts.

It reads grid definitions, terminal declarations, and fixed wiring from the
data file, merges in the active connections from one state file per grid,
reduces everything into transitive connectivity groups, and prints:

  PART 1    one chart per wiring group
  PART 2    the consolidated wiring chart
  PART 2.5  the state-only interconnection chart
  PART 3    the consolidated chart of the global reduction
  PART 4    the terminal short summary

Pass exactly one state file base name (without the .csv extension) per grid
defined in the data file, in prefix order.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	lines, err := loader.ReadLines(dataFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", dataFile, err)
	}
	cfg := loader.ParseConfig(lines)
	prefixes := cfg.Prefixes()

	if len(prefixes) == 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("no grid definitions (X:CxR) found in %s", dataFile)
	}
	if len(args) != len(prefixes) {
		cmd.SilenceUsage = true
		printMismatch(out, prefixes, len(args))
		return fmt.Errorf("expected %d state file bases, got %d", len(prefixes), len(args))
	}

	logger.Info("matched grids to state files",
		zap.Strings("prefixes", prefixes),
		zap.Int("stateFiles", len(args)))
	logger.Info("declared terminals", zap.Strings("terminals", cfg.Terminals()))

	cls := cfg.Classifier()
	layouts := grid.BuildAll(cfg)
	dataStatements := loader.Connections(lines)
	logger.Debug("parsed data file",
		zap.String("file", dataFile),
		zap.Int("statements", len(dataStatements)))

	var stateStatements [][]string
	active := make(map[string]bool)
	sources := []string{dataFile}
	for i, prefix := range prefixes {
		stGroups, stPins, err := loader.StateFile(args[i], prefix, cls)
		if err != nil {
			return fmt.Errorf("state file %s.csv: %w", args[i], err)
		}
		stateStatements = append(stateStatements, stGroups...)
		for pin := range stPins {
			active[pin] = true
		}
		sources = append(sources, args[i]+".csv")
		logger.Debug("parsed state file",
			zap.String("prefix", prefix),
			zap.String("file", args[i]+".csv"),
			zap.Int("statements", len(stGroups)),
			zap.Int("activePins", len(stPins)))
	}

	combined := make([][]string, 0, len(dataStatements)+len(stateStatements))
	combined = append(combined, dataStatements...)
	combined = append(combined, stateStatements...)
	if len(combined) == 0 {
		fmt.Fprintf(out, "No connection data loaded. Please check %s and the state files.\n", dataFile)
		return nil
	}

	w := report.New(out, cfg, layouts)

	globalReduced := groups.Reduce(combined, cls)
	w.Preliminary(combined, globalReduced, sources)

	// Parts 1 and 2 chart the fixed wiring only.
	dataReduced := groups.Reduce(dataStatements, cls)
	part2 := w.IndividualCharts(dataReduced, active)
	w.ConsolidatedChart(
		fmt.Sprintf("PART 2: FINAL CONSOLIDATED CHART (Overlayed Colors from %s reduction)", dataFile),
		part2, report.ActiveNote)

	w.StateCharts(stateStatements, active)

	// Parts 3 and 4 work off the global reduction.
	part3 := colorize.Assign(globalReduced, layouts, active, cfg)
	w.ConsolidatedChart(
		"PART 3: FINAL CONSOLIDATED CHART (Overlayed Colors from GLOBAL reduction)",
		part3, report.ActiveNote)
	w.ShortSummary(shorts.Analyze(globalReduced, part3.ExternalColor, cfg))

	return nil
}

// printMismatch writes the state-file mismatch diagnostic with a concrete
// example invocation built from the discovered prefixes.
func printMismatch(out io.Writer, prefixes []string, received int) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintf(out, "INPUT ERROR: State file mismatch.\n")
	fmt.Fprintf(out, "%s\n", rule)
	fmt.Fprintf(out, "Number of grids defined in %q: %d\n", dataFile, len(prefixes))
	fmt.Fprintf(out, "Prefixes found: %s\n", strings.Join(prefixes, ", "))
	fmt.Fprintf(out, "Number of state file bases provided: %d\n", received)

	example := make([]string, len(prefixes))
	bases := make([]string, len(prefixes))
	for i, p := range prefixes {
		example[i] = "<base_for_" + p + ">"
		bases[i] = fmt.Sprintf("state%d", i+1)
	}
	fmt.Fprintf(out, "\nUsage: conntop %s\n", strings.Join(example, " "))
	fmt.Fprintf(out, "Example: conntop %s\n", strings.Join(bases, " "))
	fmt.Fprintf(out, "%s\n", rule)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "data.csv", "connection data file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
