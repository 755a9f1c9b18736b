package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sonarsweep/internal/aoc"
	"sonarsweep/internal/config"
)

var (
	verbose    bool
	configPath string
	window     int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "sonar",
	Short:         "Solve the sonar sweep and dive puzzles",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
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
}

var day1Cmd = &cobra.Command{
	Use:   "day1 [depths file]",
	Short: "Count depth increases, reading by reading and by sliding window",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay1,
}

var day2Cmd = &cobra.Command{
	Use:   "day2 [course file]",
	Short: "Follow a course and report horizontal position times depth",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay2,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day using the configured inputs",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with input paths and window size")
	day1Cmd.Flags().IntVarP(&window, "window", "w", 0, "sliding window size for part 2 (overrides config)")

	rootCmd.AddCommand(day1Cmd, day2Cmd, allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", zap.String("path", configPath), zap.Any("config", cfg))
	return cfg, nil
}

func runDay1(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Depths.Input = args[0]
	}
	if cmd.Flags().Changed("window") {
		cfg.Depths.Window = window
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	answers, err := aoc.SolveDay1(cfg.Depths.Input, cfg.Depths.Window, logger)
	if err != nil {
		return err
	}
	return printAnswers(cmd.OutOrStdout(), answers)
}

func runDay2(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Course.Input = args[0]
	}

	answers, err := aoc.SolveDay2(cfg.Course.Input, logger)
	if err != nil {
		return err
	}
	return printAnswers(cmd.OutOrStdout(), answers)
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	answers, err := aoc.SolveAll(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	return printAnswers(cmd.OutOrStdout(), answers)
}

func printAnswers(w io.Writer, answers []aoc.Answer) error {
	for _, a := range answers {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return err
		}
	}
	return nil
}
