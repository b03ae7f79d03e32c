// ABOUTME: Root cobra command for the voicescope binary
// ABOUTME: Parses flags, initializes logging and starts the application
package cmd

import (
	"fmt"
	"os"

	"github.com/VoiceScope/voicescope-go/internal/app"
	"github.com/VoiceScope/voicescope-go/internal/logger"
	"github.com/VoiceScope/voicescope-go/internal/updater"
	"github.com/VoiceScope/voicescope-go/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	flagFile         string
	flagTimeStep     float64
	flagDynamicRange float64
	flagLogFile      string
	flagNoTUI        bool
	flagDebug        bool
)

var rootCmd = &cobra.Command{
	Use:     "voicescope [audio file]",
	Short:   "VoiceScope plays an audio file with a live spectrogram, pitch and intensity view.",
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.InfoLevel
		if flagDebug {
			level = zapcore.DebugLevel
		}
		if err := logger.Init(logger.Config{
			Level:      level,
			OutputPath: flagLogFile,
			ToStdout:   flagNoTUI,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		}); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logger.Sync()

		file := flagFile
		if len(args) == 1 {
			file = args[0]
		}

		logger.Info("starting",
			logger.String("product", version.Product),
			logger.String("version", version.Version),
			logger.Bool("tui", !flagNoTUI))

		return app.New(app.Config{
			InitialFile:  file,
			TimeStep:     flagTimeStep,
			DynamicRange: flagDynamicRange,
			NoTUI:        flagNoTUI,
		}).Run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagFile, "file", "", "audio file to load at startup")
	rootCmd.Flags().Float64Var(&flagTimeStep, "time-step", updater.DefaultTimeStep, "analysis window length in seconds")
	rootCmd.Flags().Float64Var(&flagDynamicRange, "dynamic-range", 70, "spectrogram color scale span in dB")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "voicescope.log", "log file path")
	rootCmd.Flags().BoolVar(&flagNoTUI, "no-tui", false, "disable the TUI and stream log output instead")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
