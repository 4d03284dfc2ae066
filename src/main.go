package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dtostr/src/util"

	"github.com/iver-wharf/wharf-core/v2/pkg/logger"
	"github.com/iver-wharf/wharf-core/v2/pkg/logger/consolepretty"
	"github.com/spf13/cobra"
)

var log = logger.NewScoped("DTOSTR")

var isLoggingInitialized bool
var loglevel = logLevel(logger.LevelInfo)

// opt is loaded from config files and environment before any command runs.
var opt util.Options

var rootCmd = &cobra.Command{
	SilenceErrors: true,
	SilenceUsage:  true,
	Use:           "dtostr",
	Short:         "Fixed precision integer and decimal formatting",
	Long: `Formats integers and floats into fixed capacity buffers, the same way
an embedded target without a formatting library would.

Decimals are truncated toward zero, never rounded, and the fraction is
written without zero padding.`,
	Version: util.AppVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if opt, err = util.LoadOptions(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log.Debug().
			WithInt("precision", opt.Precision).
			WithInt("threads", opt.Threads).
			WithInt("bufferSize", opt.BufferSize).
			Message("Loaded config.")
		return nil
	},
}

// errSilent is returned by commands that already reported their failure.
var errSilent = errors.New("silent error")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			initLoggingIfNeeded()
			log.Error().Message(err.Error())
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLoggingIfNeeded)
	rootCmd.PersistentFlags().Var(&loglevel, "loglevel", "Logging level: debug, info, warn, error or panic")
	rootCmd.RegisterFlagCompletionFunc("loglevel", completeLogLevel)
}

func initLoggingIfNeeded() {
	if !isLoggingInitialized {
		initLogging()
	}
}

func initLogging() {
	logConfig := consolepretty.DefaultConfig
	if loglevel.Level() != logger.LevelDebug {
		logConfig.DisableCaller = true
		logConfig.DisableDate = true
		logConfig.ScopeMinLengthAuto = false
	}
	logger.AddOutput(loglevel.Level(), consolepretty.New(logConfig))
	log.Debug().WithStringer("loglevel", loglevel.Level()).Message("Setting log-level.")
	isLoggingInitialized = true
}

// logLevel implements pflag.Value for logger.Level.
type logLevel logger.Level

func (l logLevel) Level() logger.Level {
	return logger.Level(l)
}

func (l *logLevel) String() string {
	return l.Level().String()
}

func (l *logLevel) Set(val string) error {
	switch strings.ToLower(val) {
	case "d", "debug":
		*l = logLevel(logger.LevelDebug)
	case "i", "info":
		*l = logLevel(logger.LevelInfo)
	case "w", "warn", "warning":
		*l = logLevel(logger.LevelWarn)
	case "e", "error":
		*l = logLevel(logger.LevelError)
	case "p", "panic":
		*l = logLevel(logger.LevelPanic)
	default:
		return fmt.Errorf("invalid logging level: %q", val)
	}
	return nil
}

func (l *logLevel) Type() string {
	return "loglevel"
}

func completeLogLevel(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"debug\tIncludes all logs",
		"info\tIncludes INFO, WARN, ERROR, and PANIC logs (default)",
		"warn\tIncludes WARN, ERROR, and PANIC logs",
		"error\tIncludes ERROR, and PANIC logs",
		"panic\tSilent, except for PANIC logs",
	}, cobra.ShellCompDirectiveNoFileComp
}
