package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/e12tools/resistor-combinator/internal/config"
	"github.com/e12tools/resistor-combinator/internal/search"
	"github.com/e12tools/resistor-combinator/pkg/constants"
	"github.com/e12tools/resistor-combinator/pkg/output"
	"github.com/e12tools/resistor-combinator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// resolveConfigPath falls back to built-in defaults (an empty path) when the
// default config file is absent and no path was given explicitly.
func resolveConfigPath(path string, explicit bool) string {
	if explicit {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

// lookup prints the best match for a single target given on the command line.
func lookup(w io.Writer, engine *search.Engine, target float64) error {
	if err := validation.ValidateTarget(target); err != nil {
		return fmt.Errorf("invalid -target: %w", err)
	}
	output.PrettyLookup(w, engine.Lookup(target))
	return nil
}

// generate writes the full report for every configured target. The output
// file is created before the search starts and is always closed, so an
// interrupted run keeps the records written so far.
func generate(ctx context.Context, logger *zap.Logger, engine *search.Engine, outputFormat, path string) (search.Summary, error) {
	w, err := output.Create(outputFormat, path)
	if err != nil {
		return search.Summary{}, err
	}

	logger.Info("starting search",
		zap.String("op", "main.generate"),
		zap.String("output", path),
		zap.String("format", outputFormat),
		zap.Int("candidates", len(engine.Candidates())),
	)

	summary, runErr := engine.Run(ctx, w)
	if closeErr := w.Close(); closeErr != nil && runErr == nil {
		runErr = fmt.Errorf("failed to close output %s: %w", path, closeErr)
	}
	return summary, runErr
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFile := flag.String("output", "", "report file override")
	outputFormatFlag := flag.String("output-format", "", "type of output override: log, csv, xlsx")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	target := flag.Float64("target", 0, "look up the best match for a single target resistance and exit")
	printConfig := flag.Bool("print-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	explicitConfig := false
	explicitTarget := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			explicitConfig = true
		case "target":
			explicitTarget = true
		}
	})

	conf, err := config.LoadConfiguration(resolveConfigPath(*configLocation, explicitConfig))
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	if *outputFile != "" {
		conf.Output.File = *outputFile
	}
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}

	warnings, err := conf.ValidateConfiguration()
	if err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *printConfig {
		out, err := conf.ToYAML()
		if err != nil {
			logger.Fatal("failed to print configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Print(string(out))
		return
	}

	engine := search.NewEngine(logger, conf.Search)

	if explicitTarget {
		if err := lookup(os.Stdout, engine, *target); err != nil {
			logger.Fatal("failed to look up target",
				zap.String("op", "main"),
				zap.Float64("target", *target),
				zap.Error(err),
			)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := generate(ctx, logger, engine, conf.Output.Format, conf.Output.File)
	if err != nil {
		logger.Fatal("failed to generate combination table",
			zap.String("op", "main"),
			zap.String("output", conf.Output.File),
			zap.Int64("targetsWritten", summary.Targets),
			zap.Error(err),
		)
	}

	logger.Info("search complete",
		zap.String("op", "main"),
		zap.Int64("targets", summary.Targets),
		zap.Int64("exactMatches", summary.ExactMatches),
		zap.Float64("worstPercentDiff", summary.WorstPercentDiff),
		zap.Duration("elapsed", summary.Elapsed),
	)
	output.PrettySummary(os.Stdout, summary, conf.Output.File)
}
