package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "gridpath"
	configFolderPath = "."
	envPrefix        = "GRIDPATH"

	configFlagName        = "config"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"
	parallelFlagName      = "parallel"
	verifyFlagName        = "verify"
	colorFlagName         = "color"
	maxExpansionsFlagName = "max-expansions"
	quietFlagName         = "quiet"

	solveParallelKey      = "solve.parallel"
	solveVerifyKey        = "solve.verify"
	solveColorKey         = "solve.color"
	solveMaxExpansionsKey = "solve.max_expansions"
	solveQuietKey         = "solve.quiet"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newConfig returns a viper instance with gridpath defaults, env binding
// (GRIDPATH_SOLVE_PARALLEL, GRIDPATH_LOG_LEVEL, ...) and yaml config lookup.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(solveParallelKey, runtime.NumCPU())
	v.SetDefault(solveVerifyKey, false)
	v.SetDefault(solveColorKey, false)
	v.SetDefault(solveMaxExpansionsKey, 0)
	v.SetDefault(solveQuietKey, false)

	v.SetDefault(logFilenameKey, "")
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, false)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig loads path if given, otherwise ./gridpath.yaml when present.
// A missing default config file is not an error.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// newLogger builds the process logger.
//
// With log.filename set, records go to a rotating lumberjack file. Without
// it, verbose runs log to stderr and quiet runs discard everything.
// The returned closer releases the log file, if any.
func newLogger(v *viper.Viper, stderr io.Writer) (*slog.Logger, io.Closer) {
	verbose := v.GetBool(logVerboseKey)
	level := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if name := strings.TrimSpace(v.GetString(logFilenameKey)); name != "" {
		w := &lumberjack.Logger{
			Filename:   name,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}
		opts.AddSource = true
		return slog.New(slog.NewTextHandler(w, opts)), w
	}

	if verbose {
		if stderr == nil {
			stderr = os.Stderr
		}
		return slog.New(slog.NewTextHandler(stderr, opts)), nopCloser{}
	}
	return slog.New(slog.DiscardHandler), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
