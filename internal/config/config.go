// Package config loads and exposes gooze.yaml settings via viper, mirroring
// the teacher's cmd/config.go key layout and precedence rules (flags > env >
// file > built-in defaults).
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	versionKey = "version"
	currentVersion = 1

	baseName   = "gooze"
	fileName   = baseName + ".yaml"
	folderPath = "."

	envPrefix = "GOOZE"

	operatorsKey   = "operators"
	excludeKey     = "paths.exclude"
	timeoutKey     = "run.mutation_timeout"
	parallelKey    = "run.parallel"
	outputKey      = "output"
	reportKey      = "report"
	thresholdKey   = "threshold"
	sourcesKey     = "sources"
	testCommandKey = "test_command"
	noCacheKey     = "no-cache"
	isolatedKey    = "isolated"
	noColorKey     = "no-color"
	verboseKey     = "verbose"
	shardKey       = "shard"
	keepTempKey    = "keep-temp-files"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultReport         = ""
	defaultNoCache        = false
	defaultRunParallel    = 1
	defaultOutput         = "console"
	defaultThreshold      = 80.0
	defaultTestCommand    = "lean build"
	defaultMutationTimeout = time.Minute * 2

	defaultLogFilename   = ".gooze.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// Log holds the rotating-file-sink settings, unchanged in shape from the
// teacher's log.* block.
type Log struct {
	Filename   string
	Level      string
	Verbose    bool
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Config is the fully-resolved settings a mutate run operates under, after
// viper has merged CLI flags, environment, file, and defaults.
type Config struct {
	Operators   []string
	Exclude     []string
	TimeoutMs   int64
	Parallel    int
	Output      string
	Report      string
	Threshold   float64
	Sources     []string
	TestCommand string
	NoCache     bool
	Isolated    bool
	NoColor     bool
	Verbose     bool
	Shard       string
	KeepTempFiles bool
	Log         Log
}

// Init registers viper defaults and the config file search path. Call once,
// before flag binding, exactly as the teacher's package-level init() does.
func Init() {
	viper.SetConfigName(baseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(folderPath)
	viper.SetConfigFile(filepath.Join(folderPath, fileName))
	if override := os.Getenv(envPrefix + "_CONFIG"); override != "" {
		viper.SetConfigFile(override)
	}
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(versionKey, currentVersion)
	viper.SetDefault(operatorsKey, []string{})
	viper.SetDefault(excludeKey, []string{})
	viper.SetDefault(timeoutKey, int64(defaultMutationTimeout.Milliseconds()))
	viper.SetDefault(parallelKey, defaultRunParallel)
	viper.SetDefault(outputKey, defaultOutput)
	viper.SetDefault(reportKey, defaultReport)
	viper.SetDefault(thresholdKey, defaultThreshold)
	viper.SetDefault(sourcesKey, []string{})
	viper.SetDefault(testCommandKey, defaultTestCommand)
	viper.SetDefault(noCacheKey, defaultNoCache)
	viper.SetDefault(isolatedKey, false)
	viper.SetDefault(noColorKey, false)
	viper.SetDefault(verboseKey, false)
	viper.SetDefault(shardKey, "")
	viper.SetDefault(keepTempKey, false)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
	}
}

// Load reads the current viper state into a Config value. It is called after
// cobra has bound its flags into viper, so flag values win over file/env/
// defaults per viper's own precedence.
func Load() *Config {
	return &Config{
		Operators:   viper.GetStringSlice(operatorsKey),
		Exclude:     viper.GetStringSlice(excludeKey),
		TimeoutMs:   viper.GetInt64(timeoutKey),
		Parallel:    viper.GetInt(parallelKey),
		Output:      viper.GetString(outputKey),
		Report:      viper.GetString(reportKey),
		Threshold:   viper.GetFloat64(thresholdKey),
		Sources:     viper.GetStringSlice(sourcesKey),
		TestCommand: viper.GetString(testCommandKey),
		NoCache:       viper.GetBool(noCacheKey),
		Isolated:      viper.GetBool(isolatedKey),
		NoColor:       viper.GetBool(noColorKey),
		Verbose:       viper.GetBool(verboseKey),
		Shard:         viper.GetString(shardKey),
		KeepTempFiles: viper.GetBool(keepTempKey),
		Log: Log{
			Filename:   viper.GetString(logFilenameKey),
			Level:      viper.GetString(logLevelKey),
			Verbose:    viper.GetBool(logVerboseKey),
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		},
	}
}

// ParseLevel maps a config string (or numeric slog level) to a slog.Level,
// defaulting to Info on anything unrecognized.
func ParseLevel(value string) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return slog.LevelInfo
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

	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return slog.LevelInfo
}
