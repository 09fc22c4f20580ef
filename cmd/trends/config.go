package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pdiddy/trends/pkg/types"
)

func setDefaults() {
	viper.SetDefault("trends.language", types.DefaultLanguage)
	viper.SetDefault("trends.timezone", types.DefaultTimezoneOffset)
	viper.SetDefault("trends.timeout", types.DefaultTimeout)
	viper.SetDefault("trends.user_agent", "trends/"+version)
	viper.SetDefault("trends.cookie", "")
	viper.SetDefault("trends.retry_rate_limited", false)
	viper.SetDefault("trends.max_retries", 0)
	viper.SetDefault("archive.path", "trends.db")
	viper.SetDefault("archive.max_results", 20)
}

func initLogging(verbose int) {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger = zerolog.New(writer).With().Timestamp().Logger()

	switch min(verbose, 2) {
	case 2:
		logger = logger.Level(zerolog.TraceLevel)
	case 1:
		logger = logger.Level(zerolog.DebugLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trends")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trends"))
		}
	}

	viper.SetEnvPrefix("TRENDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case errors.As(err, &notFound):
		logger.Debug().Msg("no config file found, using defaults")
	case err != nil:
		return fmt.Errorf("loading config file: %w", err)
	default:
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	}

	for _, k := range viper.AllKeys() {
		if k == "trends.cookie" {
			continue
		}
		logger.Trace().Msgf("%s=%v", k, viper.Get(k))
	}
	return nil
}

// loadConfig reads the component configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Trends: types.TrendsConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("trends.timeout"),
				UserAgent: viper.GetString("trends.user_agent"),
			},
			Language:         viper.GetString("trends.language"),
			TimezoneOffset:   viper.GetInt("trends.timezone"),
			Cookie:           viper.GetString("trends.cookie"),
			RetryRateLimited: viper.GetBool("trends.retry_rate_limited"),
			MaxRetries:       viper.GetInt("trends.max_retries"),
		},
		Archive: types.ArchiveConfig{
			Path:       viper.GetString("archive.path"),
			MaxResults: viper.GetInt("archive.max_results"),
		},
	}
}
