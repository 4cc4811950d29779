package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/duolog/pkg/logger"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelSuccess = "success"
	LogLevelWarn    = "warn"
	LogLevelError   = "error"
)

type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	ID        string `mapstructure:"id"`
	Timestamp bool   `mapstructure:"timestamp"`
}

type Config struct {
	Environment string        `mapstructure:"environment"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", EnvDev)
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.id", "")
	v.SetDefault("logging.timestamp", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Error("failed to read config file", logger.Metadata{"error": err.Error()})
			return nil, err
		}
		logger.Warn("config file not found, using defaults and environment variables")
	} else {
		logger.Info("loaded config file", logger.Metadata{"file": v.ConfigFileUsed()})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Error("failed to unmarshal config", logger.Metadata{"error": err.Error()})
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", logger.Metadata{"error": err.Error()})
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDev, EnvStaging, EnvProd),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelSuccess, LogLevelWarn, LogLevelError),
					),
					validation.Field(&lc.Format,
						validation.In(logger.FormatPretty, logger.FormatJSON),
					),
					validation.Field(&lc.ID,
						is.PrintableASCII,
					),
				)
			}),
		),
	)
}

// LoggerOptions translates the loaded settings into logger options. When
// no format is configured explicitly, prod environments get JSON output;
// everywhere else the logger's own default applies.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.Options{
		Level:            c.Logging.Level,
		Format:           c.Logging.Format,
		ID:               c.Logging.ID,
		DisableTimestamp: !c.Logging.Timestamp,
	}

	if opts.Format == "" && c.Environment == EnvProd {
		opts.Format = logger.FormatJSON
	}

	return opts
}
