package logger

import (
	"time"

	"github.com/grid9geo/grid9/pkg/logger/config"
	myZap "github.com/grid9geo/grid9/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the process logger. LOG_LEVEL and LOG_TIME_FORMAT come from
// the environment when set.
func New() (*zap.Logger, error) {
	viper.AutomaticEnv()
	viper.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	cfg := config.Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return myZap.New(cfg)
}
