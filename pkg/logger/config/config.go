package config

import "fmt"

// levels mirror zapcore.Level numbering
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("unknown log level: %d", c.Level)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format cannot be empty")
	}
	return nil
}
