package config

import "fmt"

// ConfigError reports a configuration value that cannot be used.
type ConfigError struct {
	Key string
	msg string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return e.msg
	}
	return fmt.Sprintf("config %s: %s", e.Key, e.msg)
}
