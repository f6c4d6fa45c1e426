package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for YAML unmarshalling. Pointer fields
// distinguish "absent" from "set to the zero value".
type fileConfig struct {
	APIURL         *string `yaml:"api_url"`
	LogFile        *string `yaml:"log_file"`
	LogLevel       *string `yaml:"log_level"`
	RequestTimeout *string `yaml:"request_timeout"`
}

// mergeFile overlays c with the values present in the YAML file at path.
//
//	api_url: http://localhost:3000
//	log_file: /tmp/orbit.log
//	log_level: debug
//	request_timeout: 10s
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.APIURL != nil {
		c.APIURL = *fc.APIURL
	}
	if fc.LogFile != nil {
		c.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.RequestTimeout != nil {
		d, err := time.ParseDuration(*fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse config %s: request_timeout: %w", path, err)
		}
		c.RequestTimeout = d
	}
	return nil
}
