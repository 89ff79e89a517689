package config

import (
	"os"
)

const (
	envLogLevel     = "B1_LOG_LEVEL"
	envExportDir    = "B1_EXPORT_DIR"
	envExportFormat = "B1_EXPORT_FORMAT"
)

func readEnv(conf *Config) {
	if level := os.Getenv(envLogLevel); level != "" {
		conf.LogLevel = level
	}
	if dir := os.Getenv(envExportDir); dir != "" {
		conf.Export.Dir = dir
	}
	if format := os.Getenv(envExportFormat); format != "" {
		conf.Export.Format = format
	}
}
