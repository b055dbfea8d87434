package main

import "time"

type Config struct {
	BadgerFilepath          string        `env:"BADGER_FILEPATH,required=true"`
	ComponentConfigFilepath string        `env:"COMPONENT_CONFIG_FILEPATH,required=true"`
	LogLevel                string        `env:"LOG_LEVEL,default=info"`
	PlatformBaseURL         string        `env:"PLATFORM_BASE_URL,required=true"`
	PlatformAPIToken        string        `env:"PLATFORM_API_TOKEN"`
	RequestTimeout          time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	PollInterval            time.Duration `env:"POLL_INTERVAL,default=2s"`
	BufferSize              int           `env:"BUFFER_SIZE,default=64"`
}
