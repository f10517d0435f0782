package config

import "time"

// Flags holds the values collected from command-line flags. The flags
// themselves are declared by the command tree; a zero field means the flag
// was not given and never overrides another source.
type Flags struct {
	APIAddress     string
	RequestTimeout time.Duration
	ConfigPath     string
	StoreBackend   string
	StoreDSN       string
	DeviceSecret   string
	LogLevel       string
	LogFile        string
	ServerAddress  string
}

func (f Flags) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeviceSecret: f.DeviceSecret,
		},
		Adapter: Adapter{
			HTTPAddress:    f.APIAddress,
			RequestTimeout: f.RequestTimeout,
		},
		Storage: Storage{
			Credentials: Credentials{
				Backend: f.StoreBackend,
				DSN:     f.StoreDSN,
			},
		},
		Server: Server{
			HTTPAddress: f.ServerAddress,
		},
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		JSONFilePath: f.ConfigPath,
	}
}
