// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Client-specific rules live
// in [ClientConfig.validate]; the stub server only needs a listen address.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Credentials.Backend {
	case BackendMemory:
	case BackendSQLite, BackendFile:
		if cfg.Storage.Credentials.DSN == "" {
			return ErrInvalidStorageConfigs
		}
		if cfg.App.DeviceSecret == "" {
			return ErrInvalidAppConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.QueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
