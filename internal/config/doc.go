// Package config provides configuration loading, merging, and validation
// facilities for the TIL client and the stub API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. JSON config file
//  2. Environment variables (TIL_ prefix)
//  3. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the full configuration
// and [GetClientConfig] for the client-specific view.
package config
