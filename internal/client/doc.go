// Package client is the command tree of the til binary, built on
// urfave/cli/v2.
//
// Global flags become a [config.Flags] override and are turned into a
// [Runtime] by the injected [RuntimeBuilder] before any command runs.
// Results are printed as a table, JSON or YAML.
package client
