package client

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/til-client/internal/config"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/models"
)

const (
	runtimeKey = "runtime"
	builderKey = "runtime-builder"
)

// NewApp returns the til command tree. build is called at most once per
// run, by the first command that needs services, so help and version
// output never open the credential store. Errors are returned from Run,
// never turned into os.Exit here.
func NewApp(buildInfo models.AppBuildInfo, build RuntimeBuilder, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "til",
		Usage: "Today I Learned acronyms from the command line",
		Version: buildInfo.String(),
		Flags: globalFlags(),
		Commands: []*cli.Command{
			loginCommand(),
			loginFederatedCommand(),
			logoutCommand(),
			statusCommand(),
			acronymsCommand(),
			categoriesCommand(),
			usersCommand(),
		},
		Before: func(c *cli.Context) error {
			_, err := parseFormat(c.String("output"))
			return err
		},
		After: func(c *cli.Context) error {
			rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
			if !ok || rt.Close == nil {
				return nil
			}
			return rt.Close()
		},
		Metadata:       map[string]any{builderKey: build},
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api",
			Aliases: []string{"a"},
			Usage:   "TIL API address (e.g. localhost:8080)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "request timeout (e.g. 10s)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a JSON config file",
		},
		&cli.StringFlag{
			Name:  "store",
			Usage: "credential backend: sqlite, file or memory",
		},
		&cli.StringFlag{
			Name:  "store-dsn",
			Usage: "credential database or file path",
		},
		&cli.StringFlag{
			Name:  "device-secret",
			Usage: "secret the stored token is sealed with",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "write logs to this file instead of stderr",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json, yaml",
			Value:   string(FormatTable),
		},
	}
}

func flagsFromContext(c *cli.Context) config.Flags {
	return config.Flags{
		APIAddress:     c.String("api"),
		RequestTimeout: c.Duration("timeout"),
		ConfigPath:     c.String("config"),
		StoreBackend:   c.String("store"),
		StoreDSN:       c.String("store-dsn"),
		DeviceSecret:   c.String("device-secret"),
		LogLevel:       c.String("log-level"),
		LogFile:        c.String("log-file"),
	}
}

// runtimeFrom returns the run's runtime, building it on first use.
func runtimeFrom(c *cli.Context) (*Runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt, nil
	}

	build, ok := c.App.Metadata[builderKey].(RuntimeBuilder)
	if !ok || build == nil {
		return nil, errNoRuntime
	}

	rt, err := build(c.Context, flagsFromContext(c))
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, errNoRuntime
	}

	c.App.Metadata[runtimeKey] = rt
	if rt.Services == nil {
		return nil, errNoRuntime
	}
	return rt, nil
}

// show prints v in the format chosen with --output.
func show(c *cli.Context, v view) error {
	format, err := parseFormat(c.String("output"))
	if err != nil {
		return err
	}
	return render(c.App.Writer, format, v)
}

// argID parses the positional argument at index as an identifier.
func argID(c *cli.Context, index int, name string) (uuid.UUID, error) {
	if c.NArg() <= index {
		return uuid.Nil, fmt.Errorf("%w: %s", errMissingArgument, name)
	}
	return utils.ParseID(c.Args().Get(index))
}
