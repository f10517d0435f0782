package client

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"cat"},
		Usage:   "Manage categories",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all categories",
				Action: func(c *cli.Context) error {
					rt, err := runtimeFrom(c)
					if err != nil {
						return err
					}

					categories, err := rt.Services.Categories.List(c.Context)
					if err != nil {
						return err
					}
					return show(c, categoriesView(categories...).withData(categories))
				},
			},
			{
				Name:      "create",
				Usage:     "Create a category",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					rt, err := runtimeFrom(c)
					if err != nil {
						return err
					}
					if c.NArg() < 1 {
						return fmt.Errorf("%w: NAME", errMissingArgument)
					}

					category, err := rt.Services.Categories.Create(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					return show(c, categoriesView(category).withData(category))
				},
			},
		},
	}
}
