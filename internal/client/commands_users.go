package client

import (
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/til-client/models"
)

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage users",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all users",
				Action: func(c *cli.Context) error {
					rt, err := runtimeFrom(c)
					if err != nil {
						return err
					}

					users, err := rt.Services.Users.List(c.Context)
					if err != nil {
						return err
					}
					return show(c, usersView(users...).withData(users))
				},
			},
			{
				Name:  "create",
				Usage: "Create a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "display name", Required: true},
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "username", Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "password", Required: true},
				},
				Action: func(c *cli.Context) error {
					rt, err := runtimeFrom(c)
					if err != nil {
						return err
					}

					user, err := rt.Services.Users.Create(c.Context, models.CreateUserData{
						Name:     c.String("name"),
						Username: c.String("username"),
						Password: c.String("password"),
					})
					if err != nil {
						return err
					}
					return show(c, usersView(user).withData(user))
				},
			},
		},
	}
}
