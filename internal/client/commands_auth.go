package client

import (
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/til-client/internal/app"
	"github.com/MKhiriev/til-client/models"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in with username and password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "username", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			if err = rt.Services.Auth.Login(c.Context, c.String("username"), c.String("password")); err != nil {
				return err
			}
			return show(c, messageView(app.MsgLoggedIn))
		},
	}
}

func loginFederatedCommand() *cli.Command {
	return &cli.Command{
		Name:  "login-siwa",
		Usage: "Log in with a Sign in with Apple identity token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Aliases: []string{"t"}, Usage: "identity token (JWT)", Required: true},
			&cli.StringFlag{Name: "given-name", Usage: "given name released by the provider"},
			&cli.StringFlag{Name: "family-name", Usage: "family name released by the provider"},
			&cli.StringFlag{Name: "email", Usage: "email released by the provider"},
		},
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}

			identity := models.FederatedIdentity{
				Assertion:  c.String("token"),
				GivenName:  c.String("given-name"),
				FamilyName: c.String("family-name"),
				Email:      c.String("email"),
			}
			if err = rt.Services.Auth.LoginFederated(c.Context, identity); err != nil {
				return err
			}
			return show(c, messageView(app.MsgLoggedIn))
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the stored token",
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			if err = rt.Services.Auth.Logout(c.Context); err != nil {
				return err
			}
			return show(c, messageView("logged out"))
		},
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Report whether a session exists",
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			return show(c, statusView(rt.Services.Auth.IsAuthenticated()))
		},
	}
}
