package client

import (
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/til-client/models"
)

func acronymsCommand() *cli.Command {
	acronymFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: "short", Aliases: []string{"s"}, Usage: "the acronym", Required: true},
			&cli.StringFlag{Name: "long", Aliases: []string{"l"}, Usage: "what it stands for", Required: true},
		}
	}

	return &cli.Command{
		Name:    "acronyms",
		Aliases: []string{"acr"},
		Usage:   "Manage acronyms",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all acronyms",
				Action: acronymsList,
			},
			{
				Name:   "create",
				Usage:  "Create an acronym",
				Flags:  acronymFlags(),
				Action: acronymsCreate,
			},
			{
				Name:      "update",
				Usage:     "Replace an acronym",
				ArgsUsage: "ACRONYM_ID",
				Flags:     acronymFlags(),
				Action:    acronymsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an acronym",
				ArgsUsage: "ACRONYM_ID",
				Action:    acronymsDelete,
			},
			{
				Name:      "user",
				Usage:     "Show who created an acronym",
				ArgsUsage: "ACRONYM_ID",
				Action:    acronymsUser,
			},
			{
				Name:      "categories",
				Usage:     "List the categories of an acronym",
				ArgsUsage: "ACRONYM_ID",
				Action:    acronymsCategories,
			},
			{
				Name:      "add-category",
				Usage:     "File an acronym under a category",
				ArgsUsage: "ACRONYM_ID CATEGORY_ID",
				Action:    acronymsAddCategory,
			},
			{
				Name:      "remove-category",
				Usage:     "Remove an acronym from a category",
				ArgsUsage: "ACRONYM_ID CATEGORY_ID",
				Action:    acronymsRemoveCategory,
			},
		},
	}
}

func acronymsList(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}

	acronyms, err := rt.Services.Acronyms.List(c.Context)
	if err != nil {
		return err
	}
	return show(c, acronymsView(acronyms...).withData(acronyms))
}

func acronymsCreate(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}

	acronym, err := rt.Services.Acronyms.Create(c.Context, models.CreateAcronymData{
		Short: c.String("short"),
		Long:  c.String("long"),
	})
	if err != nil {
		return err
	}
	return show(c, acronymsView(acronym).withData(acronym))
}

func acronymsUpdate(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	id, err := argID(c, 0, "ACRONYM_ID")
	if err != nil {
		return err
	}

	acronym, err := rt.Services.Acronyms.Update(c.Context, id, models.CreateAcronymData{
		Short: c.String("short"),
		Long:  c.String("long"),
	})
	if err != nil {
		return err
	}
	return show(c, acronymsView(acronym).withData(acronym))
}

func acronymsDelete(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	id, err := argID(c, 0, "ACRONYM_ID")
	if err != nil {
		return err
	}

	if err = rt.Services.Acronyms.Delete(c.Context, id); err != nil {
		return err
	}
	return show(c, messageView("deleted"))
}

func acronymsUser(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	id, err := argID(c, 0, "ACRONYM_ID")
	if err != nil {
		return err
	}

	user, err := rt.Services.Acronyms.User(c.Context, id)
	if err != nil {
		return err
	}
	return show(c, usersView(user).withData(user))
}

func acronymsCategories(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	id, err := argID(c, 0, "ACRONYM_ID")
	if err != nil {
		return err
	}

	categories, err := rt.Services.Acronyms.Categories(c.Context, id)
	if err != nil {
		return err
	}
	return show(c, categoriesView(categories...).withData(categories))
}

func acronymsAddCategory(c *cli.Context) error {
	return changeAcronymCategory(c, true)
}

func acronymsRemoveCategory(c *cli.Context) error {
	return changeAcronymCategory(c, false)
}

func changeAcronymCategory(c *cli.Context, add bool) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	acronymID, err := argID(c, 0, "ACRONYM_ID")
	if err != nil {
		return err
	}
	categoryID, err := argID(c, 1, "CATEGORY_ID")
	if err != nil {
		return err
	}

	if add {
		err = rt.Services.Acronyms.AddCategory(c.Context, acronymID, categoryID)
	} else {
		err = rt.Services.Acronyms.RemoveCategory(c.Context, acronymID, categoryID)
	}
	if err != nil {
		return err
	}

	if add {
		return show(c, messageView("category added"))
	}
	return show(c, messageView("category removed"))
}
