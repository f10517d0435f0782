package client

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/til-client/internal/app"

	"github.com/MKhiriev/til-client/models"
)

func idString(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func acronymsView(acronyms ...models.Acronym) view {
	rows := make([][]string, 0, len(acronyms))
	for _, a := range acronyms {
		owner := "-"
		if a.User != nil {
			owner = a.User.ID.String()
		}
		rows = append(rows, []string{idString(a.ID), a.Short, a.Long, owner})
	}
	return view{headers: []string{"ID", "SHORT", "LONG", "USER"}, rows: rows}
}

func categoriesView(categories ...models.Category) view {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{idString(c.ID), c.Name})
	}
	return view{headers: []string{"ID", "NAME"}, rows: rows}
}

func usersView(users ...models.User) view {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{idString(u.ID), u.Name, u.Username})
	}
	return view{headers: []string{"ID", "NAME", "USERNAME"}, rows: rows}
}

// withData sets the value printed by the JSON and YAML formats.
func (v view) withData(data any) view {
	v.data = data
	return v
}

type statusResult struct {
	Authenticated bool `json:"authenticated"`
}

func statusView(authenticated bool) view {
	state := app.MsgLoggedOut
	if authenticated {
		state = app.MsgLoggedIn
	}
	return view{
		data: statusResult{Authenticated: authenticated},
		rows: [][]string{{state}},
	}
}

// messageView prints msg in a table and {"result": msg} otherwise.
func messageView(msg string) view {
	return view{
		data: map[string]string{"result": msg},
		rows: [][]string{{msg}},
	}
}
