package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/mynotes/notes"
	"github.com/oliverisaac/mynotes/store"
	"github.com/oliverisaac/mynotes/types"
	"github.com/sirupsen/logrus"
)

type noteListResponse struct {
	Query       string              `json:"query"`
	Notes       []types.Note        `json:"notes"`
	Preferences preferencesResponse `json:"preferences"`
	Error       string              `json:"error,omitempty"`
}

func listNotesHandler(svc *notes.Service, prefs *store.PreferenceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		data := types.NoteListData{Query: c.QueryParam("q")}

		logrus.Debugf("Listing notes for query %q", data.Query)
		found, err := svc.List(ctx, data.Query)
		if err != nil {
			logrus.Error(err)
			data.WithError(err)
		}

		data.
			WithNotes(found).
			WithPreferences(prefs.Load(ctx))

		return renderNoteList(c, &data)
	}
}

func renderNoteList(c echo.Context, data *types.NoteListData) error {
	resp := noteListResponse{
		Query:       data.Query,
		Notes:       data.Notes,
		Preferences: newPreferencesResponse(data.Preferences),
	}
	if resp.Notes == nil {
		resp.Notes = []types.Note{}
	}

	status := http.StatusOK
	if data.Err != nil {
		status = http.StatusInternalServerError
		resp.Error = "Oops! It appears we could not load your notes"
	}
	return c.JSON(status, resp)
}
