package main

import (
	errs "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/mynotes/notes"
	"github.com/oliverisaac/mynotes/store"
	"github.com/oliverisaac/mynotes/types"
	"github.com/sirupsen/logrus"
)

type noteRequest struct {
	Content string `json:"content" form:"content"`
}

func createNote(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req noteRequest
		if err := c.Bind(&req); err != nil {
			return renderError(c, http.StatusBadRequest, "Invalid request body")
		}

		if !notes.Validate(req.Content) {
			return renderValidationError(c, types.ErrEmptyContent, req.Content)
		}

		note, err := svc.Create(c.Request().Context(), req.Content)
		if err != nil {
			logrus.Error(err)
			return renderError(c, http.StatusInternalServerError, "Oops! It appears we could not save your note")
		}

		return c.JSON(http.StatusCreated, note)
	}
}

func getNote(st *store.NoteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		note, err := st.Get(c.Request().Context(), c.Param("id"))
		if errs.Is(err, types.ErrNoteNotFound) {
			return renderError(c, http.StatusNotFound, "Note not found")
		}
		if err != nil {
			logrus.Error(err)
			return renderError(c, http.StatusInternalServerError, "Oops! It appears we could not load your note")
		}
		return c.JSON(http.StatusOK, note)
	}
}

func updateNote(svc *notes.Service, st *store.NoteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req noteRequest
		if err := c.Bind(&req); err != nil {
			return renderError(c, http.StatusBadRequest, "Invalid request body")
		}

		if !notes.Validate(req.Content) {
			return renderValidationError(c, types.ErrEmptyContent, req.Content)
		}

		note, err := st.Get(ctx, c.Param("id"))
		if err == nil {
			err = svc.Update(ctx, &note, req.Content)
		}
		if errs.Is(err, types.ErrNoteNotFound) {
			return renderError(c, http.StatusNotFound, "Note not found")
		}
		if err != nil {
			logrus.Error(err)
			return renderError(c, http.StatusInternalServerError, "Oops! It appears we could not update your note")
		}

		return c.JSON(http.StatusOK, note)
	}
}

func deleteNote(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			logrus.Error(err)
			return renderError(c, http.StatusInternalServerError, "Oops! It appears we could not delete your note")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
