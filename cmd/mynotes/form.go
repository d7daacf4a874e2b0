package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/mynotes/types"
)

// FormData echoes rejected input back with a message per field.
type FormData struct {
	Errors map[string]string `json:"errors"`
	Values map[string]string `json:"values"`
}

func newFormData() FormData {
	return FormData{
		Errors: map[string]string{},
		Values: map[string]string{},
	}
}

func renderValidationError(c echo.Context, verr *types.ValidationError, value string) error {
	form := newFormData()
	form.Errors[verr.Field] = verr.Message
	form.Values[verr.Field] = value
	return c.JSON(http.StatusUnprocessableEntity, form)
}

func renderError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
