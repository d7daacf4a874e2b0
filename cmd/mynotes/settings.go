package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/mynotes/store"
	"github.com/oliverisaac/mynotes/types"
	"github.com/sirupsen/logrus"
)

type preferencesResponse struct {
	DarkMode    bool              `json:"darkMode"`
	AccentColor types.AccentColor `json:"accentColor"`
	Label       string            `json:"label"`
	Background  string            `json:"background"`
}

func newPreferencesResponse(p types.Preferences) preferencesResponse {
	return preferencesResponse{
		DarkMode:    p.DarkMode,
		AccentColor: p.AccentColor,
		Label:       p.AccentColor.Label(),
		Background:  p.AccentColor.Background(),
	}
}

type accentColorResponse struct {
	Value      types.AccentColor `json:"value"`
	Label      string            `json:"label"`
	Background string            `json:"background"`
}

// preferencesRequest leaves a setting untouched when its field is absent.
type preferencesRequest struct {
	DarkMode    *bool   `json:"darkMode"`
	AccentColor *string `json:"accentColor"`
}

func getPreferences(prefs *store.PreferenceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, newPreferencesResponse(prefs.Load(c.Request().Context())))
	}
}

func updatePreferences(prefs *store.PreferenceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req preferencesRequest
		if err := c.Bind(&req); err != nil {
			return renderError(c, http.StatusBadRequest, "Invalid request body")
		}

		// Check the color before writing anything so a bad request changes nothing.
		var color types.AccentColor
		if req.AccentColor != nil {
			var ok bool
			color, ok = types.ParseAccentColor(*req.AccentColor)
			if !ok {
				return renderValidationError(c, &types.ValidationError{
					Field:   "accentColor",
					Message: "Oops! That accent color is not available",
				}, *req.AccentColor)
			}
		}

		if req.DarkMode != nil {
			if err := prefs.SetDarkMode(ctx, *req.DarkMode); err != nil {
				logrus.Error(err)
				return renderError(c, http.StatusInternalServerError, "Oops! It appears we could not save your settings")
			}
		}
		if req.AccentColor != nil {
			if err := prefs.SetAccentColor(ctx, color); err != nil {
				logrus.Error(err)
				return renderError(c, http.StatusInternalServerError, "Oops! It appears we could not save your settings")
			}
		}

		return c.JSON(http.StatusOK, newPreferencesResponse(prefs.Load(ctx)))
	}
}

func listAccentColors() echo.HandlerFunc {
	return func(c echo.Context) error {
		ret := []accentColorResponse{}
		for _, color := range types.AccentColors() {
			ret = append(ret, accentColorResponse{
				Value:      color,
				Label:      color.Label(),
				Background: color.Background(),
			})
		}
		return c.JSON(http.StatusOK, ret)
	}
}
