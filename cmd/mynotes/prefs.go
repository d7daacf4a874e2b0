package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/oliverisaac/mynotes/types"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app func() *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show appearance preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printPreferences(cmd.OutOrStdout(), app().prefs.Load(cmd.Context()))
			return nil
		},
	}

	cmd.AddCommand(newPrefsSetCmd(app))
	return cmd
}

func newPrefsSetCmd(app func() *application) *cobra.Command {
	var (
		dark   bool
		accent string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change dark mode or the accent color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			ctx := cmd.Context()

			var color types.AccentColor
			if cmd.Flags().Changed("accent") {
				var ok bool
				color, ok = types.ParseAccentColor(accent)
				if !ok {
					return &types.ValidationError{
						Field:   "accent",
						Message: fmt.Sprintf("%q is not one of %s", accent, accentChoices()),
					}
				}
			}

			if cmd.Flags().Changed("dark") {
				if err := a.prefs.SetDarkMode(ctx, dark); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("accent") {
				if err := a.prefs.SetAccentColor(ctx, color); err != nil {
					return err
				}
			}

			printPreferences(cmd.OutOrStdout(), a.prefs.Load(ctx))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Enable dark mode")
	cmd.Flags().StringVar(&accent, "accent", "", "Accent color: "+accentChoices())
	return cmd
}

func printPreferences(w io.Writer, p types.Preferences) {
	fmt.Fprintf(w, "Dark mode: %t\n", p.DarkMode)
	fmt.Fprintf(w, "Accent color: %s\n", p.AccentColor.Label())
}

func accentChoices() string {
	names := []string{}
	for _, c := range types.AccentColors() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
