package main

import (
	"encoding/json"
	errs "errors"
	"fmt"
	"strings"

	"github.com/oliverisaac/mynotes/notes"
	"github.com/oliverisaac/mynotes/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAddCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Save a new note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if !notes.Validate(text) {
				return types.ErrEmptyContent
			}

			note, err := app().notes.Create(cmd.Context(), text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}
}

func newListCmd(app func() *application) *cobra.Command {
	var (
		query   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := app().notes.List(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return errors.Wrap(encoder.Encode(found), "encoding notes")
			}

			for _, note := range found {
				fmt.Fprintf(out, "%s %s %s\n", note.ID, note.CreatedAt.Local().Format("2006-01-02 15:04"), firstLine(note.Content))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "Only show notes containing this text")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func newEditCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [id] [text...]",
		Short: "Replace the content of a note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			text := strings.Join(args[1:], " ")
			if !notes.Validate(text) {
				return types.ErrEmptyContent
			}

			note, err := a.noteStore.Get(cmd.Context(), args[0])
			if errs.Is(err, types.ErrNoteNotFound) {
				return errors.Errorf("no note with id %q", args[0])
			}
			if err != nil {
				return err
			}

			if err := a.notes.Update(cmd.Context(), &note, text); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %s\n", note.ID)
			return nil
		},
	}
}

func newDeleteCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Permanently delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app().notes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", args[0])
			return nil
		},
	}
}

// firstLine is what a one-line listing shows of a note.
func firstLine(content string) string {
	line, _, more := strings.Cut(content, "\n")
	if more {
		return line + " …"
	}
	return line
}
