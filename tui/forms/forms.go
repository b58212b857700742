// Package forms provides huh-based form components for the TUI.
package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/user/playsketch-cli/play"
)

// NewConfirmDeleteForm creates a huh confirm form asking whether to remove a player.
// The result pointer is bound to the confirm field value.
func NewConfirmDeleteForm(label string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete player %s?", label)).
				Description("The player and nothing else is removed from this frame.").
				Affirmative("Yes, delete").
				Negative("No, keep").
				Value(confirm),
		),
	).WithTheme(Theme()).WithShowHelp(false)
}

// NewNotesForm creates a huh form editing the notes of frame number n.
// The text pointer is pre-filled with the current notes and receives the edit.
func NewNotesForm(n int, text *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Notes for frame %d", n)).
				Description("Ctrl+J for a new line, Enter to save, Esc to cancel").
				CharLimit(2000).
				Value(text),
		),
	).WithTheme(Theme()).WithShowHelp(false)
}

// NewPlayResult holds the data returned by a completed new-play form.
type NewPlayResult struct {
	Name    string
	Court   string
	Discard bool
}

// NewPlayForm creates a huh form starting a new play. When dirty is set the
// form asks whether to discard the unsaved play first.
func NewPlayForm(result *NewPlayResult, dirty bool) *huh.Form {
	if result.Court == "" {
		result.Court = string(play.HalfCourt)
	}
	result.Discard = !dirty

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder(play.DefaultName).
			Value(&result.Name).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) > 80 {
					return fmt.Errorf("name is too long")
				}
				return nil
			}),

		huh.NewSelect[string]().
			Title("Court").
			Options(
				huh.NewOption("Half court", string(play.HalfCourt)),
				huh.NewOption("Full court", string(play.FullCourt)),
			).
			Value(&result.Court),
	}
	if dirty {
		fields = append(fields, huh.NewConfirm().
			Title("Discard changes?").
			Description("The current play has unsaved changes.").
			Affirmative("Yes, discard").
			Negative("No, go back").
			Value(&result.Discard))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).WithShowHelp(false)
}
