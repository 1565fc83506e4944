package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"medreport/internal/client/services"
)

// List refreshes and renders the dashboard. Fetch problems end up in the
// state (signed-out notice or load error), so rendering always happens.
func (a *App) List(ctx context.Context) error {
	err := a.dashboard.Refresh(ctx)
	renderDashboard(a.out, a.dashboard.State())
	return err
}

// Menu toggles a card's overflow menu; opening one closes any other.
func (a *App) Menu(ctx context.Context, args []string) error {
	id, err := reportID(a.reader, args, a.out)
	if err != nil {
		return err
	}

	open, err := a.dashboard.ToggleMenu(id)
	if err != nil {
		fmt.Fprintln(a.out, "No such report.")
		return err
	}
	if open {
		fmt.Fprintf(a.out, "Menu open for report %d: 'remove %d' to remove it.\n", id, id)
	} else {
		fmt.Fprintln(a.out, "Menu closed.")
	}
	return nil
}

// Remove runs the optimistic delete protocol: confirm, drop the card from
// view, and let the service defer the server delete by the grace window.
func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := reportID(a.reader, args, a.out)
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader,
		"Remove this report? This will remove it from your uploads. [y/N]", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return nil
	}

	switch err := a.dashboard.Remove(ctx, id); {
	case errors.Is(err, services.ErrDeletePending):
		fmt.Fprintln(a.out, "Removal already pending for this report.")
		return err
	case errors.Is(err, services.ErrReportNotFound):
		fmt.Fprintln(a.out, "No such report.")
		return err
	default:
		return err
	}
}

// Undo cancels a pending removal inside its grace window.
func (a *App) Undo(ctx context.Context, args []string) error {
	id, err := reportID(a.reader, args, a.out)
	if err != nil {
		return err
	}

	if err := a.dashboard.Undo(id); err != nil {
		fmt.Fprintln(a.out, "Nothing to undo for this report.")
		return err
	}
	fmt.Fprintln(a.out, "Report restored.")
	return nil
}

func renderDashboard(w io.Writer, state services.State) {
	if state.SignedOut {
		fmt.Fprintln(w, "You are not signed in - your uploaded reports will appear here.")
		fmt.Fprintln(w, "Use 'login' or 'signup' to get started.")
		return
	}
	if state.LoadError != "" {
		fmt.Fprintln(w, state.LoadError)
		return
	}
	if len(state.Cards) == 0 {
		fmt.Fprintln(w, "No reports found.")
		return
	}

	fmt.Fprintln(w, "Your Uploaded Reports")
	for _, card := range state.Cards {
		fmt.Fprintf(w, "  [%d] %s\n", card.ID, card.Name)
		if card.Snippet != "" {
			fmt.Fprintf(w, "      %s...\n", card.Snippet)
		}
		if card.Date != "" {
			fmt.Fprintf(w, "      Uploaded on %s\n", card.Date)
		}
		if state.OpenMenu == card.ID {
			fmt.Fprintf(w, "      > remove %d\n", card.ID)
		}
	}
}
