package cli

import (
	"context"
	"errors"
	"fmt"

	"medreport/internal/client/services"
)

// Show renders one report's extracted text.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := reportID(a.reader, args, a.out)
	if err != nil {
		return err
	}

	report, err := a.reports.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNoSession) {
			fmt.Fprintln(a.out, "You are not signed in. Use 'login' first.")
		} else {
			fmt.Fprintln(a.out, "Could not load report.")
		}
		return err
	}

	fmt.Fprintf(a.out, "Report %d\n", report.ID)
	if report.ExtractedText != "" {
		fmt.Fprintln(a.out, report.ExtractedText)
	} else {
		fmt.Fprintln(a.out, "No text found.")
	}
	return nil
}
