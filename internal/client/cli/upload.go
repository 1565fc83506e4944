package cli

import (
	"context"
	"fmt"
)

func (a *App) Upload(ctx context.Context, args []string) error {
	path, err := argOrPrompt(a.reader, args, "Path to the report file", a.out)
	if err != nil {
		return err
	}

	summary, err := a.upload.Submit(ctx, path)
	if err != nil {
		// the upload service already raised the right notification
		return err
	}

	if summary != "" {
		fmt.Fprintf(a.out, "\nSummary\n-------\n%s\n", summary)
	}
	return nil
}
