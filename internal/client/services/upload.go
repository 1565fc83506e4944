package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"

	"medreport/internal/client/notify"
	"medreport/internal/client/session"
	"medreport/internal/logging"
)

var (
	// ErrNoFile means no file was selected for upload.
	ErrNoFile = errors.New("no file selected")

	// ErrUploadInFlight refuses a second submit while one is running.
	ErrUploadInFlight = errors.New("upload already in progress")
)

// noReportIDMessage shows when the upload response has no resolvable id,
// so summarization cannot be requested.
const noReportIDMessage = "Uploaded but could not determine report id to summarize."

// Upload backs the upload view: submit one file, then immediately request
// a summary of the created report.
type Upload struct {
	api    API
	store  session.Store
	notify notify.Notifier
	log    logging.Logger
	busy   atomic.Bool
}

func NewUpload(api API, store session.Store, n notify.Notifier, log logging.Logger) *Upload {
	return &Upload{api: api, store: store, notify: n, log: log}
}

// Submit uploads the file at path and returns the summary text to render.
// Precondition failures (no file, no session) and upload/summarize
// failures raise their notifications here and return a sentinel or the
// underlying error; nothing is retried.
func (u *Upload) Submit(ctx context.Context, path string) (string, error) {
	if !u.busy.CompareAndSwap(false, true) {
		return "", ErrUploadInFlight
	}
	defer u.busy.Store(false)

	if path == "" {
		u.notify.Error("Please select a file first!")
		return "", ErrNoFile
	}

	sess, err := u.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if sess.Anonymous() {
		u.notify.Error("You must be logged in to upload.")
		return "", ErrNoSession
	}

	file, err := os.Open(path)
	if err != nil {
		u.notify.Error("Please select a file first!")
		return "", errors.Join(ErrNoFile, err)
	}
	defer file.Close()

	raw, err := u.api.UploadReport(ctx, sess.AccessToken, filepath.Base(path), file)
	if err != nil {
		u.log.Error(ctx, "upload failed", "file", path, "err", err)
		u.notify.Error("Upload failed. Check logs for details.")
		return "", err
	}
	u.notify.Success("File uploaded successfully!")

	id, ok := resolveReportID(raw)
	if !ok {
		return noReportIDMessage, nil
	}

	sumRaw, err := u.api.CreateSummary(ctx, sess.AccessToken, id)
	if err != nil {
		u.log.Error(ctx, "summarize failed", "report", id, "err", err)
		u.notify.Error("Upload failed. Check logs for details.")
		return "", err
	}

	return summaryText(sumRaw), nil
}

// resolveReportID pulls the created report's id out of the upload
// response, accepting either an "id" or a "pk" field.
func resolveReportID(raw []byte) (int64, bool) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, false
	}
	for _, key := range []string{"id", "pk"} {
		if v, ok := body[key].(float64); ok {
			return int64(v), true
		}
	}
	return 0, false
}

// summaryText picks the summary out of a summarize response: "summary"
// first, then "summary_text", first non-empty wins. A structurally
// unexpected body is shown raw.
func summaryText(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw)
	}
	for _, key := range []string{"summary", "summary_text"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}
	return string(raw)
}
