// Package services contains the application services behind each view:
// auth (login/signup), upload-and-summarize, the dashboard with its
// delete/undo protocol, and the single-report detail fetch.
package services

import (
	"context"
	"errors"
	"io"

	"medreport/internal/client/models"
)

// API is the surface of the report service the views consume. Satisfied
// by *api.Client; tests substitute fakes.
type API interface {
	Register(ctx context.Context, username, password, email string) error
	ExchangeToken(ctx context.Context, username, password string) (models.TokenPair, error)
	UploadReport(ctx context.Context, token, filename string, file io.Reader) ([]byte, error)
	ListReports(ctx context.Context, token string) ([]models.Report, error)
	GetReport(ctx context.Context, token string, id int64) (models.Report, error)
	CreateSummary(ctx context.Context, token string, id int64) ([]byte, error)
	ListSummaries(ctx context.Context, token string) ([]models.Summary, error)
	DeleteReport(ctx context.Context, token string, id int64) error
}

var (
	// ErrNoSession means the view needs a stored access token and none exists.
	ErrNoSession = errors.New("not signed in")

	// ErrNoAccessToken means a credential exchange came back without a token.
	ErrNoAccessToken = errors.New("no token returned")
)
