package services

import (
	"context"

	"medreport/internal/client/models"
	"medreport/internal/client/session"
)

// Reports backs the report detail view.
type Reports struct {
	api   API
	store session.Store
}

func NewReports(api API, store session.Store) *Reports {
	return &Reports{api: api, store: store}
}

// Detail fetches one report with the stored session. Anonymous sessions
// get ErrNoSession instead of a doomed request.
func (r *Reports) Detail(ctx context.Context, id int64) (models.Report, error) {
	sess, err := r.store.Load(ctx)
	if err != nil {
		return models.Report{}, err
	}
	if sess.Anonymous() {
		return models.Report{}, ErrNoSession
	}
	return r.api.GetReport(ctx, sess.AccessToken, id)
}
