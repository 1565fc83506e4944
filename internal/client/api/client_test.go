package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the fake service saw.
type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
	form   *http.Request
}

func newFakeService(t *testing.T, status int, response string) (*Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			rec.form = r
		} else {
			rec.body, _ = io.ReadAll(r.Body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api"), rec
}

func TestRegister_PostsCredentials(t *testing.T) {
	c, rec := newFakeService(t, http.StatusCreated, `{"id": 1}`)

	err := c.Register(context.Background(), "bob", "x", "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/register/", rec.path)
	assert.Empty(t, rec.auth, "register is unauthenticated")

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	assert.Equal(t, map[string]string{"username": "bob", "password": "x", "email": "bob@example.com"}, payload)
}

func TestExchangeToken_ParsesPair(t *testing.T) {
	c, rec := newFakeService(t, http.StatusOK, `{"access": "acc", "refresh": "ref"}`)

	pair, err := c.ExchangeToken(context.Background(), "alice", "pw")
	require.NoError(t, err)

	assert.Equal(t, "/api/token/", rec.path)
	assert.Equal(t, "acc", pair.Access)
	assert.Equal(t, "ref", pair.Refresh)
}

func TestExchangeToken_RefreshOptional(t *testing.T) {
	c, _ := newFakeService(t, http.StatusOK, `{"access": "acc"}`)

	pair, err := c.ExchangeToken(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Empty(t, pair.Refresh)
}

func TestExchangeToken_ServerErrorKeepsBody(t *testing.T) {
	c, _ := newFakeService(t, http.StatusUnauthorized,
		`{"detail": "No active account found with the given credentials"}`)

	_, err := c.ExchangeToken(context.Background(), "alice", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "No active account found with the given credentials", FieldErrorText(apiErr.Body))
}

func TestUploadReport_MultipartUnderFixedField(t *testing.T) {
	c, rec := newFakeService(t, http.StatusCreated, `{"id": 42}`)

	raw, err := c.UploadReport(context.Background(), "tok", "scan.pdf", strings.NewReader("%PDF-1.4 data"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 42}`, string(raw))

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/reports/", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)

	require.NotNil(t, rec.form)
	file, header, err := rec.form.FormFile("original_file")
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, "scan.pdf", header.Filename)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(content))
}

func TestListReports_DecodesArray(t *testing.T) {
	c, rec := newFakeService(t, http.StatusOK,
		`[{"id": 1, "original_file": "/u/x.pdf", "extracted_text": "t", "uploaded_at": "2025-01-01"}]`)

	reports, err := c.ListReports(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, "/api/reports/", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)
	require.Len(t, reports, 1)
	assert.Equal(t, int64(1), reports[0].ID)
	assert.Equal(t, "/u/x.pdf", reports[0].OriginalFile)
}

func TestGetReport_FetchesByID(t *testing.T) {
	c, rec := newFakeService(t, http.StatusOK, `{"id": 7, "extracted_text": "body"}`)

	report, err := c.GetReport(context.Background(), "tok", 7)
	require.NoError(t, err)

	assert.Equal(t, "/api/reports/7/", rec.path)
	assert.Equal(t, "body", report.ExtractedText)
}

func TestCreateSummary_PostsEmptyObject(t *testing.T) {
	c, rec := newFakeService(t, http.StatusOK, `{"summary_text": "ok"}`)

	raw, err := c.CreateSummary(context.Background(), "tok", 42)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/reports/42/summarize/", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)
	assert.JSONEq(t, `{}`, string(rec.body))
	assert.JSONEq(t, `{"summary_text": "ok"}`, string(raw))
}

func TestListSummaries_DecodesArray(t *testing.T) {
	c, rec := newFakeService(t, http.StatusOK,
		`[{"report": 1, "summary_text": "s", "created_at": "2025-01-02"}]`)

	summaries, err := c.ListSummaries(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, "/api/summaries/", rec.path)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(1), summaries[0].Report)
}

func TestDeleteReport_IssuesDelete(t *testing.T) {
	c, rec := newFakeService(t, http.StatusNoContent, ``)

	require.NoError(t, c.DeleteReport(context.Background(), "tok", 7))

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/reports/7/", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)
}

func TestNew_NormalizesTrailingSlash(t *testing.T) {
	assert.Equal(t, New("http://h/api").baseURL, New("http://h/api/").baseURL)
}
