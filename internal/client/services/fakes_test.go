package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"medreport/internal/client/models"
	"medreport/internal/client/session"
)

// fakeAPI records calls and serves canned responses.
type fakeAPI struct {
	mu sync.Mutex

	registerErr  error
	tokenPair    models.TokenPair
	tokenErr     error
	uploadResp   []byte
	uploadErr    error
	reports      []models.Report
	reportsErr   error
	summaries    []models.Summary
	summariesErr error
	summaryResp  []byte
	summaryErr   error
	report       models.Report
	getReportErr error
	deleteErr    error

	calls        []string
	uploadedName string
	uploadedBody []byte
	deleted      []int64
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) deletedIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int64, len(f.deleted))
	copy(out, f.deleted)
	return out
}

func (f *fakeAPI) Register(ctx context.Context, username, password, email string) error {
	f.record("Register")
	return f.registerErr
}

func (f *fakeAPI) ExchangeToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	f.record("ExchangeToken")
	return f.tokenPair, f.tokenErr
}

func (f *fakeAPI) UploadReport(ctx context.Context, token, filename string, file io.Reader) ([]byte, error) {
	f.record("UploadReport")
	body, _ := io.ReadAll(file)
	f.mu.Lock()
	f.uploadedName = filename
	f.uploadedBody = body
	f.mu.Unlock()
	return f.uploadResp, f.uploadErr
}

func (f *fakeAPI) ListReports(ctx context.Context, token string) ([]models.Report, error) {
	f.record("ListReports")
	return f.reports, f.reportsErr
}

func (f *fakeAPI) GetReport(ctx context.Context, token string, id int64) (models.Report, error) {
	f.record(fmt.Sprintf("GetReport(%d)", id))
	return f.report, f.getReportErr
}

func (f *fakeAPI) CreateSummary(ctx context.Context, token string, id int64) ([]byte, error) {
	f.record(fmt.Sprintf("CreateSummary(%d)", id))
	return f.summaryResp, f.summaryErr
}

func (f *fakeAPI) ListSummaries(ctx context.Context, token string) ([]models.Summary, error) {
	f.record("ListSummaries")
	return f.summaries, f.summariesErr
}

func (f *fakeAPI) DeleteReport(ctx context.Context, token string, id int64) error {
	f.record(fmt.Sprintf("DeleteReport(%d)", id))
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	return nil
}

// stubNotifier captures notifications instead of printing them.
type stubNotifier struct {
	mu        sync.Mutex
	seq       int
	messages  []string
	dismissed []string
}

func (s *stubNotifier) emit(level, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.messages = append(s.messages, level+": "+text)
	return fmt.Sprintf("toast-%d", s.seq)
}

func (s *stubNotifier) Info(text string) string    { return s.emit("info", text) }
func (s *stubNotifier) Success(text string) string { return s.emit("ok", text) }
func (s *stubNotifier) Error(text string) string   { return s.emit("error", text) }

func (s *stubNotifier) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed = append(s.dismissed, id)
}

func (s *stubNotifier) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *stubNotifier) contains(msg string) bool {
	for _, m := range s.all() {
		if m == msg {
			return true
		}
	}
	return false
}

// memStore is an in-memory session.Store.
type memStore struct {
	mu      sync.Mutex
	sess    session.Session
	loadErr error
}

func (m *memStore) Load(ctx context.Context) (session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess, m.loadErr
}

func (m *memStore) Save(ctx context.Context, s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = s
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = session.Session{}
	return nil
}

func signedIn() *memStore {
	return &memStore{sess: session.Session{AccessToken: "tok"}}
}
