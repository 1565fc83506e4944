package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"medreport/internal/client/models"
	"medreport/internal/client/notify"
	"medreport/internal/client/session"
	"medreport/internal/logging"
)

// loadErrorMessage shows when the reports fetch itself fails.
const loadErrorMessage = "Could not load reports. Are you signed in?"

var (
	// ErrReportNotFound means no visible card has that id.
	ErrReportNotFound = errors.New("no such report")

	// ErrDeletePending refuses a second removal while one is in its grace window.
	ErrDeletePending = errors.New("removal already pending for this report")

	// ErrNothingToUndo means there is no pending removal for that id.
	ErrNothingToUndo = errors.New("nothing to undo for this report")
)

// pendingDelete is one scheduled server delete. The card is captured in
// full so undo or a failed delete can put it back.
type pendingDelete struct {
	card    models.Card
	token   string
	timer   *time.Timer
	toastID string
}

// State is a render snapshot of the dashboard. SignedOut is a terminal
// display state, not an error. OpenMenu is 0 when no card menu is open.
type State struct {
	SignedOut bool
	LoadError string
	Cards     []models.Card
	OpenMenu  int64
}

// Dashboard owns the report list view: fetching and joining reports with
// their latest summaries, the per-card overflow menu, and the
// delete-with-undo protocol. All of its state lives for exactly as long
// as the view does; Close cancels every pending timer.
type Dashboard struct {
	api    API
	store  session.Store
	notify notify.Notifier
	log    logging.Logger
	grace  time.Duration

	// lifetime of deferred deletes; cancelled by Close
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	signedOut bool
	loadErr   string
	cards     []models.Card
	openMenu  int64
	pending   map[int64]*pendingDelete
	closed    bool
}

func NewDashboard(api API, store session.Store, n notify.Notifier, log logging.Logger, grace time.Duration) *Dashboard {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dashboard{
		api:     api,
		store:   store,
		notify:  n,
		log:     log,
		grace:   grace,
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[int64]*pendingDelete),
	}
}

// Refresh fetches reports and summaries and rebuilds the card list.
// Anonymous sessions get the signed-out state with zero network calls. A
// summaries failure is tolerated (empty set); a reports failure sets the
// load error and suppresses the grid.
func (d *Dashboard) Refresh(ctx context.Context) error {
	sess, err := d.store.Load(ctx)
	if err != nil {
		return err
	}
	if sess.Anonymous() {
		d.mu.Lock()
		d.signedOut = true
		d.loadErr = ""
		d.cards = nil
		d.openMenu = 0
		d.mu.Unlock()
		return nil
	}

	reports, err := d.api.ListReports(ctx, sess.AccessToken)
	if err != nil {
		d.log.Error(ctx, "reports fetch failed", "err", err)
		d.mu.Lock()
		d.signedOut = false
		d.loadErr = loadErrorMessage
		d.cards = nil
		d.openMenu = 0
		d.mu.Unlock()
		return err
	}

	summaries, err := d.api.ListSummaries(ctx, sess.AccessToken)
	if err != nil {
		d.log.Warn(ctx, "summaries fetch failed, continuing without", "err", err)
		summaries = nil
	}

	cards := models.BuildCards(reports, summaries)

	d.mu.Lock()
	d.signedOut = false
	d.loadErr = ""
	d.cards = cards
	d.openMenu = 0
	d.mu.Unlock()
	return nil
}

// State returns a snapshot for rendering.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	cards := make([]models.Card, len(d.cards))
	copy(cards, d.cards)
	return State{
		SignedOut: d.signedOut,
		LoadError: d.loadErr,
		Cards:     cards,
		OpenMenu:  d.openMenu,
	}
}

// ToggleMenu opens the overflow menu of one card, closing any other; a
// second toggle on the open card closes it. Returns whether the menu is
// now open.
func (d *Dashboard) ToggleMenu(id int64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cardIndex(id) < 0 {
		return false, ErrReportNotFound
	}
	if d.openMenu == id {
		d.openMenu = 0
		return false, nil
	}
	d.openMenu = id
	return true, nil
}

// Remove removes a card from the visible list. The caller has already
// confirmed with the user. Anonymous sessions remove locally with no
// server effect. Otherwise the server delete is deferred by the grace
// window and an undoable notification is raised; one pending removal per
// report id.
func (d *Dashboard) Remove(ctx context.Context, id int64) error {
	sess, err := d.store.Load(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.pending[id]; ok {
		return ErrDeletePending
	}
	idx := d.cardIndex(id)
	if idx < 0 {
		return ErrReportNotFound
	}

	card := d.cards[idx]
	d.cards = append(d.cards[:idx], d.cards[idx+1:]...)
	if d.openMenu == id {
		d.openMenu = 0
	}

	if sess.Anonymous() {
		return nil
	}

	p := &pendingDelete{
		card:    card,
		token:   sess.AccessToken,
		toastID: d.notify.Info(fmt.Sprintf("Report removed. Type 'undo %d' to restore.", id)),
	}
	p.timer = time.AfterFunc(d.grace, func() { d.finishDelete(id) })
	d.pending[id] = p
	return nil
}

// Undo cancels a pending removal: the timer is stopped, the card goes
// back to the head of the list, the undo toast is dismissed, and no
// server call ever happens.
func (d *Dashboard) Undo(id int64) error {
	d.mu.Lock()
	p, ok := d.pending[id]
	if !ok {
		d.mu.Unlock()
		return ErrNothingToUndo
	}
	p.timer.Stop()
	delete(d.pending, id)
	d.cards = append([]models.Card{p.card}, d.cards...)
	d.mu.Unlock()

	d.notify.Dismiss(p.toastID)
	return nil
}

// finishDelete runs when a grace timer fires. Claiming the pending entry
// under the lock makes firing and cancellation mutually exclusive: if
// Undo got there first the entry is gone and this is a no-op.
func (d *Dashboard) finishDelete(id int64) {
	d.mu.Lock()
	p, ok := d.pending[id]
	if !ok || d.closed {
		d.mu.Unlock()
		return
	}
	delete(d.pending, id)
	d.mu.Unlock()

	if err := d.api.DeleteReport(d.ctx, p.token, id); err != nil {
		d.log.Error(d.ctx, "deferred delete failed", "report", id, "err", err)
		d.notify.Error("Failed to delete on server")
		// the report still exists server-side, so it comes back
		d.mu.Lock()
		d.cards = append([]models.Card{p.card}, d.cards...)
		d.mu.Unlock()
		return
	}
	d.notify.Success("Report deleted")
}

// PendingCount reports how many removals are waiting out their grace window.
func (d *Dashboard) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Close tears the view down: every pending timer is stopped and its
// deferred delete abandoned (the server keeps the report), and in-flight
// deferred calls are cancelled.
func (d *Dashboard) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for id, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, id)
	}
	d.mu.Unlock()
	d.cancel()
}

// cardIndex returns the position of a card in the visible list, -1 when absent.
// Callers hold d.mu.
func (d *Dashboard) cardIndex(id int64) int {
	for i, c := range d.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
