// Package browser implements the two-tab workflow browser: tab state, card
// rendering and the load/delete user actions. It is DOM-free; internal/ui
// renders its panels to HTML and internal/cli drives it from the terminal.
package browser

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"github.com/me/workdeck/pkg/model"
)

// User-facing dialog and alert texts. Fixed strings, matched by tests.
const (
	ConfirmLoadMessage   = "Are you sure you want to import this workflow?"
	ConfirmDeleteMessage = "Are you sure you want to delete this workflow?"
	AlertListFailed      = "Failed to fetch workflow list. Please try again."
	AlertDeleteFailed    = "Failed to delete workflow."
)

// WorkstationPath is the editor page a workflow is loaded into.
const WorkstationPath = "/workstation"

// API is the subset of the workflow service the browser calls.
type API interface {
	FetchGallery(ctx context.Context) ([]model.GalleryEntry, error)
	ListWorkflows(ctx context.Context) ([]string, error)
	DeleteWorkflow(ctx context.Context, filename string) error
}

// Thumbnailer synthesizes a placeholder image for entries without one.
type Thumbnailer interface {
	DataURI(title string) string
}

// Confirmer asks the user to approve an action before it runs.
type Confirmer interface {
	Confirm(message string) bool
}

// Alerter surfaces a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// Navigator performs a full page navigation.
type Navigator interface {
	Navigate(url string)
}

type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }

type discardAlerts struct{}

func (discardAlerts) Alert(string) {}

type noNavigation struct{}

func (noNavigation) Navigate(string) {}

// Options supplies the user-interaction hooks. Nil fields get no-op
// defaults; the web UI leaves Confirm nil because its dialogs run in the
// page before the request reaches the browser core.
type Options struct {
	Confirm  Confirmer
	Alert    Alerter
	Navigate Navigator
	Logger   *slog.Logger
}

// Browser owns the tab state and panel contents. Exactly one tab is active
// at a time; transitions happen only through Activate. State is not
// persisted: a fresh Browser starts on the gallery tab.
type Browser struct {
	api     API
	thumbs  Thumbnailer
	confirm Confirmer
	alerts  Alerter
	nav     Navigator
	logger  *slog.Logger

	mu     sync.Mutex
	active Tab
	panels map[Tab]*Panel
	// gen counts refreshes per tab so a stale response is never applied
	// over a newer one when requests overlap.
	gen map[Tab]uint64
}

// New creates a Browser with the gallery tab active and both panels empty.
// The caller triggers the initial load via Activate.
func New(api API, thumbs Thumbnailer, opts Options) *Browser {
	b := &Browser{
		api:     api,
		thumbs:  thumbs,
		confirm: opts.Confirm,
		alerts:  opts.Alert,
		nav:     opts.Navigate,
		logger:  opts.Logger,
		active:  TabGallery,
		panels: map[Tab]*Panel{
			TabGallery: {Visible: true, Selected: true},
			TabSaved:   {},
		},
		gen: map[Tab]uint64{},
	}
	if b.confirm == nil {
		b.confirm = alwaysConfirm{}
	}
	if b.alerts == nil {
		b.alerts = discardAlerts{}
	}
	if b.nav == nil {
		b.nav = noNavigation{}
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With("component", "browser")
	return b
}

// ActiveTab returns the currently active tab.
func (b *Browser) ActiveTab() Tab {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// Panel returns a snapshot of the given tab's panel.
func (b *Browser) Panel(tab Tab) Panel {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := *b.panels[tab]
	p.Cards = append([]Card(nil), b.panels[tab].Cards...)
	return p
}

// Activate makes tab the active panel and triggers exactly one refresh of
// its list. Every panel is hidden and deselected first, then the target is
// shown and its selector marked.
func (b *Browser) Activate(ctx context.Context, tab Tab) {
	b.mu.Lock()
	for _, p := range b.panels {
		p.Visible = false
		p.Selected = false
	}
	b.active = tab
	b.panels[tab].Visible = true
	b.panels[tab].Selected = true
	b.mu.Unlock()

	if tab == TabSaved {
		b.LoadSaved(ctx)
		return
	}
	b.LoadGallery(ctx)
}

// LoadGallery refreshes the gallery panel. The panel is cleared before the
// request goes out; a failed fetch leaves it empty and raises no alert.
func (b *Browser) LoadGallery(ctx context.Context) {
	b.mu.Lock()
	b.gen[TabGallery]++
	gen := b.gen[TabGallery]
	b.panels[TabGallery].Cards = nil
	b.mu.Unlock()

	entries, err := b.api.FetchGallery(ctx)
	if err != nil {
		b.logger.Error("gallery fetch failed", "error", err)
		return
	}

	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		sum := model.SummaryFromMeta(e.Meta)
		if sum.Thumbnail == "" {
			sum.Thumbnail = b.thumbs.DataURI(sum.Title)
		}
		cards = append(cards, BuildCard(sum.Title, sum, false))
	}
	b.commit(TabGallery, gen, cards)
}

// LoadSaved refreshes the saved-workflow panel. The panel is replaced only
// on success; any failure logs a diagnostic and alerts the user with a
// fixed message, leaving the previous content in place.
func (b *Browser) LoadSaved(ctx context.Context) {
	b.mu.Lock()
	b.gen[TabSaved]++
	gen := b.gen[TabSaved]
	b.mu.Unlock()

	files, err := b.api.ListWorkflows(ctx)
	if err != nil {
		b.logger.Error("workflow list fetch failed", "error", err)
		b.alerts.Alert(AlertListFailed)
		return
	}

	cards := make([]Card, 0, len(files))
	for _, f := range files {
		sum := model.SummaryFromFilename(f)
		sum.Thumbnail = b.thumbs.DataURI(sum.Title)
		cards = append(cards, BuildCard(f, sum, true))
	}
	b.commit(TabSaved, gen, cards)
}

// commit installs cards unless a newer refresh of the tab has started.
func (b *Browser) commit(tab Tab, gen uint64, cards []Card) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen[tab] {
		b.logger.Debug("stale refresh dropped", "tab", tab.String(), "gen", gen)
		return
	}
	b.panels[tab].Cards = cards
}

// Load asks for confirmation and navigates to the workstation editor for
// the named workflow. Declining is a no-op.
func (b *Browser) Load(name string) {
	if !b.confirm.Confirm(ConfirmLoadMessage) {
		return
	}
	b.nav.Navigate(WorkstationPath + "?filename=" + url.QueryEscape(name))
}

// Delete asks for confirmation, deletes the named saved workflow and
// refreshes the saved list on success. A server-reported error is alerted
// verbatim without a refresh; a transport failure alerts a fixed message.
func (b *Browser) Delete(ctx context.Context, name string) {
	if !b.confirm.Confirm(ConfirmDeleteMessage) {
		return
	}

	err := b.api.DeleteWorkflow(ctx, name)
	if err == nil {
		b.LoadSaved(ctx)
		return
	}

	var remote *model.RemoteError
	if errors.As(err, &remote) {
		b.alerts.Alert(remote.Message)
		return
	}
	b.logger.Error("delete workflow failed", "name", name, "error", err)
	b.alerts.Alert(AlertDeleteFailed)
}
