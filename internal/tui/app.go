package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/did-signin/internal/service"
	"github.com/MKhiriev/did-signin/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global quit, build info and error overlay
// 3) runs the session flows and routes their results
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx           context.Context
	sessions      service.SessionService
	watch         service.SessionWatchJob
	watchInterval time.Duration

	pages   map[string]tea.Model
	current tea.Model

	// cancelFlow is set while a sign-in flow runs
	cancelFlow context.CancelFunc

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

// NewRootModel registers the pages and opens the page matching the current
// session state.
func NewRootModel(
	ctx context.Context,
	sessions service.SessionService,
	watch service.SessionWatchJob,
	watchInterval time.Duration,
	buildInfo models.AppBuildInfo,
) RootModel {
	r := RootModel{
		ctx:           ctx,
		sessions:      sessions,
		watch:         watch,
		watchInterval: watchInterval,
		pages: map[string]tea.Model{
			pageSignedOut: NewMenuModel(),
			pagePairing:   NewPairingModel(),
			pageSignedIn:  NewSignedInModel(),
		},
		buildInfo: buildInfo,
	}
	r.current = r.pages[pageSignedOut]
	return r
}

func (r RootModel) Init() tea.Cmd {
	state := r.sessions.State()
	if state.Connector == models.ConnectorNone {
		return r.current.Init()
	}

	return func() tea.Msg {
		return NavigateTo{Page: pageSignedIn, Payload: signInDoneMsg{
			result: models.SignInResult{Connector: state.Connector, Address: state.Address},
		}}
	}
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			if r.cancelFlow != nil {
				r.cancelFlow()
				r.cancelFlow = nil
			}
			return r, tea.Quit
		case r.showError:
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.showError = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.current = next
		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()

	case signInRequestMsg:
		return r.startSignIn(msg)

	case cancelFlowMsg:
		if r.cancelFlow != nil {
			r.cancelFlow()
		}
		return r, nil

	case signInDoneMsg:
		return r.finishSignIn(msg)

	case signOutRequestMsg:
		return r, r.cmdSignOut()

	case signOutDoneMsg:
		if msg.err != nil {
			r.showErrorf(humanizeError(msg.err))
			return r.delegate(msg)
		}
		return r, navigate(pageSignedOut, noticeMsg{text: "Signed out"})

	case sessionDroppedMsg:
		return r, tea.Batch(r.cmdStopWatch(), navigate(pageSignedOut, noticeMsg{text: "The wallet ended the session"}))

	case pairingURIMsg:
		// the URI may arrive before the pairing page is active
		page := r.pages[pagePairing]
		updated, cmd := page.Update(msg)
		r.pages[pagePairing] = updated
		return r, cmd
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.showError {
		return r.errorOverlay.View()
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("did-signin", "", "")
	}
	return r.current.View()
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) startSignIn(msg signInRequestMsg) (tea.Model, tea.Cmd) {
	if r.cancelFlow != nil {
		return r, nil
	}

	ctx, cancel := context.WithCancel(r.ctx)
	r.cancelFlow = cancel
	sessions := r.sessions

	if msg.connector == models.ConnectorManaged {
		run := func() tea.Msg {
			res, err := sessions.SignInManaged(ctx)
			return signInDoneMsg{result: res, err: err}
		}
		// switch synchronously so an early pairing URI is not reset by Init
		r.showBuildInfo = false
		r.current = r.pages[pagePairing]
		return r, tea.Batch(r.current.Init(), run)
	}

	run := func() tea.Msg {
		res, err := sessions.SignInInjected(ctx)
		return signInDoneMsg{result: res, err: err}
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, tea.Batch(cmd, run)
}

func (r RootModel) finishSignIn(msg signInDoneMsg) (tea.Model, tea.Cmd) {
	if r.cancelFlow != nil {
		r.cancelFlow()
		r.cancelFlow = nil
	}

	switch {
	case msg.err == nil:
		var cmds []tea.Cmd
		if msg.result.Connector == models.ConnectorManaged {
			cmds = append(cmds, r.cmdStartWatch())
		}
		r.current = r.pages[pageSignedIn]
		updated, cmd := r.current.Update(signedInMsg{state: r.sessions.State()})
		r.current = updated
		return r, tea.Batch(append(cmds, cmd)...)

	case errors.Is(msg.err, context.Canceled):
		return r, navigate(pageSignedOut, noticeMsg{text: "Sign-in cancelled"})

	case isNotice(msg.err):
		return r, navigate(pageSignedOut, noticeMsg{text: humanizeError(msg.err)})
	}

	r.showErrorf(humanizeError(msg.err))
	return r, navigate(pageSignedOut, noticeMsg{})
}

func (r RootModel) cmdSignOut() tea.Cmd {
	ctx := r.ctx
	sessions := r.sessions
	watch := r.watch
	return func() tea.Msg {
		watch.Stop()
		return signOutDoneMsg{err: sessions.SignOut(ctx)}
	}
}

func (r RootModel) cmdStartWatch() tea.Cmd {
	ctx := r.ctx
	watch := r.watch
	interval := r.watchInterval
	return func() tea.Msg {
		watch.Start(ctx, interval)
		return nil
	}
}

// cmdStopWatch stops the job off the event loop; the job may be the sender
// of the message being handled.
func (r RootModel) cmdStopWatch() tea.Cmd {
	watch := r.watch
	return func() tea.Msg {
		watch.Stop()
		return nil
	}
}

func (r *RootModel) showErrorf(message string) {
	r.showError = true
	r.errorOverlay = errorOverlayModel{message: message}
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: payload}
	}
}
