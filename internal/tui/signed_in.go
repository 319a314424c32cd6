package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/did-signin/internal/utils"
	"github.com/MKhiriev/did-signin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// signedInMsg hands the current session state to the signed-in page.
type signedInMsg struct {
	state models.SessionState
}

// SignedInModel shows the connected wallet and offers copy and sign-out.
type SignedInModel struct {
	state      models.SessionState
	status     string
	signingOut bool
}

func NewSignedInModel() *SignedInModel {
	return &SignedInModel{}
}

func (m *SignedInModel) Init() tea.Cmd {
	return nil
}

func (m *SignedInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		m.state = msg.state
		m.status = ""
		m.signingOut = false
		return m, nil
	case signOutDoneMsg:
		m.signingOut = false
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.signingOut {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.state.Address)
		case key.Matches(msg, keys.signOut):
			m.signingOut = true
			return m, func() tea.Msg { return signOutRequestMsg{} }
		}
	}
	return m, nil
}

func (m *SignedInModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Wallet     │ %s\n", valueOrDash(utils.ShortAddress(m.state.Address)))
	fmt.Fprintf(&b, "Address    │ %s\n", valueOrDash(m.state.Address))
	fmt.Fprintf(&b, "Connector  │ %s\n", m.state.Connector)
	if m.state.DID != "" {
		fmt.Fprintf(&b, "DID        │ %s\n", m.state.DID)
	}
	if m.state.Token != nil {
		fmt.Fprintf(&b, "Session    │ valid until %s\n", m.state.Token.ExpiresAt.Local().Format(time.DateTime))
	}

	if m.signingOut {
		b.WriteString("\n[Signing out...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("SIGNED IN", strings.TrimRight(b.String(), "\n"), "c: copy address │ s: sign out")
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
