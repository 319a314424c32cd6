package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skip2/go-qrcode"
)

// PairingModel is shown while the managed sign-in runs. It renders the
// pairing URI as a QR code once the bridge publishes one.
type PairingModel struct {
	spinner spinner.Model
	uri     string
	qr      string
	qrErr   string
}

func NewPairingModel() *PairingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &PairingModel{spinner: s}
}

// Init resets the page for a new flow.
func (m *PairingModel) Init() tea.Cmd {
	m.uri, m.qr, m.qrErr = "", "", ""
	return m.spinner.Tick
}

func (m *PairingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pairingURIMsg:
		m.setURI(msg.uri)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return cancelFlowMsg{} }
		}
	}
	return m, nil
}

func (m *PairingModel) setURI(uri string) {
	m.uri = uri
	m.qr, m.qrErr = "", ""

	qr, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		m.qrErr = err.Error()
		return
	}
	m.qr = qr.ToSmallString(false)
}

func (m *PairingModel) View() string {
	var b strings.Builder

	switch {
	case m.uri == "":
		b.WriteString(m.spinner.View())
		b.WriteString(" Connecting to the wallet...")
	default:
		b.WriteString("Scan with Essentials to connect:\n\n")
		if m.qr != "" {
			b.WriteString(qrStyle.Render(strings.TrimRight(m.qr, "\n")))
			b.WriteString("\n\n")
		} else {
			b.WriteString("QR code unavailable: ")
			b.WriteString(m.qrErr)
			b.WriteString("\n\n")
		}
		b.WriteString(m.uri)
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Waiting for approval...")
	}

	return renderPage("CONNECT WALLET", b.String(), "esc: cancel")
}
