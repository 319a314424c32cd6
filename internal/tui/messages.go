package tui

import (
	"github.com/MKhiriev/did-signin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in the router.
const (
	pageSignedOut = "signed_out"
	pagePairing   = "pairing"
	pageSignedIn  = "signed_in"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// signInRequestMsg asks the router to start a sign-in flow.
type signInRequestMsg struct {
	connector models.ConnectorKind
}

type signInDoneMsg struct {
	result models.SignInResult
	err    error
}

type signOutRequestMsg struct{}

type signOutDoneMsg struct {
	err error
}

// cancelFlowMsg aborts the running sign-in flow.
type cancelFlowMsg struct{}

// pairingURIMsg carries a pairing URI published by the managed connector.
type pairingURIMsg struct {
	uri string
}

// sessionDroppedMsg is sent when the wallet ended the managed session.
type sessionDroppedMsg struct{}

// noticeMsg shows a neutral status line on the signed-out page.
type noticeMsg struct {
	text string
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
