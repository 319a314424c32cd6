package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/did-signin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedInModel_View(t *testing.T) {
	m := NewSignedInModel()
	m.Update(signedInMsg{state: models.SessionState{
		Link:      models.SessionLinkManaged,
		Connector: models.ConnectorManaged,
		Address:   testAddress,
		DID:       "did:example:123",
		Token:     &models.SessionToken{ExpiresAt: time.Now().Add(time.Hour)},
	}})

	view := m.View()
	assert.Contains(t, view, testAddress)
	assert.Contains(t, view, "0x5aAe…eAed")
	assert.Contains(t, view, "managed")
	assert.Contains(t, view, "did:example:123")
	assert.Contains(t, view, "valid until")
}

func TestSignedInModel_SignOut(t *testing.T) {
	m := NewSignedInModel()
	m.Update(signedInMsg{state: models.SessionState{Connector: models.ConnectorInjected, Address: testAddress}})

	_, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, signOutRequestMsg{}, cmd())
	assert.True(t, m.signingOut)

	// repeated presses while signing out are ignored
	_, cmd = m.Update(keyRunes("s"))
	assert.Nil(t, cmd)

	m.Update(signOutDoneMsg{err: errors.New("boom")})
	assert.False(t, m.signingOut)
}

func TestSignedInModel_CopyStatus(t *testing.T) {
	m := NewSignedInModel()

	m.Update(copiedMsg{})
	assert.Equal(t, "Copied!", m.status)

	m.Update(copiedMsg{err: errors.New("no clipboard")})
	assert.Contains(t, m.status, "no clipboard")

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}
