package did

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	result models.ResolvedDID
	err    error
	calls  []string
}

func (f *fakeResolver) Resolve(_ context.Context, did string) (models.ResolvedDID, error) {
	f.calls = append(f.calls, did)
	return f.result, f.err
}

func validAlice() models.ResolvedDID {
	return models.ResolvedDID{
		DID:    "did:example:123",
		Status: models.DIDStatusValid,
		Document: &models.DIDDocument{
			ID: "did:example:123",
			PublicKey: []models.DIDPublicKey{
				{ID: "#primary", Type: "ECDSAsecp256r1", Controller: "did:example:123"},
			},
		},
	}
}

func TestVerifier_ParseAndVerify_Success(t *testing.T) {
	resolver := &fakeResolver{result: validAlice()}
	v := NewVerifier(resolver, logger.Nop())

	p, err := v.ParseAndVerify(context.Background(), json.RawMessage(alicePresentation))
	require.NoError(t, err)

	assert.Equal(t, "did:example:123", p.Holder)
	assert.Equal(t, "Alice", p.SubjectProperty("name", "name"))
	assert.Equal(t, []string{"did:example:123"}, resolver.calls)
}

func TestVerifier_ParseAndVerify_ExpiredAccepted(t *testing.T) {
	resolved := validAlice()
	resolved.Status = models.DIDStatusExpired
	v := NewVerifier(&fakeResolver{result: resolved}, logger.Nop())

	p, err := v.ParseAndVerify(context.Background(), json.RawMessage(alicePresentation))
	require.NoError(t, err)
	assert.Equal(t, "did:example:123", p.Holder)
}

func TestVerifier_ParseAndVerify_EmptyHolder(t *testing.T) {
	resolver := &fakeResolver{result: validAlice()}
	v := NewVerifier(resolver, logger.Nop())

	p, err := v.ParseAndVerify(context.Background(), json.RawMessage(`{"holder":"","verifiableCredential":[]}`))
	assert.ErrorIs(t, err, ErrEmptyHolder)
	require.NotNil(t, p)
	assert.Empty(t, resolver.calls, "empty holder must not be resolved")
}

func TestVerifier_ParseAndVerify_Errors(t *testing.T) {
	otherSigner := `{"holder":"did:example:123","proof":{"verificationMethod":"did:example:999#primary"}}`
	unknownKey := `{"holder":"did:example:123","proof":{"verificationMethod":"did:example:123#backup"}}`
	foreignSubject := `{"holder":"did:example:123","verifiableCredential":[{"id":"#name","credentialSubject":{"id":"did:example:999","name":"Mallory"}}]}`

	withStatus := func(status models.DIDStatus) models.ResolvedDID {
		r := validAlice()
		r.Status = status
		return r
	}

	tests := []struct {
		name     string
		raw      string
		resolved models.ResolvedDID
		resErr   error
		wantErr  error
	}{
		{"malformed", `{"holder":`, validAlice(), nil, ErrMalformedPresentation},
		{"resolver failure", alicePresentation, models.ResolvedDID{}, errors.New("boom"), ErrResolve},
		{"not published", alicePresentation, withStatus(models.DIDStatusNotFound), nil, ErrHolderNotFound},
		{"deactivated", alicePresentation, withStatus(models.DIDStatusDeactivated), nil, ErrHolderDeactivated},
		{"proof by another did", otherSigner, validAlice(), nil, ErrProofMismatch},
		{"proof key not listed", unknownKey, validAlice(), nil, ErrUnknownKey},
		{"foreign credential", foreignSubject, validAlice(), nil, ErrForeignCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVerifier(&fakeResolver{result: tt.resolved, err: tt.resErr}, logger.Nop())

			p, err := v.ParseAndVerify(context.Background(), json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestVerifier_ParseAndVerify_NoKeysListed(t *testing.T) {
	resolved := validAlice()
	resolved.Document.PublicKey = nil
	v := NewVerifier(&fakeResolver{result: resolved}, logger.Nop())

	_, err := v.ParseAndVerify(context.Background(), json.RawMessage(alicePresentation))
	assert.NoError(t, err)
}
