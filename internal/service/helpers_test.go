package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/did-signin/internal/config"
	"github.com/MKhiriev/did-signin/internal/did"
	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/mock"
	"github.com/MKhiriev/did-signin/internal/store"
	"github.com/MKhiriev/did-signin/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	// lower-case form of the EIP-55 reference address
	walletAccount   = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	walletChecksum  = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	holderDID       = "did:example:123"
	testSignKey     = "test-sign-key"
	testTokenIssuer = "did-signin-test"
)

const alicePresentation = `{
	"holder": "did:example:123",
	"verifiableCredential": [
		{"id": "did:example:123#name", "credentialSubject": {"id": "did:example:123", "name": "Alice"}}
	],
	"proof": {"verificationMethod": "did:example:123#primary"}
}`

// fixture bundles the mocks shared by the service tests.
type fixture struct {
	ctrl            *gomock.Controller
	managed         *mock.MockManagedConnector
	managedProvider *mock.MockWalletProvider
	injected        *mock.MockInjectedConnector
	inApp           *mock.MockWalletProvider
	verifier        *mock.MockPresentationVerifier
	tokens          TokenService
	storage         store.SessionStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:            ctrl,
		managed:         mock.NewMockManagedConnector(ctrl),
		managedProvider: mock.NewMockWalletProvider(ctrl),
		injected:        mock.NewMockInjectedConnector(ctrl),
		inApp:           mock.NewMockWalletProvider(ctrl),
		verifier:        mock.NewMockPresentationVerifier(ctrl),
		tokens: NewTokenService(config.ClientApp{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testTokenIssuer,
			TokenDuration: 7 * 24 * time.Hour,
		}),
		storage: store.NewMemorySessionStorage(),
	}
	f.managed.EXPECT().Provider().Return(f.managedProvider).AnyTimes()
	return f
}

func (f *fixture) wallets(env models.Environment) Wallets {
	return Wallets{
		Managed:  f.managed,
		Injected: f.injected,
		InApp:    f.inApp,
		Env:      env,
	}
}

func testTimeouts() WalletTimeouts {
	return WalletTimeouts{Request: time.Second, Pairing: time.Second}
}

func (f *fixture) handshake(env models.Environment) *handshakeService {
	return NewHandshakeService(f.wallets(env), f.verifier, f.tokens, f.storage, testTimeouts(), logger.Nop()).(*handshakeService)
}

func (f *fixture) session(env models.Environment) *sessionService {
	return NewSessionService(f.wallets(env), f.handshake(env), f.storage, testTimeouts(), logger.Nop()).(*sessionService)
}

func (f *fixture) mustGet(t *testing.T, key string) (string, bool) {
	t.Helper()
	v, ok, err := f.storage.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

func (f *fixture) mustSet(t *testing.T, key, value string) {
	t.Helper()
	require.NoError(t, f.storage.Set(context.Background(), key, value))
}

func parsedAlice(t *testing.T) *did.Presentation {
	t.Helper()
	p, err := did.Parse([]byte(alicePresentation))
	require.NoError(t, err)
	return p
}

func desktop() models.Environment { return models.Environment{Name: "desktop"} }

func inAppBrowser() models.Environment { return models.Environment{Name: models.InAppBrowserName} }
