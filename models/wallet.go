package models

// InAppBrowserName is the environment name reported by the Essentials
// in-app browser.
const InAppBrowserName = "essentialsiab"

// Environment describes where the client runs. It is resolved once at start
// from configuration and decides which address source the managed flow uses.
type Environment struct {
	Name string
}

// InAppBrowser reports whether the client runs inside the Essentials in-app
// browser, where the wallet exposes its own provider.
func (e Environment) InAppBrowser() bool {
	return e.Name == InAppBrowserName
}

// ClaimRequest is one named claim asked from the wallet.
type ClaimRequest struct {
	ID       string `json:"id"`
	Reason   string `json:"reason"`
	Required bool   `json:"required"`
}

// SimpleIDClaim builds a [ClaimRequest] for a single credential id.
func SimpleIDClaim(reason, id string, required bool) ClaimRequest {
	return ClaimRequest{ID: id, Reason: reason, Required: required}
}

// PairingSession is a freshly created bridge session waiting for the wallet
// to approve it.
type PairingSession struct {
	Topic string `json:"topic"`
	URI   string `json:"uri"`
}

// BridgeSessionStatus is the bridge view of a session.
type BridgeSessionStatus struct {
	Topic     string   `json:"topic"`
	Connected bool     `json:"connected"`
	Accounts  []string `json:"accounts"`
}

// DIDStatus is the resolution status reported by the DID resolver.
type DIDStatus int

const (
	DIDStatusValid DIDStatus = iota
	DIDStatusExpired
	DIDStatusDeactivated
	DIDStatusNotFound
)

// DIDDocument is the subset of a resolved DID document the verifier needs.
type DIDDocument struct {
	ID        string         `json:"id"`
	PublicKey []DIDPublicKey `json:"publicKey"`
	Expires   string         `json:"expires,omitempty"`
}

// DIDPublicKey is a verification method listed in a DID document.
type DIDPublicKey struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Controller      string `json:"controller"`
	PublicKeyBase58 string `json:"publicKeyBase58"`
}

// ResolvedDID is the outcome of a DID resolution.
type ResolvedDID struct {
	DID      string
	Status   DIDStatus
	Document *DIDDocument
}
