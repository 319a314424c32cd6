// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package did

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Presentation is a W3C-style verifiable presentation.
type Presentation struct {
	Context              []string     `json:"@context,omitempty"`
	ID                   string       `json:"id,omitempty"`
	Type                 StringList   `json:"type,omitempty"`
	Holder               string       `json:"holder"`
	Created              string       `json:"created,omitempty"`
	VerifiableCredential []Credential `json:"verifiableCredential"`
	Proof                *Proof       `json:"proof,omitempty"`
}

// Credential is a verifiable credential embedded in a presentation.
type Credential struct {
	ID                string         `json:"id"`
	Type              StringList     `json:"type,omitempty"`
	Issuer            string         `json:"issuer,omitempty"`
	IssuanceDate      string         `json:"issuanceDate,omitempty"`
	ExpirationDate    string         `json:"expirationDate,omitempty"`
	CredentialSubject map[string]any `json:"credentialSubject"`
	Proof             *Proof         `json:"proof,omitempty"`
}

// Proof is the linked-data proof of a presentation or credential.
type Proof struct {
	Type               string `json:"type,omitempty"`
	Created            string `json:"created,omitempty"`
	VerificationMethod string `json:"verificationMethod,omitempty"`
	Realm              string `json:"realm,omitempty"`
	Nonce              string `json:"nonce,omitempty"`
	Signature          string `json:"signature,omitempty"`
}

// StringList decodes from either a JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("expected string or string array: %w", err)
	}
	*l = many
	return nil
}

// Parse decodes raw into a presentation.
func Parse(raw []byte) (*Presentation, error) {
	var p Presentation
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPresentation, err)
	}
	return &p, nil
}

// Canonical returns the presentation re-encoded as compact JSON with a fixed
// field order.
func (p *Presentation) Canonical() ([]byte, error) {
	return json.Marshal(p)
}

// GetCredential returns the credential whose id fragment equals name, so
// "name" matches both "did:example:123#name" and "#name".
func (p *Presentation) GetCredential(name string) *Credential {
	for i := range p.VerifiableCredential {
		if Fragment(p.VerifiableCredential[i].ID) == name {
			return &p.VerifiableCredential[i]
		}
	}
	return nil
}

// SubjectProperty returns property of the subject of the named credential,
// or "" when either is missing or the property is not a string.
func (p *Presentation) SubjectProperty(credential, property string) string {
	c := p.GetCredential(credential)
	if c == nil {
		return ""
	}
	value, _ := c.Property(property)
	return value
}

// Property returns a string property of the credential subject.
func (c *Credential) Property(name string) (string, bool) {
	value, ok := c.CredentialSubject[name].(string)
	return value, ok
}

// SubjectID returns the credential subject id.
func (c *Credential) SubjectID() string {
	id, _ := c.Property("id")
	return id
}

// Fragment returns the part of a DID URL after '#', or "" if there is none.
func Fragment(didURL string) string {
	_, fragment, found := strings.Cut(didURL, "#")
	if !found {
		return ""
	}
	return fragment
}

// BaseDID strips the fragment from a DID URL.
func BaseDID(didURL string) string {
	base, _, _ := strings.Cut(didURL, "#")
	return base
}
