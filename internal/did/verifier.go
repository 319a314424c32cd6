package did

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/did-signin/internal/adapter"
	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/models"
)

// Verifier parses presentations through a DID resolver.
type Verifier struct {
	resolver adapter.DIDResolver
	logger   *logger.Logger
}

func NewVerifier(resolver adapter.DIDResolver, logger *logger.Logger) *Verifier {
	return &Verifier{resolver: resolver, logger: logger}
}

// ParseAndVerify re-serialises raw to canonical JSON, parses it again and
// checks it against the holder's published DID:
//   - the holder must be set ([ErrEmptyHolder], checked before resolution),
//   - the holder must resolve and not be deactivated,
//   - the presentation proof must be signed by a key of the holder,
//   - every credential subject must be the holder.
//
// The parsed presentation is returned alongside ErrEmptyHolder so callers
// can still log it.
func (v *Verifier) ParseAndVerify(ctx context.Context, raw json.RawMessage) (*Presentation, error) {
	first, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	canonical, err := first.Canonical()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPresentation, err)
	}
	p, err := Parse(canonical)
	if err != nil {
		return nil, err
	}

	if p.Holder == "" {
		return p, ErrEmptyHolder
	}

	resolved, err := v.resolver.Resolve(ctx, p.Holder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}
	switch resolved.Status {
	case models.DIDStatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrHolderNotFound, p.Holder)
	case models.DIDStatusDeactivated:
		return nil, fmt.Errorf("%w: %s", ErrHolderDeactivated, p.Holder)
	case models.DIDStatusExpired:
		v.logger.Warn().
			Str("func", "Verifier.ParseAndVerify").
			Str("holder", p.Holder).
			Msg("holder did document is expired")
	}

	if err = checkProof(p, resolved.Document); err != nil {
		return nil, err
	}
	if err = checkCredentials(p); err != nil {
		return nil, err
	}

	return p, nil
}

// checkProof binds the presentation proof to the holder and, when the
// document lists keys, to one of them.
func checkProof(p *Presentation, doc *models.DIDDocument) error {
	if p.Proof == nil || p.Proof.VerificationMethod == "" {
		return nil
	}

	method := p.Proof.VerificationMethod
	if base := BaseDID(method); base != "" && base != p.Holder {
		return fmt.Errorf("%w: %s signed by %s", ErrProofMismatch, p.Holder, base)
	}

	if doc == nil || len(doc.PublicKey) == 0 {
		return nil
	}
	fragment := Fragment(method)
	for _, key := range doc.PublicKey {
		if Fragment(key.ID) == fragment {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, method)
}

func checkCredentials(p *Presentation) error {
	for _, c := range p.VerifiableCredential {
		if subject := c.SubjectID(); subject != "" && subject != p.Holder {
			return fmt.Errorf("%w: %s", ErrForeignCredential, c.ID)
		}
	}
	return nil
}
