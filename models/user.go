package models

// SessionUserType is the only user type minted by the sign-in flow.
const SessionUserType = "user"

// SessionUser is the identity record derived from a verified presentation.
// It is the payload of the session token.
type SessionUser struct {
	// DecentralizedID is the holder DID of the presentation.
	DecentralizedID string `json:"decentralizedId"`

	// Type is always [SessionUserType].
	Type string `json:"type"`

	// Bio comes from the optional "description" credential.
	Bio string `json:"bio"`

	// Name comes from the optional "name" credential.
	Name string `json:"name"`

	// CanManageAdmins is always false for wallet sign-ins.
	CanManageAdmins bool `json:"canManageAdmins"`
}

// NewSessionUser builds a [SessionUser] for the given holder.
func NewSessionUser(did, name, bio string) SessionUser {
	return SessionUser{
		DecentralizedID: did,
		Type:            SessionUserType,
		Bio:             bio,
		Name:            name,
		CanManageAdmins: false,
	}
}
