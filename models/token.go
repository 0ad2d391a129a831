package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// DefaultRole is the role marker embedded into every token issued by a
// successful login.
const DefaultRole = 4

// Claims is the payload carried by a bearer token.
//
// Registration tokens carry the identity plus the full registration payload
// (including the plain-text password, see DESIGN.md); login tokens carry the
// identity, name fields and [DefaultRole].
type Claims struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email,omitempty"`
	FName    string `json:"fname,omitempty"`
	LName    string `json:"lname,omitempty"`
	Password string `json:"password,omitempty"`
	Role     int    `json:"role,omitempty"`

	// RegisteredClaims provides the standard claim set (iss, iat, exp).
	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
