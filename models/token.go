package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or parsed access token. The "sub" claim carries the
// user id, which parsing copies into UserID.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}

// String returns the compact signed form sent in the Authorization header.
func (t *Token) String() string {
	return t.SignedString
}
