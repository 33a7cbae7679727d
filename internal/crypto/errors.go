package crypto

import "errors"

var (
	// ErrInvalidHash is returned by Compare for values that are not in the
	// $argon2id$v=..$m=..,t=..,p=..$salt$key format.
	ErrInvalidHash = errors.New("invalid encoded password hash")
	// ErrIncompatibleVersion is returned for hashes made by another argon2
	// version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
