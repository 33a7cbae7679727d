package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into self-describing argon2id
// hashes and checks login attempts against them. Implementations hold no
// per-user state and are safe for concurrent use.
type PasswordHasher interface {
	// Hash returns the encoded argon2id hash of password with a fresh
	// random salt. Two calls with the same password return different
	// strings.
	Hash(password string) (string, error)

	// Compare reports whether password matches encoded. A malformed encoded
	// value is an error; a wrong password is (false, nil).
	Compare(encoded, password string) (bool, error)
}
