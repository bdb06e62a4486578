package domain

import "github.com/alexedwards/argon2id"

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}

// OWASP minimum for argon2id: 19 MiB, 2 iterations, 1 lane.
var accountHashParams = &argon2id.Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonPasswordHasher struct {
	params *argon2id.Params
}

func NewArgonPasswordHasher() *ArgonPasswordHasher {
	return &ArgonPasswordHasher{
		params: accountHashParams,
	}
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, ph.params)
}

func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hashedPassword)
}
