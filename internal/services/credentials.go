package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker abstracts how passwords are stored and compared, so the
// storage scheme can change without touching the auth flow.
type CredentialChecker interface {
	// Store returns the representation of password to persist.
	Store(password string) (string, error)
	// Compare reports whether supplied matches the stored representation.
	Compare(stored, supplied string) error
}

// PlainChecker stores passwords verbatim and compares them byte-exact. This
// is the behavior of the original backend and the default here.
type PlainChecker struct{}

func (PlainChecker) Store(password string) (string, error) {
	return password, nil
}

func (PlainChecker) Compare(stored, supplied string) error {
	if stored != supplied {
		return errors.New("password mismatch")
	}
	return nil
}

// BcryptChecker stores bcrypt hashes instead of plain text. Swapping it in
// for PlainChecker changes nothing for callers of AuthService.
type BcryptChecker struct {
	Cost int
}

func (c BcryptChecker) Store(password string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (c BcryptChecker) Compare(stored, supplied string) error {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
}
