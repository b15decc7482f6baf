package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// emailPattern is intentionally loose: something, an @, something, a dot,
// something. Anything stricter rejects real addresses.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const MinPasswordLength = 6

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnerSummary is the slice of a user embedded in vehicle responses so a
// shared viewer can tell who shared the vehicle with them.
type OwnerSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (u *User) Summary() OwnerSummary {
	return OwnerSummary{ID: u.ID, Email: u.Email}
}

// NormalizeEmail lowercases and trims an address. All lookups and
// uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: o e-mail é obrigatório", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: use um formato de e-mail válido", ErrValidation)
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: a senha é obrigatória", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: a senha deve ter no mínimo %d caracteres", ErrValidation, MinPasswordLength)
	}
	return nil
}
