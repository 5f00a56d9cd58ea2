package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("user name is required")

// User is read-only for the rental flows; Insert exists for seeding.
type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
}

func NewUser(name string, email Email) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

// ReconstructUser skips validation; stored rows are trusted as-is.
func ReconstructUser(id uuid.UUID, name, email string, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     Email{value: email},
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
