//go:build unit || e2e

package builder

import (
	"time"

	"book-rental-tracker/internal/domain/user"
	"book-rental-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Alice Reader",
		Email: "alice@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email)
}

// BuildStored mimics a row loaded from storage, keeping the builder's ID.
func (u *UserBuilder) BuildStored(createdAt time.Time) *user.User {
	return user.ReconstructUser(u.ID, u.Name, u.Email, createdAt)
}

func (u *UserBuilder) BuildContactView() queries.UserContactView {
	return queries.UserContactView{
		Name:  u.Name,
		Email: u.Email,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}
