// Package profile holds the hosted user profiles the functions host reads:
// the username used to sign in and the email it maps to.
package profile

import (
	"strings"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/shared/authorization"
)

type Profile struct {
	userID        string
	businessID    string
	username      string
	usernameLower string
	email         string
	role          authorization.Role
	createdAt     time.Time
}

// ReconstructProfile rebuilds a profile from persistence.
func ReconstructProfile(userID, businessID, username, email string, role authorization.Role, createdAt time.Time) *Profile {
	return &Profile{
		userID:        userID,
		businessID:    businessID,
		username:      username,
		usernameLower: NormalizeUsername(username),
		email:         email,
		role:          role,
		createdAt:     createdAt,
	}
}

func (p *Profile) UserID() string           { return p.userID }
func (p *Profile) BusinessID() string       { return p.businessID }
func (p *Profile) Username() string         { return p.username }
func (p *Profile) UsernameLower() string    { return p.usernameLower }
func (p *Profile) Email() string            { return p.email }
func (p *Profile) Role() authorization.Role { return p.role }
func (p *Profile) CreatedAt() time.Time     { return p.createdAt }

// HasEmail reports whether the profile can be used for sign in.
func (p *Profile) HasEmail() bool {
	return strings.TrimSpace(p.email) != ""
}

// NormalizeUsername is the lookup form of a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
