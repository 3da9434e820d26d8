// Package session models signed-in devices of a user. Revoking a session
// signs that device out.
package session

import (
	"time"

	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/id"
)

type Session struct {
	id         string
	userID     string
	deviceName string
	ipAddress  string
	userAgent  string
	createdAt  time.Time
	lastSeenAt time.Time
	revokedAt  *time.Time
}

func NewSession(userID, deviceName, ipAddress, userAgent string) *Session {
	now := biztime.NowUTC()
	return &Session{
		id:         id.NewSessionID(),
		userID:     userID,
		deviceName: deviceName,
		ipAddress:  ipAddress,
		userAgent:  userAgent,
		createdAt:  now,
		lastSeenAt: now,
	}
}

// ReconstructSession rebuilds a session from persistence.
func ReconstructSession(sessionID, userID, deviceName, ipAddress, userAgent string, createdAt, lastSeenAt time.Time, revokedAt *time.Time) *Session {
	return &Session{
		id:         sessionID,
		userID:     userID,
		deviceName: deviceName,
		ipAddress:  ipAddress,
		userAgent:  userAgent,
		createdAt:  createdAt,
		lastSeenAt: lastSeenAt,
		revokedAt:  revokedAt,
	}
}

func (s *Session) ID() string            { return s.id }
func (s *Session) UserID() string        { return s.userID }
func (s *Session) DeviceName() string    { return s.deviceName }
func (s *Session) IPAddress() string     { return s.ipAddress }
func (s *Session) UserAgent() string     { return s.userAgent }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
func (s *Session) LastSeenAt() time.Time { return s.lastSeenAt }
func (s *Session) RevokedAt() *time.Time { return s.revokedAt }

func (s *Session) IsActive() bool {
	return s.revokedAt == nil
}

// Revoke marks the session signed out. Revoking twice keeps the first time.
func (s *Session) Revoke() {
	if s.revokedAt != nil {
		return
	}
	now := biztime.NowUTC()
	s.revokedAt = &now
}
