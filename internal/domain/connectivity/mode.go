// Package connectivity holds the two observable stores that describe whether the
// agent is online: the user's offline preference (ModeStore) and the derived
// runtime connectivity/sync status (Store).
//
// Both stores live for the whole process. They are constructed once by the
// composition root and never torn down.
package connectivity

import "fmt"

// Mode is the user's connectivity preference. ModeOffline forces offline
// behaviour regardless of actual network reachability.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

func (m Mode) IsValid() bool {
	return m == ModeOnline || m == ModeOffline
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode validates user input. Persisted values go through modeFromStored
// instead, which never fails.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q, must be 'online' or 'offline'", ErrInvalidMode, s)
	}
	return m, nil
}

// modeFromStored accepts exactly "online" or "offline"; anything else,
// including case variants and whitespace, falls back to online.
func modeFromStored(raw string) Mode {
	if m := Mode(raw); m.IsValid() {
		return m
	}
	return ModeOnline
}
