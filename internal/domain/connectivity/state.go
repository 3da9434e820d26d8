package connectivity

import "time"

// Status is the derived connectivity/sync status shown to the cashier.
type Status string

const (
	StatusOnlineSynced  Status = "online_synced"
	StatusOffline       Status = "offline"
	StatusOfflineForced Status = "offline_forced"
	StatusSyncing       Status = "syncing"
	StatusSyncFailed    Status = "sync_failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOnlineSynced, StatusOffline, StatusOfflineForced, StatusSyncing, StatusSyncFailed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// State is a snapshot of the runtime connectivity. Values handed out by Store
// are copies; mutating them has no effect on the store.
type State struct {
	Online     bool       `json:"online"`
	Status     Status     `json:"status"`
	QueueCount uint       `json:"queue_count"`
	LastSyncAt *time.Time `json:"last_sync_at"`
	LastError  *string    `json:"last_error"`
}

// DeriveStatus maps the preference and network reachability to the status a
// freshly started or re-enabled agent should show. Once forced offline,
// reachability is irrelevant.
func DeriveStatus(networkReachable bool, mode Mode) Status {
	if mode == ModeOffline {
		return StatusOfflineForced
	}
	if !networkReachable {
		return StatusOffline
	}
	return StatusOnlineSynced
}

// InitialState builds the state the agent starts with.
func InitialState(networkReachable bool, mode Mode) State {
	return State{
		Online: networkReachable,
		Status: DeriveStatus(networkReachable, mode),
	}
}

// Equal compares field by field. Times are compared as instants.
func (s State) Equal(other State) bool {
	if s.Online != other.Online || s.Status != other.Status || s.QueueCount != other.QueueCount {
		return false
	}
	if !equalTime(s.LastSyncAt, other.LastSyncAt) {
		return false
	}
	return equalString(s.LastError, other.LastError)
}

func (s State) clone() State {
	out := s
	if s.LastSyncAt != nil {
		t := *s.LastSyncAt
		out.LastSyncAt = &t
	}
	if s.LastError != nil {
		e := *s.LastError
		out.LastError = &e
	}
	return out
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
