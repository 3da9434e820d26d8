package connectivity

import "time"

// Patch is a partial update of State. Nil fields are left untouched. The
// nullable fields can be reset with ClearLastSyncAt and ClearLastError; a clear
// flag wins over a value set in the same patch.
type Patch struct {
	Online          *bool
	Status          *Status
	QueueCount      *uint
	LastSyncAt      *time.Time
	LastError       *string
	ClearLastSyncAt bool
	ClearLastError  bool
}

// IsEmpty reports whether applying p can never change a state.
func (p Patch) IsEmpty() bool {
	return p.Online == nil && p.Status == nil && p.QueueCount == nil &&
		p.LastSyncAt == nil && p.LastError == nil &&
		!p.ClearLastSyncAt && !p.ClearLastError
}

func (p Patch) apply(s State) State {
	out := s.clone()
	if p.Online != nil {
		out.Online = *p.Online
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.QueueCount != nil {
		out.QueueCount = *p.QueueCount
	}
	if p.LastSyncAt != nil {
		t := *p.LastSyncAt
		out.LastSyncAt = &t
	}
	if p.LastError != nil {
		e := *p.LastError
		out.LastError = &e
	}
	if p.ClearLastSyncAt {
		out.LastSyncAt = nil
	}
	if p.ClearLastError {
		out.LastError = nil
	}
	return out
}

// WithStatus returns a copy of p that also sets the status.
func (p Patch) WithStatus(s Status) Patch {
	p.Status = &s
	return p
}

// WithOnline returns a copy of p that also sets network reachability.
func (p Patch) WithOnline(online bool) Patch {
	p.Online = &online
	return p
}

// WithQueueCount returns a copy of p that also sets the queue count.
func (p Patch) WithQueueCount(n uint) Patch {
	p.QueueCount = &n
	return p
}

// WithLastSyncAt returns a copy of p that also sets the last sync time.
func (p Patch) WithLastSyncAt(t time.Time) Patch {
	p.LastSyncAt = &t
	return p
}

// WithLastError returns a copy of p that also sets the last error message.
func (p Patch) WithLastError(msg string) Patch {
	p.LastError = &msg
	return p
}
