package connectivity

import (
	"context"
	"errors"
	"sync"

	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/observer"
)

// PreferenceStorage is the durable home of the connectivity preference.
// Load returns ErrPreferenceNotFound for a missing key.
type PreferenceStorage interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key string, value string) error
}

// ModeStore holds the user's connectivity preference.
//
// Listeners run synchronously on the goroutine calling SetMode, in
// registration order, after the store has released its state lock. A
// panicking listener is not isolated: the panic reaches the SetMode caller.
//
// Writes are serialized end to end, so the persisted value and the last
// notification always match the in-memory mode. Listeners must not call
// SetMode.
type ModeStore struct {
	writeMu   sync.Mutex
	mu        sync.Mutex
	mode      Mode
	storage   PreferenceStorage
	key       string
	observers observer.Registry[Mode]
	logger    logger.Interface
}

// NewModeStore resolves the initial preference from storage. A missing,
// corrupted or unreadable value yields ModeOnline. storage may be nil, in which
// case the store is memory-only.
func NewModeStore(ctx context.Context, storage PreferenceStorage, key string, log logger.Interface) *ModeStore {
	s := &ModeStore{
		mode:    ModeOnline,
		storage: storage,
		key:     key,
		logger:  log,
	}

	if storage == nil {
		return s
	}

	raw, err := storage.Load(ctx, key)
	switch {
	case err == nil:
		s.mode = modeFromStored(raw)
		if s.mode.String() != raw {
			log.Warnw("ignoring invalid stored connectivity preference", "key", key)
		}
	case errors.Is(err, ErrPreferenceNotFound):
	default:
		log.Warnw("failed to read connectivity preference, defaulting to online",
			"key", key,
			"error", err,
		)
	}

	return s
}

func (s *ModeStore) State() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode changes the preference. Setting the current mode is a no-op and
// notifies nobody. Persistence is best effort: a storage failure is logged and
// the new mode still applies in memory.
func (s *ModeStore) SetMode(ctx context.Context, mode Mode) error {
	if !mode.IsValid() {
		return ErrInvalidMode
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return nil
	}
	s.mode = mode
	listeners := s.observers.Snapshot()
	s.mu.Unlock()

	s.persist(ctx, mode)

	s.logger.Infow("connectivity preference changed", "mode", mode)

	for _, fn := range listeners {
		fn(mode)
	}
	return nil
}

func (s *ModeStore) persist(ctx context.Context, mode Mode) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(ctx, s.key, mode.String()); err != nil {
		s.logger.Debugw("failed to persist connectivity preference, keeping it in memory",
			"key", s.key,
			"mode", mode,
			"error", err,
		)
	}
}

// Subscribe registers fn and calls it once with the current mode before
// returning. The returned function removes fn; calling it more than once is
// harmless.
func (s *ModeStore) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.observers.Add(fn)
	current := s.mode
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.observers.Remove(id)
			s.mu.Unlock()
		})
	}
}
