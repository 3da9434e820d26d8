package connectivity

import (
	"context"
	"sync/atomic"
)

// ReachabilityProbe answers whether the hosted backend can be reached right now.
type ReachabilityProbe interface {
	Reachable(ctx context.Context) bool
}

// Bind keeps the derived status consistent with the preference. Switching to
// offline forces offline_forced; switching back to online re-probes the network
// and derives online_synced or offline. The immediate call Subscribe makes on
// registration is skipped because the store was already initialised from the
// same mode.
func Bind(ctx context.Context, modes *ModeStore, store *Store, probe ReachabilityProbe) (unbind func()) {
	var primed atomic.Bool
	return modes.Subscribe(func(mode Mode) {
		if primed.CompareAndSwap(false, true) {
			return
		}
		if mode == ModeOffline {
			store.SetState(Patch{}.WithStatus(StatusOfflineForced))
			return
		}
		store.ApplyReachability(mode, probe.Reachable(ctx))
	})
}
