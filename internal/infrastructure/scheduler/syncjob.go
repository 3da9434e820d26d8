package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/ledgerpos/ledgerpos/internal/application/offlinesync"
	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/shared/goroutine"
)

type SyncRunner interface {
	Run(ctx context.Context) error
}

type PlanRefresher interface {
	Refresh(ctx context.Context) (*plan.Access, error)
}

// SyncJob wires the periodic sync to the connectivity state.
type SyncJob struct {
	Runner   SyncRunner
	Modes    *connectivity.ModeStore
	Store    *connectivity.Store
	Probe    connectivity.ReachabilityProbe
	Interval time.Duration
}

// RegisterSyncJob ticks at job.Interval. A tick records the probe result in
// the store, then starts a sync on its own goroutine unless the preference is
// offline or the backend is unreachable.
func (m *SchedulerManager) RegisterSyncJob(job SyncJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(job.Interval),
		gocron.NewTask(func() {
			m.syncTick(context.Background(), job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("sync"),
		gocron.WithName("offline-sync"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("sync job registered", "interval", job.Interval)
	return nil
}

// syncTick returns whether a sync was started.
func (m *SchedulerManager) syncTick(ctx context.Context, job SyncJob) bool {
	mode := job.Modes.State()
	if mode == connectivity.ModeOffline {
		m.logger.Debugw("sync tick skipped, offline mode is on")
		return false
	}

	reachable := job.Probe.Reachable(ctx)
	job.Store.ApplyReachability(mode, reachable)
	if !reachable {
		m.logger.Debugw("sync tick skipped, backend unreachable")
		return false
	}

	runCtx := context.WithoutCancel(ctx)
	goroutine.SafeGo(m.logger, "offline-sync", func() {
		if err := job.Runner.Run(runCtx); err != nil {
			if errors.Is(err, offlinesync.ErrSyncInProgress) || errors.Is(err, offlinesync.ErrForcedOffline) {
				m.logger.Debugw("scheduled sync not started", "reason", err)
				return
			}
			m.logger.Warnw("scheduled sync failed", "error", err)
		}
	})
	return true
}

// RegisterPlanRefreshJob refreshes plan access at interval, starting now.
func (m *SchedulerManager) RegisterPlanRefreshJob(refresher PlanRefresher, probe connectivity.ReachabilityProbe, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			m.refreshPlan(ctx, refresher, probe)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("plan"),
		gocron.WithName("plan-refresh"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("plan refresh job registered", "interval", interval)
	return nil
}

func (m *SchedulerManager) refreshPlan(ctx context.Context, refresher PlanRefresher, probe connectivity.ReachabilityProbe) {
	if !probe.Reachable(ctx) {
		m.logger.Debugw("plan refresh skipped, backend unreachable")
		return
	}
	if _, err := refresher.Refresh(ctx); err != nil {
		m.logger.Warnw("plan refresh failed", "error", err)
	}
}
