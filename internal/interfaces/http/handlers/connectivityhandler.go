package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/offlinesync"
	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/pubsub"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

const sseKeepAliveInterval = 30 * time.Second

type eventSource interface {
	Subscribe(buffer int) (<-chan pubsub.Event, func())
}

type ConnectivityHandler struct {
	modes   modeStore
	status  statusStore
	engine  syncRunner
	probe   reachabilityProbe
	upgrade interface{ State() upgrade.State }
	events  eventSource
	logger  logger.Interface
}

func NewConnectivityHandler(
	modes modeStore,
	status statusStore,
	engine syncRunner,
	probe reachabilityProbe,
	upgrade interface{ State() upgrade.State },
	events eventSource,
	logger logger.Interface,
) *ConnectivityHandler {
	return &ConnectivityHandler{
		modes:   modes,
		status:  status,
		engine:  engine,
		probe:   probe,
		upgrade: upgrade,
		events:  events,
		logger:  logger,
	}
}

type ModeResponse struct {
	Mode connectivity.Mode `json:"mode"`
}

type SetModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (h *ConnectivityHandler) GetMode(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", ModeResponse{Mode: h.modes.State()})
}

func (h *ConnectivityHandler) SetMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set mode", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("mode is required"))
		return
	}

	mode, err := connectivity.ParseMode(req.Mode)
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := h.modes.SetMode(c.Request.Context(), mode); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "connectivity mode updated", ModeResponse{Mode: h.modes.State()})
}

func (h *ConnectivityHandler) GetStatus(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.status.State())
}

// Sync runs a manual sync. The network is probed first so a reconnect is
// noticed without waiting for the next scheduled tick.
func (h *ConnectivityHandler) Sync(c *gin.Context) {
	ctx := c.Request.Context()
	mode := h.modes.State()
	if mode == connectivity.ModeOffline {
		utils.ErrorResponseWithError(c, apperrors.NewUnavailableError("offline mode is on; switch to online to sync"))
		return
	}

	reachable := h.probe.Reachable(ctx)
	h.status.ApplyReachability(mode, reachable)
	if !reachable {
		utils.ErrorResponseWithError(c, apperrors.NewUnavailableError("backend is unreachable"))
		return
	}

	err := h.engine.Run(ctx)
	switch {
	case err == nil:
		utils.SuccessResponse(c, http.StatusOK, "sync completed", h.status.State())
	case errors.Is(err, offlinesync.ErrSyncInProgress):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError("a sync is already in progress"))
	case errors.Is(err, offlinesync.ErrForcedOffline):
		utils.ErrorResponseWithError(c, apperrors.NewUnavailableError("offline mode is on; switch to online to sync"))
	default:
		h.logger.Warnw("manual sync failed", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewUnavailableError("sync failed", err.Error()))
	}
}

// Events streams mode, status and upgrade prompt changes. The stream opens
// with one snapshot event of each kind.
func (h *ConnectivityHandler) Events(c *gin.Context) {
	ch, cancel := h.events.Subscribe(0)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent(string(pubsub.EventMode), ModeResponse{Mode: h.modes.State()})
	c.SSEvent(string(pubsub.EventStatus), h.status.State())
	c.SSEvent(string(pubsub.EventUpgrade), h.upgrade.State())
	c.Writer.Flush()

	keepAlive := time.NewTicker(sseKeepAliveInterval)
	defer keepAlive.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debugw("event stream closed by client")
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent(string(ev.Type), ev.Data)
			c.Writer.Flush()
		case <-keepAlive.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.logger.Warnw("event stream keepalive failed", "error", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
