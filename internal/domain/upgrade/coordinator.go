package upgrade

import (
	"context"
	"sync"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/observer"
)

// Navigator moves the cashier's UI to another screen.
type Navigator interface {
	Navigate(ctx context.Context, destination string) error
}

// MessageRenderer turns a prompt message into safe HTML.
type MessageRenderer interface {
	RenderHTML(source string) (string, error)
}

// Coordinator is the one upgrade prompt of the process. Gates never own a
// prompt of their own; they all call Open here.
type Coordinator struct {
	mu          sync.Mutex
	state       State
	destination string
	navigator   Navigator
	renderer    MessageRenderer
	observers   observer.Registry[State]
	logger      logger.Interface
}

type Option func(*Coordinator)

func WithRenderer(r MessageRenderer) Option {
	return func(c *Coordinator) { c.renderer = r }
}

// NewCoordinator builds a closed coordinator. destination is where
// UpgradeNow sends the user.
func NewCoordinator(navigator Navigator, destination string, log logger.Interface, opts ...Option) *Coordinator {
	c := &Coordinator{
		state:       State{Reason: ReasonFeature, Highlights: []string{}},
		destination: destination,
		navigator:   navigator,
		logger:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Coordinator) Destination() string {
	return c.destination
}

// Open shows the prompt. Every content field is recomputed from args, so
// nothing from a previous prompt leaks into this one.
func (c *Coordinator) Open(args OpenArgs) State {
	next := c.resolve(args)

	c.mu.Lock()
	c.state = next
	listeners := c.observers.Snapshot()
	c.mu.Unlock()

	c.logger.Debugw("upgrade prompt opened",
		"reason", next.Reason,
		"feature", next.FeatureKey,
		"required_plan", next.RequiredPlan,
	)

	c.notify(listeners, next)
	return next.clone()
}

func (c *Coordinator) resolve(args OpenArgs) State {
	reason := args.Reason
	if !reason.IsValid() {
		reason = ReasonFeature
	}

	required := args.RequiredPlan
	if !required.IsValid() {
		required = ""
		if n, ok := plan.RequiredPlanFor(args.FeatureKey); ok {
			required = n
		}
	}

	s := State{
		Open:         true,
		Reason:       reason,
		FeatureKey:   args.FeatureKey,
		RequiredPlan: required,
		Title:        args.Title,
		Message:      args.Message,
		Highlights:   append([]string(nil), args.Highlights...),
	}
	if s.Title == "" {
		s.Title = defaultTitle(reason, required)
	}
	if s.Message == "" {
		s.Message = defaultMessage(reason, args.FeatureKey, required)
	}
	if len(s.Highlights) == 0 {
		s.Highlights = DefaultHighlights(required)
	}

	if c.renderer != nil {
		html, err := c.renderer.RenderHTML(s.Message)
		if err != nil {
			c.logger.Warnw("failed to render upgrade message", "error", err)
		} else {
			s.MessageHTML = html
		}
	}
	return s
}

// Close hides the prompt and keeps its content. Closing a closed prompt is a
// no-op.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if !c.state.Open {
		c.mu.Unlock()
		return
	}
	c.state.Open = false
	next := c.state.clone()
	listeners := c.observers.Snapshot()
	c.mu.Unlock()

	c.notify(listeners, next)
}

// UpgradeNow sends the user to subscription management and closes the
// prompt. The prompt closes even when navigation fails.
func (c *Coordinator) UpgradeNow(ctx context.Context) error {
	var err error
	if c.navigator != nil {
		err = c.navigator.Navigate(ctx, c.destination)
		if err != nil {
			c.logger.Warnw("failed to navigate to subscription management",
				"destination", c.destination,
				"error", err,
			)
		}
	}
	c.Close()
	return err
}

// NotNow dismisses the prompt.
func (c *Coordinator) NotNow() {
	c.Close()
}

// Subscribe follows the store contract: fn is called immediately with the
// current state and then after every change, in registration order.
func (c *Coordinator) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.observers.Add(fn)
	current := c.state.clone()
	c.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.observers.Remove(id)
			c.mu.Unlock()
		})
	}
}

func (c *Coordinator) notify(listeners []func(State), s State) {
	for _, fn := range listeners {
		fn(s.clone())
	}
}
