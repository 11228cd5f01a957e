package session

import (
	"context"
	"sync"
	"time"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Options configures a Controller. History and Contacts are optional.
type Options struct {
	Client   ports.LookupClient
	History  ports.HistoryRepository
	Contacts ports.ContactImporter
	Logger   ports.Logger
	Clock    func() time.Time
}

// Controller owns the session state and runs the effects Reduce asks for.
//
// Listeners are called in transition order, outside the state lock. They may
// read State but must not dispatch events synchronously.
type Controller struct {
	client   ports.LookupClient
	history  ports.HistoryRepository
	contacts ports.ContactImporter
	log      ports.Logger
	now      func() time.Time

	mu      sync.Mutex
	state   State
	subs    map[uint64]func(State)
	nextSub uint64

	notifyMu sync.Mutex
	inflight sync.WaitGroup
}

// NewController returns a controller in StatusIdle.
func NewController(opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Controller{
		client:   opts.Client,
		history:  opts.History,
		contacts: opts.Contacts,
		log:      opts.Logger,
		now:      clock,
		subs:     make(map[uint64]func(State)),
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// InputChanged records new text in the number field.
func (c *Controller) InputChanged(raw string) State {
	return c.dispatch(context.Background(), InputChanged{Raw: raw})
}

// Submit starts a lookup of the current query. The lookup runs in the
// background; ctx bounds the provider request.
func (c *Controller) Submit(ctx context.Context) State {
	return c.dispatch(ctx, Submitted{})
}

// Clear resets the screen.
func (c *Controller) Clear() State {
	return c.dispatch(context.Background(), Cleared{})
}

// LoadFromContacts runs the contact importer in the background and feeds its
// answer back as a ContactsLoaded event.
func (c *Controller) LoadFromContacts(ctx context.Context) {
	if c.contacts == nil {
		c.warn("contact import unavailable", nil)
		return
	}
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		number, found, err := c.contacts.Import(ctx)
		if err != nil && !domain.IsKind(err, domain.KindPermissionDenied) {
			c.warn("contact import failed", map[string]interface{}{"error": err.Error()})
		}
		c.dispatch(ctx, ContactsLoaded{Number: number, Found: found, Err: err})
	}()
}

// Wait blocks until every background effect has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Subscription is returned by Subscribe. Call Unsubscribe to release it.
type Subscription struct {
	once  sync.Once
	owner *Controller
	id    uint64
}

// Unsubscribe stops delivery. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.owner.mu.Lock()
		delete(s.owner.subs, s.id)
		s.owner.mu.Unlock()
	})
}

// Subscribe registers fn to receive every new state.
func (c *Controller) Subscribe(fn func(State)) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSub++
	c.subs[c.nextSub] = fn
	return &Subscription{owner: c, id: c.nextSub}
}

func (c *Controller) dispatch(ctx context.Context, ev Event) State {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	prev := c.state
	next, effects := Reduce(prev, ev, c.now())
	c.state = next
	listeners := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	if next != prev {
		c.debug("session transition", map[string]interface{}{
			"from":  prev.Status.String(),
			"to":    next.Status.String(),
			"query": next.Query,
			"seq":   next.Seq,
		})
	}

	for _, eff := range effects {
		c.run(ctx, eff)
	}
	for _, fn := range listeners {
		fn(next)
	}
	return next
}

func (c *Controller) run(ctx context.Context, eff Effect) {
	switch eff := eff.(type) {
	case DispatchLookup:
		if c.client == nil {
			c.warn("lookup client unavailable", nil)
			return
		}
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			result, err := c.client.Lookup(ctx, eff.Number)
			if err != nil {
				c.debug("lookup failed", map[string]interface{}{"number": eff.Number, "error": err.Error()})
			}
			c.dispatch(ctx, LookupResolved{Seq: eff.Seq, Number: eff.Number, Outcome: domain.OutcomeOf(result, err)})
		}()

	case AppendHistory:
		if c.history == nil {
			return
		}
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			// The result is already on screen; a cancelled caller must not abort the write.
			if err := c.history.Append(context.WithoutCancel(ctx), eff.Record); err != nil {
				c.warn("history append failed", map[string]interface{}{
					"phone": eff.Record.Phone,
					"error": err.Error(),
				})
			}
		}()
	}
}

func (c *Controller) debug(msg string, fields map[string]interface{}) {
	if c.log != nil {
		c.log.Debug(msg, fields)
	}
}

func (c *Controller) warn(msg string, fields map[string]interface{}) {
	if c.log != nil {
		c.log.Warn(msg, fields)
	}
}
