package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
	"github.com/rocketscienceinc/tictaclose-backend/internal/notify"
	"github.com/rocketscienceinc/tictaclose-backend/internal/opponent"
	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
)

const (
	eventBuffer      = 64
	subscriberBuffer = 8
)

type notifierDep interface {
	Publish(ctx context.Context, event notify.Event) error
}

type Options struct {
	// OpponentDelay is how long the opponent waits before replying.
	OpponentDelay time.Duration
	// Expiry is how long a game may sit untouched before it is dropped.
	Expiry time.Duration
	// SweepInterval defaults to a tenth of Expiry.
	SweepInterval time.Duration
}

type session struct {
	controller *tictactoe.GameController
	lastActive atomic.Int64

	mu     sync.Mutex
	subs   map[chan tictactoe.View]func() bool
	closed bool
}

// release drops a subscriber and detaches it from its context. Callers hold mu.
func (that *session) release(ch chan tictactoe.View) {
	stop, ok := that.subs[ch]
	if !ok {
		return
	}

	delete(that.subs, ch)
	close(ch)
	stop()
}

func (that *session) touch(now time.Time) {
	that.lastActive.Store(now.UnixNano())
}

func (that *session) idleSince() time.Time {
	return time.Unix(0, that.lastActive.Load())
}

// GameManager keeps every running game, forwards clicks to their controllers and fans
// state changes out to subscribers and the notifier.
type GameManager struct {
	logger   *slog.Logger
	strategy opponent.Strategy
	notifier notifierDep
	options  Options

	games  *xsync.MapOf[string, *session]
	events chan notify.Event
}

func NewGameManager(logger *slog.Logger, strategy opponent.Strategy, notifier notifierDep, options Options) *GameManager {
	if options.SweepInterval <= 0 {
		options.SweepInterval = max(options.Expiry/10, time.Second)
	}

	return &GameManager{
		logger:   logger.With("component", "gameManager"),
		strategy: strategy,
		notifier: notifier,
		options:  options,

		games:  xsync.NewMapOf[string, *session](),
		events: make(chan notify.Event, eventBuffer),
	}
}

// CreateGame starts a new game and returns its first view.
func (that *GameManager) CreateGame() tictactoe.View {
	log := that.logger.With("method", "CreateGame")

	id := uuid.NewString()
	sess := &session{subs: make(map[chan tictactoe.View]func() bool)}
	sess.touch(time.Now())
	sess.controller = tictactoe.NewGameController(that.logger, id, that.strategy, that.options.OpponentDelay,
		func(view tictactoe.View) {
			that.onChange(sess, view)
		})

	that.games.Store(id, sess)

	view := sess.controller.View()
	that.enqueue(view)

	log.Info("game created", "gameID", id)

	return view
}

func (that *GameManager) GetGame(id string) (tictactoe.View, error) {
	sess, err := that.session(id)
	if err != nil {
		return tictactoe.View{}, err
	}

	return sess.controller.View(), nil
}

// Click forwards a click to the game. The flag reports whether the click was accepted.
func (that *GameManager) Click(id string, x, y int) (tictactoe.View, bool, error) {
	sess, err := that.session(id)
	if err != nil {
		return tictactoe.View{}, false, err
	}

	sess.touch(time.Now())
	accepted := sess.controller.Click(x, y)

	return sess.controller.View(), accepted, nil
}

func (that *GameManager) DeleteGame(id string) error {
	log := that.logger.With("method", "DeleteGame")

	sess, ok := that.games.LoadAndDelete(id)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	that.teardown(sess)
	log.Info("game deleted", "gameID", id)

	return nil
}

// Subscribe returns a channel receiving every new view of the game. The channel is closed
// on unsubscribe, when the game goes away, or when the subscriber falls behind.
func (that *GameManager) Subscribe(ctx context.Context, id string) (<-chan tictactoe.View, func(), error) {
	sess, err := that.session(id)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan tictactoe.View, subscriberBuffer)

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			sess.mu.Lock()
			defer sess.mu.Unlock()

			sess.release(ch)
		})
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrGameClosed, id)
	}

	// release detaches this from ctx
	sess.subs[ch] = context.AfterFunc(ctx, unsubscribe)

	return ch, unsubscribe, nil
}

// Run publishes queued events and drops idle games until ctx is done. Every game is closed on return.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ticker := time.NewTicker(that.options.SweepInterval)
	defer ticker.Stop()

	defer that.closeAll()

	for {
		select {
		case <-ctx.Done():
			log.Info("game manager stopped")
			return nil

		case event := <-that.events:
			if err := that.notifier.Publish(ctx, event); err != nil {
				log.Error("failed to publish event", "gameID", event.GameID, "error", err)
			}

		case now := <-ticker.C:
			if removed := that.Sweep(now); removed > 0 {
				log.Debug("idle games removed", "count", removed)
			}
		}
	}
}

// Sweep drops every game untouched for longer than the expiry and returns how many went.
func (that *GameManager) Sweep(now time.Time) int {
	log := that.logger.With("method", "Sweep")

	if that.options.Expiry <= 0 {
		return 0
	}

	removed := 0
	that.games.Range(func(id string, sess *session) bool {
		if sess.idleSince().Add(that.options.Expiry).Before(now) {
			log.Debug("game expired, deleting", "gameID", id, "idleSince", sess.idleSince())

			if current, ok := that.games.LoadAndDelete(id); ok {
				that.teardown(current)
				removed++
			}
		}
		return true
	})

	return removed
}

func (that *GameManager) Len() int {
	return that.games.Size()
}

func (that *GameManager) session(id string) (*session, error) {
	sess, ok := that.games.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return sess, nil
}

// onChange runs with the controller locked.
func (that *GameManager) onChange(sess *session, view tictactoe.View) {
	log := that.logger.With("method", "onChange")

	sess.touch(time.Now())

	sess.mu.Lock()
	for ch := range sess.subs {
		select {
		case ch <- view:
		default:
			log.Warn("dropping slow subscriber", "gameID", view.ID)
			sess.release(ch)
		}
	}
	sess.mu.Unlock()

	that.enqueue(view)
}

func (that *GameManager) enqueue(view tictactoe.View) {
	select {
	case that.events <- notify.NewEvent(view, time.Now()):
	default:
		that.logger.Warn("event queue is full, dropping event", "gameID", view.ID, "status", view.Status)
	}
}

func (that *GameManager) teardown(sess *session) {
	sess.controller.Close()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.closed = true
	for ch := range sess.subs {
		sess.release(ch)
	}
}

func (that *GameManager) closeAll() {
	that.games.Range(func(id string, _ *session) bool {
		if sess, ok := that.games.LoadAndDelete(id); ok {
			that.teardown(sess)
		}
		return true
	})
}
