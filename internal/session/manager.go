// Package session keeps the set of live games, serialises moves per game
// and fans out move events to subscribers.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
	"github.com/lgbarn/plyboard/internal/output"
	"github.com/lgbarn/plyboard/internal/storage"
	"github.com/lgbarn/plyboard/internal/worker"
)

// Store is the persistence the manager needs. *storage.Storage satisfies it.
type Store interface {
	Save(ctx context.Context, rec storage.Record) error
	LoadAll(ctx context.Context) ([]storage.Record, error)
	Delete(ctx context.Context, id string) error
}

// Logger matches config.Config.Logf.
type Logger func(level int, format string, args ...interface{})

// Event describes one accepted move. It is returned by Move and published
// to subscribers.
type Event struct {
	GameID string
	Ply    int // ply the move was played at, 0-based
	Move   chess.Move
	Over   bool // the move used up the last ply
}

// Option configures a Manager.
type Option func(*Manager)

// WithSubscriberBuffer sets the channel size handed to each subscriber.
func WithSubscriberBuffer(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.buffer = n
		}
	}
}

// WithRestoreWorkers sets how many games Restore replays in parallel.
func WithRestoreWorkers(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.restoreWorkers = n
		}
	}
}

// game is one live board. mu guards every field below it.
type game struct {
	id      string
	mu      sync.Mutex
	layout  engine.Layout
	board   *engine.Board
	created time.Time
	subs    map[chan Event]struct{}
	deleted bool // set by Delete; the game takes no further moves or saves
}

// Manager owns the live games. It is safe for concurrent use.
type Manager struct {
	store          Store
	logf           Logger
	buffer         int
	restoreWorkers int

	mu    sync.RWMutex
	games map[string]*game
}

// NewManager creates a manager. store may be nil for a memory-only
// manager; logf may be nil to discard log output.
func NewManager(store Store, logf Logger, opts ...Option) *Manager {
	if logf == nil {
		logf = func(int, string, ...interface{}) {}
	}
	m := &Manager{
		store:          store,
		logf:           logf,
		buffer:         16,
		restoreWorkers: 4,
		games:          make(map[string]*game),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new game from layout with player seated on ranks 6-7 and
// returns its id.
func (m *Manager) Create(ctx context.Context, player chess.Colour, layout engine.Layout) (string, error) {
	board, err := engine.FromLayout(player, layout)
	if err != nil {
		return "", err
	}
	g := &game{
		id:      uuid.New().String(),
		layout:  layout,
		board:   board,
		created: time.Now().UTC(),
		subs:    make(map[chan Event]struct{}),
	}

	// Only a stored game becomes visible.
	if err := m.persist(ctx, g); err != nil {
		return "", errors.Wrapf(err, "create game %s", g.id)
	}

	m.mu.Lock()
	m.games[g.id] = g
	m.mu.Unlock()

	m.logf(1, "game %s created, player %s", g.id, player)
	return g.id, nil
}

func (m *Manager) lookup(id string) (*game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return g, nil
}

// Get returns the JSON view of a game.
func (m *Manager) Get(id string) (*output.JSONBoard, error) {
	g, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	jb := output.BoardToJSON(g.board)
	jb.ID = g.id
	return jb, nil
}

// Board returns a copy of the game's board.
func (m *Manager) Board(id string) (*engine.Board, error) {
	g, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone(), nil
}

// Move plays src to dst in game id. Moves on one game are applied one at
// a time; moves on different games run in parallel. The move stands even
// if persisting it fails; that failure is logged, not returned.
func (m *Manager) Move(ctx context.Context, id string, src, dst chess.Coord) (Event, error) {
	g, err := m.lookup(id)
	if err != nil {
		return Event{}, err
	}
	return m.move(ctx, g, src, dst)
}

// move applies a turn to g. g may have been deleted since it was looked up.
func (m *Manager) move(ctx context.Context, g *game, src, dst chess.Coord) (Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deleted {
		return Event{}, errors.Wrapf(errors.ErrGameNotFound, "game %s", g.id)
	}
	move, err := g.board.TakeTurn(src, dst)
	if err != nil {
		m.logf(2, "game %s: rejected %v-%v: %v", g.id, src, dst, err)
		return Event{}, err
	}
	ply := g.board.Ply() - 1
	m.logf(2, "game %s: ply %d %v %s", g.id, ply, move, move.Option)

	if err := m.persistLocked(ctx, g); err != nil {
		m.logf(0, "game %s: save after ply %d: %v", g.id, ply, err)
	}
	ev := Event{GameID: g.id, Ply: ply, Move: move, Over: g.board.IsOver()}
	m.publishLocked(g, ev)
	if ev.Over {
		m.logf(1, "game %s over at ply %d", g.id, g.board.Ply())
	}
	return ev, nil
}

// Subscribe returns a channel receiving the game's move events and a func
// that ends the subscription. A subscriber that falls behind misses events
// rather than stalling moves. The channel is closed by the cancel func or
// when the game is deleted.
func (m *Manager) Subscribe(id string) (<-chan Event, func(), error) {
	g, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	ch := make(chan Event, m.buffer)

	g.mu.Lock()
	if g.deleted {
		g.mu.Unlock()
		return nil, nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", g.id)
	}
	g.subs[ch] = struct{}{}
	g.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			if _, ok := g.subs[ch]; ok {
				delete(g.subs, ch)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

func (m *Manager) publishLocked(g *game, ev Event) {
	for ch := range g.subs {
		select {
		case ch <- ev:
		default:
			m.logf(2, "game %s: subscriber full, dropped ply %d", g.id, ev.Ply)
		}
	}
}

// List returns the ids of all live games, sorted.
func (m *Manager) List() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Delete removes a game, closes its subscriptions and drops it from the
// store.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	g, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}

	// Any move still waiting on g.mu sees deleted and saves nothing, so
	// the store delete below is the last write for this id.
	g.mu.Lock()
	g.deleted = true
	for ch := range g.subs {
		delete(g.subs, ch)
		close(ch)
	}
	g.mu.Unlock()

	m.logf(1, "game %s deleted", g.id)
	if m.store == nil {
		return nil
	}
	return m.store.Delete(ctx, g.id)
}

// Restore loads every stored game that is not already live. Records that
// fail to replay are logged and skipped. It returns the number restored.
func (m *Manager) Restore(ctx context.Context) (int, error) {
	if m.store == nil {
		return 0, nil
	}
	records, err := m.store.LoadAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "restore")
	}

	restored := 0
	for i, res := range worker.ReplayAll(records, m.restoreWorkers) {
		if res.Error != nil {
			m.logf(0, "restore %s: %v", res.ID, res.Error)
			continue
		}
		g := &game{
			id:      res.ID,
			layout:  res.Layout,
			board:   res.Board,
			created: records[i].Created,
			subs:    make(map[chan Event]struct{}),
		}

		m.mu.Lock()
		if _, live := m.games[g.id]; !live {
			m.games[g.id] = g
			restored++
		}
		m.mu.Unlock()
	}
	m.logf(1, "restored %d of %d stored games", restored, len(records))
	return restored, nil
}

func (m *Manager) persist(ctx context.Context, g *game) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return m.persistLocked(ctx, g)
}

func (m *Manager) persistLocked(ctx context.Context, g *game) error {
	if m.store == nil {
		return nil
	}
	if g.deleted {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", g.id)
	}
	rec := storage.NewRecord(g.id, g.layout, g.board)
	rec.Created = g.created
	return m.store.Save(ctx, rec)
}
