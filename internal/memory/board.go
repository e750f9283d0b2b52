package memory

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/clock"
	"go.uber.org/zap"
)

// FlipOutcome tells the caller what a flip request did.
type FlipOutcome int

const (
	// FlipIgnored means the request was absorbed: the board was locked for
	// resolution, or the tile was matched or already face up.
	FlipIgnored FlipOutcome = iota
	// FlipFirst turned up the first tile of an attempt.
	FlipFirst
	// FlipSecond turned up the second tile and scheduled resolution.
	FlipSecond
)

func (o FlipOutcome) String() string {
	switch o {
	case FlipFirst:
		return "first"
	case FlipSecond:
		return "second"
	default:
		return "ignored"
	}
}

// Rand is the random source used for shuffling. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// BoardOptions configures a Board. Zero values select the defaults.
type BoardOptions struct {
	Scheduler    clock.Scheduler
	ResolveDelay time.Duration
	TickInterval time.Duration
	Rand         Rand
	Logger       *zap.Logger
}

// Board owns one round: its tiles, the flip state machine, the attempt
// counter and the timer. It is not safe for concurrent use; Session
// serialises access, including scheduled callbacks.
type Board struct {
	sched        clock.Scheduler
	resolveDelay time.Duration
	rng          Rand
	log          *zap.Logger
	emit         Emitter
	onComplete   func(Summary)

	tiles             []Tile
	pendingFirst      int
	resolutionPending bool
	remainingPairs    int
	generation        uint64
	counter           FlipCounter
	timer             *Timer
}

// NewBoard returns an empty board. emit receives every outbound event and
// onComplete is called once per round when the last pair matches; either
// may be nil.
func NewBoard(opts BoardOptions, emit Emitter, onComplete func(Summary)) *Board {
	if opts.Scheduler == nil {
		opts.Scheduler = clock.Real{}
	}
	if opts.ResolveDelay <= 0 {
		opts.ResolveDelay = DefaultResolveDelay
	}
	if opts.Rand == nil {
		opts.Rand = globalRand{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if emit == nil {
		emit = func(Event) {}
	}
	b := &Board{
		sched:        opts.Scheduler,
		resolveDelay: opts.ResolveDelay,
		rng:          opts.Rand,
		log:          opts.Logger,
		emit:         emit,
		onComplete:   onComplete,
		pendingFirst: -1,
	}
	b.timer = NewTimer(opts.Scheduler, opts.TickInterval, func(s int) {
		b.emit(Event{Kind: EventElapsed, Seconds: s})
	}, opts.Logger)
	return b
}

// ValidateTileCount checks n against the catalogue and the supported sizes.
func ValidateTileCount(n int) error {
	if n < MinTileCount || n%2 != 0 || n > MaxTileCount || !IsSupportedTileCount(n) {
		return fmt.Errorf("%w: %d", ErrInvalidTileCount, n)
	}
	return nil
}

// Shuffle permutes symbols in place. Every position i swaps with a partner
// drawn from the whole slice, not just the unshuffled tail, so the
// resulting permutations are not uniformly distributed.
func Shuffle(symbols []Symbol, rng Rand) {
	for i := range symbols {
		j := rng.IntN(len(symbols))
		symbols[i], symbols[j] = symbols[j], symbols[i]
	}
}

// Deal discards any current round and lays out n face-down tiles using the
// first n/2 catalogue symbols, each twice, shuffled. It starts the timer.
func (b *Board) Deal(n int) error {
	if err := ValidateTileCount(n); err != nil {
		return err
	}

	b.reset()

	symbols := make([]Symbol, 0, n)
	for _, s := range Catalogue[:n/2] {
		symbols = append(symbols, s, s)
	}
	Shuffle(symbols, b.rng)

	b.tiles = make([]Tile, n)
	for i, s := range symbols {
		b.tiles[i] = Tile{ID: i, Symbol: s}
	}
	b.remainingPairs = n / 2

	b.log.Debug("dealt round", zap.Int("tiles", n), zap.Uint64("gen", b.generation))

	b.emit(Event{Kind: EventDealt, TileCount: n})
	b.emit(Event{Kind: EventAttempts, Count: 0})
	b.timer.Start()
	b.emit(Event{Kind: EventElapsed, Seconds: 0})
	return nil
}

// Discard throws the current round away. Pending resolution and timer
// callbacks from it become stale.
func (b *Board) Discard() {
	b.reset()
}

func (b *Board) reset() {
	b.generation++
	b.timer.Stop()
	b.tiles = nil
	b.pendingFirst = -1
	b.resolutionPending = false
	b.remainingPairs = 0
	b.counter.Reset()
}

// Flip turns a tile face up. Requests that are not allowed right now return
// FlipIgnored with a nil error; only an unknown tile or an empty board is an
// error.
func (b *Board) Flip(id int) (FlipOutcome, error) {
	if len(b.tiles) == 0 {
		return FlipIgnored, ErrNoTiles
	}
	if id < 0 || id >= len(b.tiles) {
		return FlipIgnored, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	if b.resolutionPending {
		b.log.Debug("flip ignored: board locked", zap.Int("tile", id))
		return FlipIgnored, nil
	}

	t := &b.tiles[id]
	if !t.Flippable() {
		b.log.Debug("flip ignored: tile not flippable", zap.Int("tile", id),
			zap.Bool("faceUp", t.FaceUp), zap.Bool("matched", t.Matched))
		return FlipIgnored, nil
	}

	t.FaceUp = true
	t.Locked = true
	b.emit(tileFaceEvent(*t))

	if b.pendingFirst < 0 {
		b.pendingFirst = id
		return FlipFirst, nil
	}

	first := b.pendingFirst
	b.resolutionPending = true
	attempts := b.counter.Increment()
	b.emit(Event{Kind: EventAttempts, Count: attempts})

	gen := b.generation
	b.sched.AfterFunc(b.resolveDelay, func() { b.resolve(gen, first, id) })
	return FlipSecond, nil
}

func (b *Board) resolve(gen uint64, first, second int) {
	if gen != b.generation {
		b.log.Debug("dropping stale resolution", zap.Uint64("gen", gen), zap.Uint64("current", b.generation))
		return
	}

	b.resolutionPending = false
	b.pendingFirst = -1

	a, c := &b.tiles[first], &b.tiles[second]
	if a.Symbol != c.Symbol {
		a.FaceUp, a.Locked = false, false
		c.FaceUp, c.Locked = false, false
		b.emit(tileFaceEvent(*a))
		b.emit(tileFaceEvent(*c))
		b.log.Debug("mismatch", zap.Int("first", first), zap.Int("second", second))
		return
	}

	a.Matched, c.Matched = true, true
	b.emit(tileFaceEvent(*a))
	b.emit(tileFaceEvent(*c))
	b.remainingPairs--
	b.log.Debug("match", zap.Int("first", first), zap.Int("second", second),
		zap.Int("remaining", b.remainingPairs))

	if b.remainingPairs > 0 {
		return
	}

	b.timer.Stop()
	sum := Summary{Attempts: b.counter.Count(), ElapsedSeconds: b.timer.Elapsed()}
	b.log.Debug("round complete", zap.Int("attempts", sum.Attempts), zap.Int("elapsed", sum.ElapsedSeconds))
	b.emit(Event{Kind: EventRoundComplete, Summary: sum})
	if b.onComplete != nil {
		b.onComplete(sum)
	}
}

// Tiles returns a copy of the tile sequence.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Tile returns the tile with the given id.
func (b *Board) Tile(id int) (Tile, bool) {
	if id < 0 || id >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[id], true
}

// TileCount returns the number of tiles dealt, matched or not.
func (b *Board) TileCount() int { return len(b.tiles) }

// RemainingPairs returns how many pairs are still unmatched.
func (b *Board) RemainingPairs() int { return b.remainingPairs }

// Attempts returns the number of completed attempts this round.
func (b *Board) Attempts() int { return b.counter.Count() }

// Elapsed returns the timer value in seconds.
func (b *Board) Elapsed() int { return b.timer.Elapsed() }

// Locked reports whether a resolution is pending.
func (b *Board) Locked() bool { return b.resolutionPending }

// Complete reports whether every pair of a dealt round is matched.
func (b *Board) Complete() bool { return len(b.tiles) > 0 && b.remainingPairs == 0 }

// Generation identifies the current round; it changes on every deal and
// discard.
func (b *Board) Generation() uint64 { return b.generation }
