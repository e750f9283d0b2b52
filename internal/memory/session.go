package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/clock"
	"go.uber.org/zap"
)

// Phase is the session's top-level state.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Scheduler    clock.Scheduler
	ResolveDelay time.Duration
	TickInterval time.Duration
	Rand         Rand
	Logger       *zap.Logger
}

// Snapshot is a copy of a session's visible state.
type Snapshot struct {
	Phase          Phase    `json:"phase"`
	Tiles          []Tile   `json:"tiles"`
	Focus          int      `json:"focus"`
	Attempts       int      `json:"attempts"`
	ElapsedSeconds int      `json:"elapsedSeconds"`
	RemainingPairs int      `json:"remainingPairs"`
	Locked         bool     `json:"locked"`
	Summary        *Summary `json:"summary,omitempty"`
}

// Session drives one player's game: Start, then Playing, then Finished, and
// back to Start on restart. All methods are safe for concurrent use. Inbound
// calls and scheduled callbacks run one at a time; the events each one
// produces are handed to the sink after the session lock is released.
type Session struct {
	mu      sync.Mutex
	phase   Phase
	board   *Board
	focus   *FocusNavigator
	summary *Summary
	pending []Event
	closed  bool
	sink    func([]Event)
	log     *zap.Logger
}

// NewSession returns a session in PhaseStart. sink may be nil.
func NewSession(opts Options, sink func([]Event)) *Session {
	if opts.Scheduler == nil {
		opts.Scheduler = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Session{
		phase: PhaseStart,
		sink:  sink,
		log:   opts.Logger,
	}
	s.board = NewBoard(BoardOptions{
		Scheduler:    &serialScheduler{s: s, inner: opts.Scheduler},
		ResolveDelay: opts.ResolveDelay,
		TickInterval: opts.TickInterval,
		Rand:         opts.Rand,
		Logger:       opts.Logger,
	}, s.enqueue, s.roundComplete)
	s.focus = NewFocusNavigator(s.enqueue)
	return s
}

// SelectTileCount deals a new round of n tiles and moves Start to Playing.
func (s *Session) SelectTileCount(n int) error {
	return s.do(func() error {
		if s.phase != PhaseStart {
			return fmt.Errorf("%w: select tile count in %s", ErrInvalidTransition, s.phase)
		}
		if err := s.board.Deal(n); err != nil {
			return err
		}
		s.summary = nil
		s.focus.Reset(n)
		s.setPhase(PhasePlaying)
		return nil
	})
}

// Activate requests a flip of tile id.
func (s *Session) Activate(id int) (FlipOutcome, error) {
	var outcome FlipOutcome
	err := s.do(func() error {
		var err error
		outcome, err = s.board.Flip(id)
		return err
	})
	return outcome, err
}

// ActivateFocused requests a flip of the tile under the focus cursor.
func (s *Session) ActivateFocused() (FlipOutcome, error) {
	var outcome FlipOutcome
	err := s.do(func() error {
		idx, ok := s.focus.Index()
		if !ok {
			return ErrNoTiles
		}
		var err error
		outcome, err = s.board.Flip(idx)
		return err
	})
	return outcome, err
}

// Navigate moves the focus cursor and returns the newly focused tile id.
func (s *Session) Navigate(dir Direction) (int, error) {
	var idx int
	err := s.do(func() error {
		var err error
		idx, err = s.focus.Move(dir)
		return err
	})
	return idx, err
}

// HandleKey applies a keyboard key: arrows navigate, space or enter flips
// the focused tile.
func (s *Session) HandleKey(key string) error {
	cmd, err := CommandForKey(key)
	if err != nil {
		return err
	}
	switch cmd {
	case CommandPrevious:
		_, err = s.Navigate(Previous)
	case CommandNext:
		_, err = s.Navigate(Next)
	case CommandActivate:
		_, err = s.ActivateFocused()
	}
	return err
}

// Restart returns a finished session to Start. The finished board is
// discarded; the next round is dealt by SelectTileCount.
func (s *Session) Restart() error {
	return s.do(func() error {
		if s.phase != PhaseFinished {
			return fmt.Errorf("%w: restart in %s", ErrInvalidTransition, s.phase)
		}
		s.board.Discard()
		s.focus.Clear()
		s.summary = nil
		s.setPhase(PhaseStart)
		return nil
	})
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Snapshot returns a copy of the session's state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Phase:          s.phase,
		Tiles:          s.board.Tiles(),
		Focus:          -1,
		Attempts:       s.board.Attempts(),
		ElapsedSeconds: s.board.Elapsed(),
		RemainingPairs: s.board.RemainingPairs(),
		Locked:         s.board.Locked(),
	}
	if idx, ok := s.focus.Index(); ok {
		snap.Focus = idx
	}
	if s.summary != nil {
		sum := *s.summary
		snap.Summary = &sum
	}
	return snap
}

// Close stops the session's timer. Callbacks that fire afterwards are
// dropped and further input is rejected with ErrInvalidTransition.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.board.Discard()
	s.focus.Clear()
	s.pending = nil
}

// do runs fn under the session lock and delivers the events it produced.
func (s *Session) do(fn func() error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("%w: session closed", ErrInvalidTransition)
	}
	err := fn()
	events := s.drain()
	s.mu.Unlock()

	s.deliver(events)
	return err
}

// run is do for scheduled callbacks.
func (s *Session) run(fn func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Debug("dropping callback for closed session")
		return
	}
	fn()
	events := s.drain()
	s.mu.Unlock()

	s.deliver(events)
}

func (s *Session) enqueue(ev Event) {
	s.pending = append(s.pending, ev)
}

func (s *Session) drain() []Event {
	events := s.pending
	s.pending = nil
	return events
}

func (s *Session) deliver(events []Event) {
	if s.sink != nil && len(events) > 0 {
		s.sink(events)
	}
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.enqueue(Event{Kind: EventPhase, Phase: p})
}

// roundComplete is called by the board under the session lock.
func (s *Session) roundComplete(sum Summary) {
	s.summary = &sum
	s.setPhase(PhaseFinished)
}

// serialScheduler runs callbacks under the owning session's lock.
type serialScheduler struct {
	s     *Session
	inner clock.Scheduler
}

func (w *serialScheduler) AfterFunc(d time.Duration, f func()) clock.Stopper {
	return w.inner.AfterFunc(d, func() { w.s.run(f) })
}

func (w *serialScheduler) Every(d time.Duration, f func()) clock.Stopper {
	return w.inner.Every(d, func() { w.s.run(f) })
}
