package review

import (
	"math/rand"

	"flash/internal/deck"
)

// Phase is the state of the review machine for the current card.
type Phase int

const (
	// PhaseQuestion shows the card header and question, waiting for any
	// key to reveal the answer.
	PhaseQuestion Phase = iota
	// PhaseAnswer shows the answer and the rating prompt, waiting for a
	// rating or any key to move on.
	PhaseAnswer
	// PhaseDone means the run is over, by exhaustion or an exit key. The
	// deck must be written back exactly once after this phase is reached.
	PhaseDone
)

// Input is one user event, already translated from whatever the terminal
// layer read. The core never sees raw keys.
type Input int

const (
	// Acknowledge is any key that is neither an exit key nor, on the
	// answer screen, a rating key.
	Acknowledge Input = iota
	// Quit terminates the run immediately from either phase.
	Quit
	// Rating inputs map the 1-4 keys onto tiers 0-3.
	RateLowest
	RateLow
	RateNormal
	RateHighest
)

// rating returns the tier an input assigns, if it is a rating input.
func (in Input) rating() (int, bool) {
	switch in {
	case RateLowest:
		return deck.PriorityLowest, true
	case RateLow:
		return deck.PriorityLow, true
	case RateNormal:
		return deck.PriorityNormal, true
	case RateHighest:
		return deck.PriorityHighest, true
	}
	return 0, false
}

// Session drives one run: one card at a time through question, answer and
// rating. Quit from any phase ends the whole run in one transition; there is
// no per-group unwinding for callers to manage. The only side effects are
// in-place priority updates on rated cards.
type Session struct {
	sched     *Scheduler
	current   *deck.Card
	phase     Phase
	remaining int // presentations left, counting the current card
}

// NewSession builds the state machine for a plan and positions it on the
// first card.
func NewSession(plan *Plan, frequency int, rng *rand.Rand) *Session {
	s := &Session{sched: NewScheduler(plan, frequency, rng)}
	s.remaining = s.sched.Total()
	s.advance()
	return s
}

// Current returns the card being presented, or nil once the session is done.
func (s *Session) Current() *deck.Card {
	return s.current
}

// Phase returns the machine's current state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Remaining returns the cards-remaining-in-run counter for the header. It
// includes the card currently on screen.
func (s *Session) Remaining() int {
	return s.remaining
}

// Apply feeds one input to the machine and returns the resulting phase.
func (s *Session) Apply(in Input) Phase {
	if s.phase == PhaseDone {
		return s.phase
	}
	if in == Quit {
		s.current = nil
		s.phase = PhaseDone
		return s.phase
	}

	switch s.phase {
	case PhaseQuestion:
		s.phase = PhaseAnswer
	case PhaseAnswer:
		if tier, ok := in.rating(); ok {
			s.current.Priority = tier
		}
		s.remaining--
		s.advance()
	}
	return s.phase
}

func (s *Session) advance() {
	card, ok := s.sched.Next()
	if !ok {
		s.current = nil
		s.phase = PhaseDone
		return
	}
	s.current = card
	s.phase = PhaseQuestion
}
