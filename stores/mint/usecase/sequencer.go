package usecase

import (
	"time"

	"github.com/walletsandbox/walletapi/domain/mint"
)

type seqState int

const (
	seqIdle seqState = iota
	seqWaiting
	seqRevealed
)

// revealSequencer decides when the ui flips from loading to reveal and owns
// the timeout timer plus the one-shot celebratory trigger. It is not safe for
// concurrent use on its own, the coordinator mutates it under its lock.
type revealSequencer struct {
	settleDelay    time.Duration
	effectDuration time.Duration
	events         mint.EventSink
	origin         mint.OriginFunc

	state       seqState
	timer       *time.Timer
	effectFired bool
}

func newRevealSequencer(settleDelay, effectDuration time.Duration, events mint.EventSink, origin mint.OriginFunc) *revealSequencer {
	return &revealSequencer{
		settleDelay:    settleDelay,
		effectDuration: effectDuration,
		events:         events,
		origin:         origin,
	}
}

// arm starts the bounded wait for the first item. onTimeout runs on timer
// expiry and must re-check the batch generation before applying effects.
func (s *revealSequencer) arm(timeout time.Duration, onTimeout func()) {
	s.state = seqWaiting
	s.timer = time.AfterFunc(timeout, onTimeout)
}

// reveal performs the single Waiting to Revealed transition. It returns true
// on the winning call, every later call is a no-op so the first-loaded signal
// and the timer cannot both drive the transition.
func (s *revealSequencer) reveal() bool {
	if s.state != seqWaiting {
		return false
	}
	s.state = seqRevealed
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.fireEffect()
	return true
}

// cancel discards in-flight state when a new batch supersedes this one,
// otherwise a stale timer could fire against the newer batch.
func (s *revealSequencer) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = seqIdle
}

// fireEffect schedules the celebratory trigger exactly once. The brief delay
// lets the reveal surface settle before the origin is sampled, and the
// emission auto-stops after effectDuration.
func (s *revealSequencer) fireEffect() {
	if s.effectFired {
		return
	}
	s.effectFired = true
	events, origin := s.events, s.origin
	time.AfterFunc(s.settleDelay, func() {
		events.RevealStarted(origin())
		time.AfterFunc(s.effectDuration, events.RevealEffectEnded)
	})
}
