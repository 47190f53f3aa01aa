package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletsandbox/walletapi/domain/mint"
	"github.com/walletsandbox/walletapi/domain/mint/mocks"
)

type sequencerTestSuite struct {
	suite.Suite

	sink  *mocks.EventSink
	ended chan struct{}
}

func TestRevealSequencer(t *testing.T) {
	suite.Run(t, new(sequencerTestSuite))
}

func (s *sequencerTestSuite) SetupTest() {
	s.sink = &mocks.EventSink{}
	// captured by value so a timer from an earlier test can't reach this
	// test's channel
	ended := make(chan struct{}, 1)
	s.ended = ended
	s.sink.On("RevealStarted", mock.Anything)
	s.sink.On("RevealEffectEnded").Run(func(mock.Arguments) {
		select {
		case ended <- struct{}{}:
		default:
		}
	})
}

// drainEffect waits out the celebratory trigger so its timers are spent
// before the test returns
func (s *sequencerTestSuite) drainEffect() {
	select {
	case <-s.ended:
	case <-time.After(time.Second):
		s.FailNow("effect never ended")
	}
}

func (s *sequencerTestSuite) newSequencer() *revealSequencer {
	origin := func() mint.Origin { return mint.Origin{X: 0.25, Y: 0.75} }
	return newRevealSequencer(time.Millisecond, time.Millisecond, s.sink, origin)
}

func (s *sequencerTestSuite) TestRevealWinsOnce() {
	seq := s.newSequencer()
	seq.arm(time.Hour, func() {})

	s.True(seq.reveal())
	s.False(seq.reveal())

	s.drainEffect()
	s.sink.AssertCalled(s.T(), "RevealStarted", mint.Origin{X: 0.25, Y: 0.75})
	s.sink.AssertNumberOfCalls(s.T(), "RevealStarted", 1)
	s.sink.AssertNumberOfCalls(s.T(), "RevealEffectEnded", 1)
}

func (s *sequencerTestSuite) TestTimeoutFires() {
	seq := s.newSequencer()
	fired := make(chan struct{})
	seq.arm(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		s.FailNow("timer never fired")
	}
}

func (s *sequencerTestSuite) TestRevealStopsTimer() {
	seq := s.newSequencer()
	fired := make(chan struct{})
	seq.arm(20*time.Millisecond, func() { close(fired) })

	s.True(seq.reveal())
	select {
	case <-fired:
		s.FailNow("timer fired after reveal")
	case <-time.After(100 * time.Millisecond):
	}
	s.drainEffect()
}

func (s *sequencerTestSuite) TestCancelDiscardsEverything() {
	seq := s.newSequencer()
	fired := make(chan struct{})
	seq.arm(5*time.Millisecond, func() { close(fired) })
	seq.cancel()

	select {
	case <-fired:
		s.FailNow("cancelled timer fired")
	case <-time.After(50 * time.Millisecond):
	}
	s.False(seq.reveal())
	s.sink.AssertNotCalled(s.T(), "RevealStarted", mock.Anything)
}
