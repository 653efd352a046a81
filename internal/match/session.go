package match

import "github.com/vovakirdan/microarcade/internal/core"

// Phase is the host-facing state of a Session.
type Phase int

const (
	PhaseReady   Phase = iota // waiting for the player to start the next round
	PhasePlaying              // a round is running
	PhaseResult               // the outcome of the last round is on screen
	PhaseOver                 // the gauntlet has ended
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Default pacing between rounds, in milliseconds.
const (
	DefaultIntroMS      = 900
	DefaultResultHoldMS = 1200
)

// Session paces a Gauntlet for an interactive host: the first round waits for
// the player, each outcome stays on screen for a moment and the next round
// starts on its own. Both the terminal and the desktop host drive one.
type Session struct {
	gauntlet *Gauntlet

	IntroMS      float64 // how long the instruction banner shows at round start
	ResultHoldMS float64 // how long the outcome banner shows before the next round

	phase   Phase
	phaseMS float64
	paused  bool
}

// NewSession wraps g.
func NewSession(g *Gauntlet) *Session {
	return &Session{
		gauntlet:     g,
		IntroMS:      DefaultIntroMS,
		ResultHoldMS: DefaultResultHoldMS,
	}
}

// Start begins the next round when the session is waiting for the player.
// It returns false when nothing was started.
func (s *Session) Start() bool {
	if s.phase != PhaseReady {
		return false
	}
	return s.next()
}

func (s *Session) next() bool {
	if _, err := s.gauntlet.Next(); err != nil {
		s.phase = PhaseOver
		return false
	}
	s.phase = PhasePlaying
	s.phaseMS = 0
	s.paused = false
	return true
}

// Tick advances the session by dt milliseconds of wall time.
func (s *Session) Tick(dtMS float64) {
	if s.paused || !core.ValidStep(dtMS) {
		return
	}

	switch s.phase {
	case PhasePlaying:
		s.phaseMS += dtMS
		s.gauntlet.Advance(dtMS)
		if r := s.gauntlet.Current(); r != nil && r.Done() {
			s.phase = PhaseResult
			s.phaseMS = 0
		}

	case PhaseResult:
		s.phaseMS += dtMS
		if s.phaseMS >= s.ResultHoldMS {
			if s.gauntlet.Over() {
				s.phase = PhaseOver
				return
			}
			s.next()
		}
	}
}

// TogglePause pauses or resumes a running round or result banner.
func (s *Session) TogglePause() {
	if s.phase == PhasePlaying || s.phase == PhaseResult {
		s.paused = !s.paused
	}
}

// Abort stops the gauntlet, recording a running round as aborted.
func (s *Session) Abort() {
	s.gauntlet.Stop()
	s.phase = PhaseOver
	s.paused = false
}

// Banner returns the centered message for the current phase, if any,
// along with the outcome it refers to (CONTINUE for instructions).
func (s *Session) Banner() (string, core.Outcome) {
	switch s.phase {
	case PhasePlaying:
		if s.phaseMS < s.IntroMS {
			return s.gauntlet.Current().Game().Instruction(), core.OutcomeContinue
		}
	case PhaseResult:
		if s.gauntlet.Current().Outcome() == core.OutcomeWin {
			return "WIN!", core.OutcomeWin
		}
		return "LOSE", core.OutcomeLose
	}
	return "", core.OutcomeContinue
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Gauntlet returns the underlying gauntlet.
func (s *Session) Gauntlet() *Gauntlet { return s.gauntlet }
