package game

// InputSystem drains the session's intent queue and applies each intent in
// submission order.
type InputSystem struct {
	Applied  int
	Rejected int
}

func (s *InputSystem) Execute(frame *Frame) {
	for _, intent := range frame.Session.drain() {
		if frame.Session.apply(intent, frame.Commands) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem soft-drops the falling piece once per drop delay of
// accumulated frame time. Time does not accumulate while the session is
// paused or the game is over.
type GravitySystem struct {
	Elapsed float64
	Drops   int
	game    int
}

func (s *GravitySystem) Execute(frame *Frame) {
	session := frame.Session
	if session.Games() != s.game {
		s.game = session.Games()
		s.Elapsed = 0
	}
	if session.Paused() || session.Chamber().ToppedOut() {
		return
	}

	s.Elapsed += frame.DeltaTime
	delay := session.DropDelay().Seconds()
	for s.Elapsed >= delay {
		s.Elapsed -= delay
		if session.gravity(frame.Commands) {
			s.Drops++
		}
	}
}
