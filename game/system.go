package game

// System is one step of the frame loop. Systems may keep state in their own
// fields between frames and should request structural changes, such as
// locking a piece, through frame.Commands.
type System interface {
	Execute(frame *Frame)
}
