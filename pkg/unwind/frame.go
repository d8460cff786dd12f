package unwind

import (
	"time"

	"github.com/google/uuid"
)

// Frame is the bookkeeping record of one open scope: the three action
// lists, drained exactly once by Stack.Exit. Enter hands the frame
// back as an opaque handle; after its scope exits the frame is inert.
type Frame struct {
	id        uuid.UUID
	enteredAt time.Time
	success   []Action
	failure   []Action
	always    []Action
}

func newFrame() *Frame {
	return &Frame{
		id:        uuid.New(),
		enteredAt: time.Now().UTC(),
	}
}

// OnSuccess appends a to the frame's success list.
func (f *Frame) OnSuccess(a Action) {
	f.success = append(f.success, a)
}

// OnFailure appends a to the frame's failure list.
func (f *Frame) OnFailure(a Action) {
	f.failure = append(f.failure, a)
}

// Always appends a to the frame's always list.
func (f *Frame) Always(a Action) {
	f.always = append(f.always, a)
}

func (f *Frame) Id() uuid.UUID {
	return f.id
}

// EnteredAt is the frame's creation time (UTC).
func (f *Frame) EnteredAt() time.Time {
	return f.enteredAt
}
