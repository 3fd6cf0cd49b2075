package calendar

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

var ErrInvalidTransition = errors.New("invalid session transition")

type Session struct {
	ID        int       `json:"id"`
	ProgramID int       `json:"programId"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanonicalSession picks the session that represents a (program, date) pair
// when storage returned more than one: latest UpdatedAt, then highest ID.
func CanonicalSession(sessions []Session) *Session {
	if len(sessions) == 0 {
		return nil
	}

	best := sessions[0]
	for _, s := range sessions[1:] {
		switch {
		case s.UpdatedAt.After(best.UpdatedAt):
			best = s
		case s.UpdatedAt.Equal(best.UpdatedAt) && s.ID > best.ID:
			best = s
		}
	}
	return &best
}

// CanonicalByDate reduces sessions to one per (program, calendar day),
// ordered by date then program.
func CanonicalByDate(sessions []Session) []Session {
	type key struct {
		programID int
		date      time.Time
	}
	grouped := make(map[key][]Session)
	for _, s := range sessions {
		k := key{programID: s.ProgramID, date: Date(s.Date)}
		grouped[k] = append(grouped[k], s)
	}

	keys := slices.SortedFunc(maps.Keys(grouped), func(a, b key) int {
		if c := a.date.Compare(b.date); c != 0 {
			return c
		}
		return a.programID - b.programID
	})

	result := make([]Session, 0, len(keys))
	for _, k := range keys {
		result = append(result, *CanonicalSession(grouped[k]))
	}
	return result
}

type State string

const (
	StateUnplanned State = "unplanned"
	StatePlanned   State = "planned"
	StateCompleted State = "completed"
)

// StateOf maps an optional session row onto its calendar state.
func StateOf(s *Session) State {
	switch {
	case s == nil:
		return StateUnplanned
	case s.Completed:
		return StateCompleted
	default:
		return StatePlanned
	}
}

type Event string

const (
	EventPlan     Event = "plan"
	EventComplete Event = "complete"
	EventReopen   Event = "reopen"
	EventDelete   Event = "delete"
)

var transitions = map[State]map[Event]State{
	StateUnplanned: {
		EventPlan:     StatePlanned,
		EventComplete: StateCompleted,
	},
	StatePlanned: {
		EventComplete: StateCompleted,
		EventDelete:   StateUnplanned,
	},
	StateCompleted: {
		EventReopen: StatePlanned,
		EventDelete: StateUnplanned,
	},
}

func Transition(from State, event Event) (State, error) {
	to, ok := transitions[from][event]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, from)
	}
	return to, nil
}

// EventFor returns the event that moves a session from its current state to
// the requested completion flag. Repeating the current flag of an existing
// session is a no-op and yields ok == false.
func EventFor(current *Session, completed bool) (_ Event, ok bool) {
	switch StateOf(current) {
	case StateUnplanned:
		if completed {
			return EventComplete, true
		}
		return EventPlan, true
	case StatePlanned:
		if completed {
			return EventComplete, true
		}
	case StateCompleted:
		if !completed {
			return EventReopen, true
		}
	}
	return "", false
}

// Toggle resolves the state a session ends up in when the user sets its
// completion flag. Re-applying the current flag is allowed and keeps the state.
func Toggle(current *Session, completed bool) (State, error) {
	event, ok := EventFor(current, completed)
	if !ok {
		return StateOf(current), nil
	}
	return Transition(StateOf(current), event)
}
