// Package session holds the lookup screen's state machine.
//
// State is an immutable value. Reduce is the pure transition function: it
// returns the next state and the side effects the Controller must run.
package session

import (
	"errors"
	"time"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

// Status is the phase of the lookup screen.
type Status int

const (
	StatusIdle Status = iota
	StatusComposing
	StatusQuerying
	StatusResolved
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusComposing:
		return "composing"
	case StatusQuerying:
		return "querying"
	case StatusResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. Result is only populated in StatusResolved.
type State struct {
	Status Status
	Query  string
	Result domain.LookupResult
	Notice *domain.Notice
	// Seq advances on every transition that invalidates an in-flight lookup.
	Seq uint64
}

// HasResult reports whether result fields should be displayed.
func (s State) HasResult() bool {
	return s.Status == StatusResolved
}

// Event is an input to Reduce.
type Event interface{ isEvent() }

// InputChanged carries the raw text of the number field.
type InputChanged struct{ Raw string }

// Submitted asks for a lookup of the current query.
type Submitted struct{}

// Cleared resets the screen.
type Cleared struct{}

// LookupResolved delivers the outcome of a DispatchLookup effect.
type LookupResolved struct {
	Seq     uint64
	Number  string
	Outcome domain.Outcome
}

// ContactsLoaded delivers the contact importer's answer.
type ContactsLoaded struct {
	Number string
	Found  bool
	Err    error
}

func (InputChanged) isEvent()   {}
func (Submitted) isEvent()      {}
func (Cleared) isEvent()        {}
func (LookupResolved) isEvent() {}
func (ContactsLoaded) isEvent() {}

// Effect is a side effect requested by Reduce.
type Effect interface{ isEffect() }

// DispatchLookup queries the provider for Number, tagged with Seq.
type DispatchLookup struct {
	Seq    uint64
	Number string
}

// AppendHistory persists a successful valid lookup.
type AppendHistory struct {
	Record domain.HistoryRecord
}

func (DispatchLookup) isEffect() {}
func (AppendHistory) isEffect()  {}

// Reduce applies ev to s. now stamps history records.
func Reduce(s State, ev Event, now time.Time) (State, []Effect) {
	switch ev := ev.(type) {
	case InputChanged:
		return inputChanged(s, ev.Raw), nil

	case Submitted:
		if s.Status == StatusQuerying {
			return s, nil
		}
		if !domain.Submittable(s.Query) {
			s.Notice = domain.ValidationNotice()
			return s, nil
		}
		s.Seq++
		s.Status = StatusQuerying
		s.Result = domain.LookupResult{}
		s.Notice = nil
		return s, []Effect{DispatchLookup{Seq: s.Seq, Number: s.Query}}

	case LookupResolved:
		if s.Status != StatusQuerying || ev.Seq != s.Seq || ev.Number != s.Query {
			return s, nil
		}
		return resolved(s, ev.Outcome, now)

	case Cleared:
		return State{Status: StatusIdle, Seq: s.Seq + 1}, nil

	case ContactsLoaded:
		if ev.Err != nil {
			if domain.IsKind(ev.Err, domain.KindPermissionDenied) {
				s.Notice = domain.PermissionNotice(noticeMessage(ev.Err))
			}
			return s, nil
		}
		if !ev.Found {
			return s, nil
		}
		return inputChanged(s, ev.Number), nil
	}
	return s, nil
}

func inputChanged(s State, raw string) State {
	query := domain.Normalize(raw)
	status := StatusComposing
	if query == "" {
		status = StatusIdle
	}
	return State{Status: status, Query: query, Seq: s.Seq + 1}
}

func resolved(s State, out domain.Outcome, now time.Time) (State, []Effect) {
	switch out.Kind {
	case domain.OutcomeTransportError:
		s.Status = StatusComposing
		s.Notice = domain.TransportNotice()
		return s, nil
	case domain.OutcomeInvalidInput:
		s.Status = StatusComposing
		s.Notice = domain.ValidationNotice()
		return s, nil
	}
	if !out.Result.Valid {
		s.Status = StatusComposing
		s.Notice = domain.SemanticNotice()
		return s, nil
	}
	s.Status = StatusResolved
	s.Result = out.Result
	s.Notice = nil
	return s, []Effect{AppendHistory{Record: domain.NewHistoryRecord(s.Query, out.Result, now)}}
}

func noticeMessage(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	return ""
}
