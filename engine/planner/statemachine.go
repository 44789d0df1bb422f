// Package planner implements the transfer-planner modal described in
// spec.md §4.8: an explicit state machine walking a docked ship through
// destination selection, quoting, porkchop exploration, and a
// feasibility-gated confirmation.
package planner

import "orbitalmap/engine/model"

// State is one step of the transfer planner flow.
type State int

const (
	StateIdle State = iota
	StateDestination
	StateQuoted
	StatePorkchop
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateDestination:
		return "destination"
	case StateQuoted:
		return "quoted"
	case StatePorkchop:
		return "porkchop"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "idle"
	}
}

// Event drives a State transition.
type Event int

const (
	EventSelectDest Event = iota
	EventQuoteReturned
	EventPorkchopReturned
	EventAdjustTof
	EventConfirm
	EventCancel
)

// Quote holds the planner's current quote and porkchop data, carried
// across states as the player refines their selection.
type Quote struct {
	Path           []string
	LambertDeltaV  float64
	PhaseDeltaV    float64
	TofS           float64
	PhaseAngleRad  float64
	SynodicPeriodS float64
	NextWindowS    float64
}

// Planner is the transfer-planner modal's state machine.
type Planner struct {
	State State

	ShipID   string
	FromID   string
	ToID     string
	Quote    Quote
	Grid     *Porkchop
	Selected TofSelection

	LastError string
}

// TofSelection is the player's current point on the porkchop grid: a
// departure-time column index and a time-of-flight row index.
type TofSelection struct {
	DepartureIndex int
	TofIndex       int
}

// New starts a planner for a docked ship, optionally with a
// pre-selected destination (spec.md §4.8: "accepts a docked ship and
// optional pre-selected destination").
func New(ship model.Ship, presetDestID string) *Planner {
	p := &Planner{State: StateIdle, ShipID: ship.ID, FromID: ship.LocationID}
	if presetDestID != "" {
		p.ToID = presetDestID
		p.State = StateDestination
	}
	return p
}

// Apply advances the state machine on event, mutating the planner in
// place. Events invalid for the current state are no-ops, matching a
// modal UI that simply ignores stray input.
func (p *Planner) Apply(event Event, payload interface{}) {
	switch event {
	case EventSelectDest:
		destID, ok := payload.(string)
		if !ok || p.State == StateSubmitting {
			return
		}
		p.ToID = destID
		p.State = StateDestination

	case EventQuoteReturned:
		q, ok := payload.(Quote)
		if !ok || p.State != StateDestination {
			return
		}
		p.Quote = q
		p.State = StateQuoted

	case EventPorkchopReturned:
		grid, ok := payload.(*Porkchop)
		if !ok || p.State != StateQuoted {
			return
		}
		p.Grid = grid
		p.State = StatePorkchop

	case EventAdjustTof:
		sel, ok := payload.(TofSelection)
		if !ok || p.State != StatePorkchop {
			return
		}
		p.Selected = sel

	case EventConfirm:
		if p.State != StatePorkchop && p.State != StateQuoted {
			return
		}
		p.State = StateSubmitting

	case EventCancel:
		*p = Planner{State: StateIdle, ShipID: p.ShipID, FromID: p.FromID}
	}
}

// Submitted marks a successful POST /api/ships/:id/transfer.
func (p *Planner) Submitted() {
	if p.State == StateSubmitting {
		p.State = StateSubmitted
	}
}

// Failed records a server error string and returns the planner to its
// prior porkchop/quote state so the confirm control re-enables
// (spec.md §7: "the error string from the server response body is
// shown inline on the action button, and the button re-enables").
func (p *Planner) Failed(detail string) {
	if p.State != StateSubmitting {
		return
	}
	p.LastError = detail
	if p.Grid != nil {
		p.State = StatePorkchop
	} else {
		p.State = StateQuoted
	}
}
