// Package atn implements the generic Augmented Transition Network
// runner shared by layers 2 through 5. Each layer supplies its own
// Network (states and guarded arcs) and Builder; the runner itself
// knows nothing about noun phrases, verb phrases, or any other concrete
// phrase type. Arcs at a state are tried in slice order, so a network's
// constructor is responsible for ordering guards most-specific-first:
// that ordering is what keeps one ATN's own internal walk
// non-ambiguous.
package atn

import "github.com/go-latn/latn/pkg/stream"

// State is an opaque handle into a Network's state set.
type State int

// Builder is the in-progress phrase a Network run is constructing. The
// runner treats it as an opaque value threaded through every Action;
// each layer supplies its own concrete type.
type Builder interface{}

// Guard reports whether an arc may be taken given the next unconsumed
// token.
type Guard func(tok stream.Token) bool

// Action performs this arc's side effect on the in-progress builder.
type Action func(b Builder, tok stream.Token)

// Arc is one guarded transition out of a state.
type Arc struct {
	Guard  Guard
	Action Action
	Next   State
}

// Network is a directed graph of guarded arcs: a start state, a set of
// accepting states, and an adjacency list of arcs per state.
type Network struct {
	Start     State
	Accepting map[State]bool
	Arcs      map[State][]Arc
}

// NewNetwork returns an empty network rooted at start.
func NewNetwork(start State) *Network {
	return &Network{Start: start, Accepting: map[State]bool{}, Arcs: map[State][]Arc{}}
}

// AddArc appends an arc to from's arc list, in priority order (most
// specific guard first).
func (n *Network) AddArc(from State, arc Arc) {
	n.Arcs[from] = append(n.Arcs[from], arc)
}

// Accept marks s as an accepting state.
func (n *Network) Accept(s State) {
	n.Accepting[s] = true
}

// Run walks net from its start state against the tokens at c's current
// position, mutating b via each taken arc's Action. It is a
// non-backtracking left-to-right walker: at each state it takes the
// first arc whose guard matches the next token and stops as soon as no
// arc matches. It returns whether the walk ended in an accepting state;
// callers that need to try an alternative parse on failure save
// c.Position() beforehand and rewind themselves.
func Run(net *Network, c *stream.Cursor, b Builder) bool {
	state := net.Start
	for {
		tok, hasTok := c.Peek()
		if !hasTok {
			return net.Accepting[state]
		}

		var taken *Arc
		for i, arc := range net.Arcs[state] {
			if arc.Guard(tok) {
				taken = &net.Arcs[state][i]
				break
			}
		}
		if taken == nil {
			return net.Accepting[state]
		}

		c.Next()
		taken.Action(b, tok)
		state = taken.Next
	}
}
