package parse

import (
	"errors"
)

// State is a bidirectional cursor over a token list. A new State is positioned before the first token.
type State interface {
	Pos() int                      // Get the current position (-1 before the first Advance)
	Args() []string                // Get the entire token list
	CurrentArg() string            // Get the token at the cursor or "" when not on a token
	ArgAt(pos int) (string, error) // Get the token at a specific position
	Peek() string                  // Peek at the next token
	Remaining() []string           // Get the tokens after the cursor
	Advance() bool                 // Move forward, reporting whether a token exists
	Retreat() bool                 // Move back one token, reporting whether the cursor moved
	HasMore() bool                 // Report whether Advance would succeed
	Len() int                      // Gets the length of the token list
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State instance with the given token list
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Args returns the entire token list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current token
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next token, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Retreat moves back one token. Retreating from the first token returns the cursor
// to its initial position; retreating from there does nothing and returns false.
func (s *DefaultState) Retreat() bool {
	if s.pos < 0 {
		return false
	}
	s.pos--
	return true
}

// HasMore reports whether a token follows the cursor
func (s *DefaultState) HasMore() bool {
	return s.pos+1 < len(s.args)
}

// Peek returns the next token without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Remaining returns the tokens after the cursor
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}

	return s.args[s.pos+1:]
}

// ArgAt returns the token at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Len returns the length of the token list
func (s *DefaultState) Len() int {
	return len(s.args)
}
