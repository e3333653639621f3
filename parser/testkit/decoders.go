// Package testkit provides instrumented decoders for testing dispatch
// behavior: spies count invocations so tests can prove which decoders ran
// and in what order.
package testkit

import (
	"errors"

	"bindec.io/bindec/parser"
)

// BodySpy is a structural body decode that records every invocation.
// Zero value succeeds with an empty JSON object.
type BodySpy struct {
	Calls   int
	Payload string
	Err     error
}

// Body returns a parser.BodyFunc backed by the spy.
func (s *BodySpy) Body() parser.BodyFunc {
	return func(body []byte) (string, error) {
		s.Calls++
		if s.Err != nil {
			return "", s.Err
		}
		if s.Payload == "" {
			return "{}", nil
		}
		return s.Payload, nil
	}
}

// DecodeSpy is a full custom decode that records every invocation.
type DecodeSpy struct {
	Calls   int
	Outcome parser.Outcome
	Err     error
}

// Decode returns a parser.DecodeFunc backed by the spy.
func (s *DecodeSpy) Decode() parser.DecodeFunc {
	return func(data []byte) (parser.Outcome, error) {
		s.Calls++
		if s.Err != nil {
			return parser.Outcome{}, s.Err
		}
		return s.Outcome, nil
	}
}

// RejectAll returns a body decode that always fails with msg, counting
// invocations through the returned spy.
func RejectAll(msg string) *BodySpy {
	return &BodySpy{Err: errors.New(msg)}
}

// AcceptAll returns a body decode that always succeeds with payload,
// counting invocations through the returned spy.
func AcceptAll(payload string) *BodySpy {
	return &BodySpy{Payload: payload}
}
