package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"bindec.io/bindec/parser"
)

func asParserError(err error, target **parser.Error) bool {
	return errors.As(err, target)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []parser.Kind{
		parser.KindUnknownSource,
		parser.KindInsufficientData,
		parser.KindDiscriminatorMismatch,
		parser.KindDeserialization,
		parser.KindNoMatch,
		parser.KindInvalidData,
	}
	seen := map[parser.Kind]bool{}
	for _, k := range kinds {
		if k == "" {
			t.Fatalf("empty kind constant")
		}
		if seen[k] {
			t.Fatalf("duplicate kind %q", k)
		}
		seen[k] = true
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := &parser.Error{Kind: parser.KindDeserialization, Message: "bad body"}
	wrapped := fmt.Errorf("while classifying: %w", inner)

	if !parser.IsKind(wrapped, parser.KindDeserialization) {
		t.Fatalf("IsKind should see through fmt.Errorf wrapping")
	}
	if parser.IsKind(wrapped, parser.KindNoMatch) {
		t.Fatalf("IsKind matched the wrong kind")
	}
	if parser.ErrKind(wrapped) != parser.KindDeserialization {
		t.Fatalf("ErrKind = %q", parser.ErrKind(wrapped))
	}
}

func TestErrKindOnForeignError(t *testing.T) {
	if parser.ErrKind(errors.New("plain")) != "" {
		t.Fatalf("foreign errors should report an empty kind")
	}
	if parser.IsKind(nil, parser.KindNoMatch) {
		t.Fatalf("IsKind(nil) should be false")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &parser.Error{Kind: parser.KindNoMatch, Message: "root cause", Cause: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is should reach the cause")
	}
}
