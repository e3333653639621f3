package grpcparse

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bindec.io/bindec/parser"
)

// mapErr translates a classification error into a gRPC status.
//
// The Kind travels as a "<Kind>: <message>" prefix in the status message so
// the client can rebuild the structured error without a custom error proto.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	kind := parser.ErrKind(err)
	msg := string(kind) + ": " + err.Error()
	switch kind {
	case parser.KindUnknownSource:
		return status.Error(codes.FailedPrecondition, msg)
	case parser.KindNoMatch:
		return status.Error(codes.NotFound, msg)
	case parser.KindInsufficientData,
		parser.KindDiscriminatorMismatch,
		parser.KindDeserialization,
		parser.KindInvalidData:
		return status.Error(codes.InvalidArgument, msg)
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// mapRPC rebuilds a structured classification error from a gRPC status.
// Statuses that do not carry a known Kind prefix pass through unchanged.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	kind, msg, found := strings.Cut(st.Message(), ": ")
	if !found {
		return err
	}
	switch k := parser.Kind(kind); k {
	case parser.KindUnknownSource,
		parser.KindInsufficientData,
		parser.KindDiscriminatorMismatch,
		parser.KindDeserialization,
		parser.KindNoMatch,
		parser.KindInvalidData:
		return &parser.Error{Kind: k, Message: msg}
	default:
		return err
	}
}
