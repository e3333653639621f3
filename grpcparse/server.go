package grpcparse

import (
	"context"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"bindec.io/bindec/parser"
)

// Server exposes a set of built parsers over the Parser gRPC service.
// Requests are routed to a parser by the record's source identifier.
type Server struct {
	UnimplementedParserServer

	// Parsers is keyed by provider name. The map is read-only once the
	// server is serving.
	Parsers map[string]*parser.Parser
}

func (s *Server) ClassifyRecord(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	_ = ctx
	if s == nil || len(s.Parsers) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no parsers loaded")
	}
	rec, err := recordFromWire(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	p, perr := s.forSource(rec.Source)
	if perr != nil {
		return nil, mapErr(perr)
	}
	out, err := p.ClassifyRecord(rec)
	if err != nil {
		return nil, mapErr(err)
	}
	return outcomeToWire(out), nil
}

func (s *Server) ClassifyRecords(ctx context.Context, in *structpb.ListValue) (*structpb.ListValue, error) {
	_ = ctx
	if s == nil || len(s.Parsers) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no parsers loaded")
	}
	values := in.GetValues()
	out := make([]*structpb.Value, 0, len(values))
	for _, v := range values {
		rec, err := recordFromWire(v.GetStructValue())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		res := s.classifyOne(rec)
		out = append(out, resultToWire(res))
	}
	return &structpb.ListValue{Values: out}, nil
}

func (s *Server) ClassifyMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	_ = ctx
	if s == nil || len(s.Parsers) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no parsers loaded")
	}
	// Messages carry no source of their own; the request's source field
	// only selects which parser's message decoders to run.
	rec, err := recordFromWire(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	p, perr := s.forSource(rec.Source)
	if perr != nil {
		return nil, mapErr(perr)
	}
	out, err := p.ClassifyMessage(parser.RawMessage{Data: rec.Data})
	if err != nil {
		return nil, mapErr(err)
	}
	return outcomeToWire(out), nil
}

func (s *Server) RecordTypes(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	_ = ctx
	p, perr := s.forSource(in.GetValue())
	if perr != nil {
		return nil, mapErr(perr)
	}
	types := p.RecordTypes()
	values := make([]*structpb.Value, 0, len(types))
	for _, t := range types {
		values = append(values, structpb.NewStringValue(t))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *Server) GetMetadata(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	_ = ctx
	p, perr := s.forSource(in.GetValue())
	if perr != nil {
		return nil, mapErr(perr)
	}
	m, ok := p.Metadata()
	if !ok {
		return nil, status.Error(codes.NotFound, "no metadata attached")
	}
	return metadataToWire(m), nil
}

func (s *Server) classifyOne(rec parser.RawRecord) parser.RecordResult {
	p, perr := s.forSource(rec.Source)
	if perr != nil {
		return parser.RecordResult{Err: perr}
	}
	out, err := p.ClassifyRecord(rec)
	return parser.RecordResult{Outcome: out, Err: err}
}

// forSource selects the parser claiming the given source identifier.
// Iteration is over sorted provider names so ties (misconfigured duplicate
// sources) resolve the same way every time.
func (s *Server) forSource(source string) (*parser.Parser, error) {
	if s == nil {
		return nil, &parser.Error{
			Kind:    parser.KindUnknownSource,
			Message: "no parser registered for source " + source,
			Actual:  source,
		}
	}
	names := make([]string, 0, len(s.Parsers))
	for name := range s.Parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p := s.Parsers[name]; p.CanHandle(source, nil) {
			return p, nil
		}
	}
	return nil, &parser.Error{
		Kind:    parser.KindUnknownSource,
		Message: "no parser registered for source " + source,
		Actual:  source,
	}
}
