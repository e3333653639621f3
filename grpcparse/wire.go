package grpcparse

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"bindec.io/bindec/parser"
)

// Wire field names. Raw bytes travel base64-encoded because
// google.protobuf.Struct has no bytes value type (and it matches how the
// acquisition layers this service fronts deliver record data anyway).
const (
	fieldSource        = "source"
	fieldData          = "data"
	fieldTypeName      = "typeName"
	fieldPayload       = "payload"
	fieldDiscriminator = "discriminator"
	fieldOutcome       = "outcome"
	fieldError         = "error"
	fieldKind          = "kind"
	fieldMessage       = "message"
)

func recordToWire(rec parser.RawRecord) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldSource: structpb.NewStringValue(rec.Source),
		fieldData:   structpb.NewStringValue(base64.StdEncoding.EncodeToString(rec.Data)),
	}}
}

func recordFromWire(s *structpb.Struct) (parser.RawRecord, error) {
	source := s.GetFields()[fieldSource].GetStringValue()
	data, err := base64.StdEncoding.DecodeString(s.GetFields()[fieldData].GetStringValue())
	if err != nil {
		return parser.RawRecord{}, fmt.Errorf("record data is not valid base64: %w", err)
	}
	return parser.RawRecord{Source: source, Data: data}, nil
}

func outcomeToWire(out parser.Outcome) *structpb.Struct {
	fields := map[string]*structpb.Value{
		fieldTypeName: structpb.NewStringValue(out.TypeName),
		fieldPayload:  structpb.NewStringValue(out.Payload),
	}
	if out.Discriminator != nil {
		fields[fieldDiscriminator] = structpb.NewStringValue(
			base64.StdEncoding.EncodeToString(out.Discriminator))
	}
	return &structpb.Struct{Fields: fields}
}

func outcomeFromWire(s *structpb.Struct) (parser.Outcome, error) {
	out := parser.Outcome{
		TypeName: s.GetFields()[fieldTypeName].GetStringValue(),
		Payload:  s.GetFields()[fieldPayload].GetStringValue(),
	}
	if v, ok := s.GetFields()[fieldDiscriminator]; ok {
		disc, err := base64.StdEncoding.DecodeString(v.GetStringValue())
		if err != nil {
			return parser.Outcome{}, fmt.Errorf("discriminator is not valid base64: %w", err)
		}
		out.Discriminator = disc
	}
	return out, nil
}

func errToWire(err error) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldKind:    structpb.NewStringValue(string(parser.ErrKind(err))),
		fieldMessage: structpb.NewStringValue(err.Error()),
	}}
}

func resultToWire(res parser.RecordResult) *structpb.Value {
	if res.Err != nil {
		return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			fieldError: structpb.NewStructValue(errToWire(res.Err)),
		}})
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		fieldOutcome: structpb.NewStructValue(outcomeToWire(res.Outcome)),
	}})
}

func resultFromWire(v *structpb.Value) (parser.RecordResult, error) {
	s := v.GetStructValue()
	if e, ok := s.GetFields()[fieldError]; ok {
		es := e.GetStructValue()
		return parser.RecordResult{Err: &parser.Error{
			Kind:    parser.Kind(es.GetFields()[fieldKind].GetStringValue()),
			Message: es.GetFields()[fieldMessage].GetStringValue(),
		}}, nil
	}
	out, err := outcomeFromWire(s.GetFields()[fieldOutcome].GetStructValue())
	if err != nil {
		return parser.RecordResult{}, err
	}
	return parser.RecordResult{Outcome: out}, nil
}

func metadataToWire(m parser.Metadata) *structpb.Struct {
	fields := map[string]*structpb.Value{}
	if m.Name != "" {
		fields["name"] = structpb.NewStringValue(m.Name)
	}
	if m.Source != "" {
		fields["source"] = structpb.NewStringValue(m.Source)
	}
	if m.ReferenceURL != "" {
		fields["referenceURL"] = structpb.NewStringValue(m.ReferenceURL)
	}
	if m.Version != "" {
		fields["version"] = structpb.NewStringValue(m.Version)
	}
	return &structpb.Struct{Fields: fields}
}

func metadataFromWire(s *structpb.Struct) parser.Metadata {
	f := s.GetFields()
	return parser.Metadata{
		Name:         f["name"].GetStringValue(),
		Source:       f["source"].GetStringValue(),
		ReferenceURL: f["referenceURL"].GetStringValue(),
		Version:      f["version"].GetStringValue(),
	}
}
