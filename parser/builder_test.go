package parser_test

import (
	"testing"

	"bindec.io/bindec/parser"
	"bindec.io/bindec/parser/testkit"
)

func TestRecordTypesInRegistrationOrder(t *testing.T) {
	p := parser.NewBuilder(testSource).
		RegisterUntaggedRecord("Alpha", testkit.AcceptAll("{}").Body()).
		RegisterUntaggedRecord("Beta", testkit.RejectAll("x").Body()).
		RegisterUntaggedRecord("Gamma", testkit.AcceptAll("{}").Body()).
		Build()

	got := p.RecordTypes()
	want := []string{"Alpha", "Beta", "Gamma"}
	if len(got) != len(want) {
		t.Fatalf("RecordTypes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RecordTypes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMessageTypesInRegistrationOrder(t *testing.T) {
	p := parser.NewBuilder(testSource).
		RegisterUntaggedMessage("ping", testkit.AcceptAll("{}").Body()).
		RegisterUntaggedMessage("pong", testkit.AcceptAll("{}").Body()).
		Build()

	got := p.MessageTypes()
	if len(got) != 2 || got[0] != "ping" || got[1] != "pong" {
		t.Fatalf("MessageTypes = %v", got)
	}
}

func TestMetadataPassThrough(t *testing.T) {
	p := parser.NewBuilder(testSource).
		WithMetadata(parser.Metadata{Name: "Demo"}).
		Build()

	m, ok := p.Metadata()
	if !ok {
		t.Fatalf("Metadata() reported none attached")
	}
	if m.Name != "Demo" || m.Source != "" || m.ReferenceURL != "" || m.Version != "" {
		t.Fatalf("Metadata = %+v, want only Name set", m)
	}
}

func TestMetadataAbsent(t *testing.T) {
	p := parser.NewBuilder(testSource).Build()
	if _, ok := p.Metadata(); ok {
		t.Fatalf("Metadata() should report absence when never attached")
	}
}

func TestBuilderConsumedByBuild(t *testing.T) {
	b := parser.NewBuilder(testSource)
	b.Build()

	assertPanics(t, "Build after Build", func() { b.Build() })
	assertPanics(t, "Register after Build", func() {
		b.RegisterUntaggedRecord("Late", testkit.AcceptAll("{}").Body())
	})
	assertPanics(t, "WithMetadata after Build", func() {
		b.WithMetadata(parser.Metadata{Name: "late"})
	})
}

func TestBuilderDiscriminatorIsCopied(t *testing.T) {
	disc := []byte{0xAB, 0xCD}
	p := parser.NewBuilder(testSource).
		RegisterPrefixedRecord("Tagged", disc, testkit.AcceptAll("{}").Body()).
		Build()

	// Mutating the caller's slice after registration must not affect matching.
	disc[0] = 0x00
	out, err := p.ClassifyRecord(parser.RawRecord{Source: testSource, Data: []byte{0xAB, 0xCD}})
	if err != nil {
		t.Fatalf("ClassifyRecord after caller mutation: %v", err)
	}
	if out.TypeName != "Tagged" {
		t.Fatalf("TypeName = %q", out.TypeName)
	}
}

func TestOutcomeDiscriminatorIsCopied(t *testing.T) {
	p := parser.NewBuilder(testSource).
		RegisterPrefixedRecord("Tagged", []byte{0xCA, 0xFE}, testkit.AcceptAll("{}").Body()).
		Build()
	data := []byte{0xCA, 0xFE, 0x01}

	out, err := p.ClassifyRecord(parser.RawRecord{Source: testSource, Data: data})
	if err != nil {
		t.Fatalf("ClassifyRecord: %v", err)
	}

	// Mutating the echoed slice must not corrupt the matching state.
	out.Discriminator[0] = 0x00
	again, err := p.ClassifyRecord(parser.RawRecord{Source: testSource, Data: data})
	if err != nil {
		t.Fatalf("ClassifyRecord after outcome mutation: %v", err)
	}
	if string(again.Discriminator) != string([]byte{0xCA, 0xFE}) {
		t.Fatalf("Discriminator echo = %x, want ca fe", again.Discriminator)
	}
}

func TestSourceAccessor(t *testing.T) {
	p := parser.NewBuilder("Prog1111111111111111111111111111").Build()
	if p.Source() != "Prog1111111111111111111111111111" {
		t.Fatalf("Source = %q", p.Source())
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
