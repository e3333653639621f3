package grpcparse

import (
	"context"
	"encoding/binary"
	"net"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"bindec.io/bindec/discrim"
	"bindec.io/bindec/parser"
	"bindec.io/bindec/parsers/tokenledger"
)

func startServer(t *testing.T) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterParserServer(srv, &Server{Parsers: map[string]*parser.Parser{
		"tokenledger": tokenledger.New(),
	}})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })

	return &Client{cc: cc, client: NewParserClient(cc), Timeout: 2 * time.Second}
}

func vaultRecord(balance uint64) parser.RawRecord {
	d := discrim.Derive("account", "Vault")
	data := append([]byte{}, d[:]...)
	data = append(data, make([]byte, 32)...)
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], balance)
	data = append(data, amt[:]...)
	data = append(data, 0, 0xFF)
	return parser.RawRecord{Source: tokenledger.Source, Data: data}
}

func TestClassifyRecordRoundTrip(t *testing.T) {
	client := startServer(t)

	out, err := client.ClassifyRecord(vaultRecord(777))
	if err != nil {
		t.Fatalf("ClassifyRecord: %v", err)
	}
	if out.TypeName != "Vault" {
		t.Fatalf("TypeName = %q", out.TypeName)
	}
	if !strings.Contains(out.Payload, `"balance":777`) {
		t.Fatalf("Payload = %q", out.Payload)
	}
	want := discrim.Derive("account", "Vault")
	if string(out.Discriminator) != string(want[:]) {
		t.Fatalf("Discriminator = %x, want %x", out.Discriminator, want)
	}
}

func TestClassifyRecordUnknownSourceOverWire(t *testing.T) {
	client := startServer(t)

	rec := vaultRecord(1)
	rec.Source = "NotServedHere"
	_, err := client.ClassifyRecord(rec)
	if !parser.IsKind(err, parser.KindUnknownSource) {
		t.Fatalf("err = %v, want UnknownSource to survive the wire", err)
	}
}

func TestClassifyRecordNoMatchOverWire(t *testing.T) {
	client := startServer(t)

	_, err := client.ClassifyRecord(parser.RawRecord{Source: tokenledger.Source, Data: []byte{1, 2, 3, 4}})
	if !parser.IsKind(err, parser.KindNoMatch) {
		t.Fatalf("err = %v, want NoMatch to survive the wire", err)
	}
}

func TestClassifyRecordsBatchOverWire(t *testing.T) {
	client := startServer(t)

	results, err := client.ClassifyRecords([]parser.RawRecord{
		vaultRecord(10),
		{Source: tokenledger.Source, Data: []byte{9, 9, 9, 9}},
	})
	if err != nil {
		t.Fatalf("ClassifyRecords: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Err != nil || results[0].Outcome.TypeName != "Vault" {
		t.Fatalf("result 0: %+v", results[0])
	}
	if !parser.IsKind(results[1].Err, parser.KindNoMatch) {
		t.Fatalf("result 1: err = %v, want NoMatch", results[1].Err)
	}
}

func TestClassifyMessageOverWire(t *testing.T) {
	client := startServer(t)

	d := discrim.Derive("global", "transfer")
	data := append([]byte{}, d[:]...)
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], 42)
	data = append(data, amt[:]...)

	out, err := client.ClassifyMessage(tokenledger.Source, parser.RawMessage{Data: data})
	if err != nil {
		t.Fatalf("ClassifyMessage: %v", err)
	}
	if out.TypeName != "transfer" || !strings.Contains(out.Payload, `"amount":42`) {
		t.Fatalf("out = %+v", out)
	}
}

func TestRecordTypesOverWire(t *testing.T) {
	client := startServer(t)

	types, err := client.RecordTypes(tokenledger.Source)
	if err != nil {
		t.Fatalf("RecordTypes: %v", err)
	}
	if len(types) != 2 || types[0] != "Vault" || types[1] != "LegacyState" {
		t.Fatalf("RecordTypes = %v", types)
	}
}

func TestGetMetadataOverWire(t *testing.T) {
	client := startServer(t)

	m, ok, err := client.GetMetadata(tokenledger.Source)
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if !ok {
		t.Fatalf("expected metadata")
	}
	if m.Name != "Token Ledger" || m.Source != tokenledger.Source {
		t.Fatalf("Metadata = %+v", m)
	}
}

func TestDialTimeoutBoundsUnreachableTarget(t *testing.T) {
	// Port 1 is reserved and not listening; a bounded dial must give up at
	// the deadline rather than hand back a client that never connects.
	start := time.Now()
	client, err := Dial("127.0.0.1:1", DialOptions{Timeout: 250 * time.Millisecond})
	if err == nil {
		_ = client.Close()
		t.Fatalf("Dial to an unreachable target succeeded")
	}
	if took := time.Since(start); took > 5*time.Second {
		t.Fatalf("Dial did not respect the timeout, took %v", took)
	}
}

func TestGetMetadataAbsent(t *testing.T) {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	bare := parser.NewBuilder("BareSource").Build()
	RegisterParserServer(srv, &Server{Parsers: map[string]*parser.Parser{"bare": bare}})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })
	client := &Client{cc: cc, client: NewParserClient(cc), Timeout: 2 * time.Second}

	_, ok, err := client.GetMetadata("BareSource")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if ok {
		t.Fatalf("expected no metadata")
	}
}
