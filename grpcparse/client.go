package grpcparse

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"bindec.io/bindec/parser"
)

// Client consumes a remote Parser service with the same classify surface
// a local parser.Parser offers.
type Client struct {
	cc     *grpc.ClientConn
	client ParserClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout bounds the initial dial when non-zero. Setting it makes the
	// dial synchronous: Dial waits for the connection to be ready instead
	// of returning immediately and connecting in the background.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
		// DialContext is non-blocking by default, which would make the
		// deadline above a no-op.
		dialOpts = append(dialOpts, grpc.WithBlock())
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewParserClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) ClassifyRecord(rec parser.RawRecord) (parser.Outcome, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.ClassifyRecord(ctx, recordToWire(rec))
	if err != nil {
		return parser.Outcome{}, mapRPC(err)
	}
	return outcomeFromWire(reply)
}

func (c *Client) ClassifyRecords(recs []parser.RawRecord) ([]parser.RecordResult, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	values := make([]*structpb.Value, 0, len(recs))
	for _, rec := range recs {
		values = append(values, structpb.NewStructValue(recordToWire(rec)))
	}
	reply, err := c.client.ClassifyRecords(ctx, &structpb.ListValue{Values: values})
	if err != nil {
		return nil, mapRPC(err)
	}
	out := make([]parser.RecordResult, 0, len(reply.GetValues()))
	for _, v := range reply.GetValues() {
		res, err := resultFromWire(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// ClassifyMessage runs the message decoders of the parser serving source.
func (c *Client) ClassifyMessage(source string, msg parser.RawMessage) (parser.Outcome, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.ClassifyMessage(ctx, recordToWire(parser.RawRecord{Source: source, Data: msg.Data}))
	if err != nil {
		return parser.Outcome{}, mapRPC(err)
	}
	return outcomeFromWire(reply)
}

func (c *Client) RecordTypes(source string) ([]string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.RecordTypes(ctx, wrapperspb.String(source))
	if err != nil {
		return nil, mapRPC(err)
	}
	out := make([]string, 0, len(reply.GetValues()))
	for _, v := range reply.GetValues() {
		out = append(out, v.GetStringValue())
	}
	return out, nil
}

// GetMetadata fetches the metadata of the parser serving source.
// ok is false when the parser has none attached.
func (c *Client) GetMetadata(source string) (m parser.Metadata, ok bool, err error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.GetMetadata(ctx, wrapperspb.String(source))
	if err != nil {
		if st, isStatus := status.FromError(err); isStatus && st.Code() == codes.NotFound && parser.ErrKind(mapRPC(err)) == "" {
			return parser.Metadata{}, false, nil
		}
		return parser.Metadata{}, false, mapRPC(err)
	}
	return metadataFromWire(reply), true, nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
