package keysvc

import (
	"context"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"

	"xdao.co/cosmoskey/keyid"
)

// Client talks to a Keys gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client KeysClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero. Dial then blocks
	// until the connection is up or the timeout expires.
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
		dialOpts = append(dialOpts, grpc.WithBlock())
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an existing connection. Close closes cc.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewKeysClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Normalize returns the canonical encoding of key as produced by the server.
func (c *Client) Normalize(key *anypb.Any) (*anypb.Any, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	out, err := c.client.Normalize(ctx, key)
	if err != nil {
		return nil, mapRPC(err)
	}
	return out, nil
}

// Fingerprint returns the server-computed key identifier.
func (c *Client) Fingerprint(key *anypb.Any) (cid.Cid, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Fingerprint(ctx, key)
	if err != nil {
		return cid.Undef, mapRPC(err)
	}
	return keyid.Parse(reply.GetValue())
}

// Render returns the JSON form of key.
func (c *Client) Render(key *anypb.Any) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Render(ctx, key)
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Types lists the type URLs the server can decode.
func (c *Client) Types() ([]string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Types(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapRPC(err)
	}
	if reply.GetValue() == "" {
		return nil, nil
	}
	return strings.Split(reply.GetValue(), "\n"), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
