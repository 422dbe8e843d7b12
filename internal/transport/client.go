package transport

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/cxm940188/kafka-ui/api/proto/v1"
	"github.com/cxm940188/kafka-ui/internal/query"
)

type Client struct {
	cc   *grpc.ClientConn
	tail pb.TailClient
}

func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	cc, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, tail: pb.NewTailClient(cc)}, nil
}

// Tail runs q remotely and hands every event to fn. Returning an error from
// fn cancels the run and is returned as is.
func (c *Client) Tail(ctx context.Context, q query.Query, fn func(*pb.TailEvent) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.tail.Tail(ctx, requestFromQuery(q))
	if err != nil {
		return err
	}
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}

func (c *Client) Close() error { return c.cc.Close() }
