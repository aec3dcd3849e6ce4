package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/chart"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client queries remote Insights service.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient creates client for server at address. Connection is not encrypted.
// Additional dial options can be passed, ie. custom dialer.
func NewClient(address string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating grpc client: %w", err)
	}

	return &Client{conn: conn}, nil
}

// Query returns dashboard for github link.
// Status errors are converted back to app errors, so they can be checked with app.Is* helpers.
func (c *Client) Query(ctx context.Context, input string) (chart.Dashboard, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, queryMethod, wrapperspb.String(input), reply); err != nil {
		return chart.Dashboard{}, appError(err)
	}

	d, err := structToDashboard(reply)
	if err != nil {
		return chart.Dashboard{}, fmt.Errorf("decoding reply: %w", err)
	}

	return d, nil
}

// Close closes client connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func appError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return app.InvalidRequestError(st.Message())
	case codes.NotFound:
		return app.NotFoundError(st.Message())
	case codes.Unavailable:
		return &app.TransportError{Op: "querying insights", Err: errors.New(st.Message())}
	default:
		return fmt.Errorf("querying insights: %w", err)
	}
}
