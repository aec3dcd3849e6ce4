package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// Server can start grpc server handling insights requests.
type Server struct {
	service InsightsServer
	address string
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(service InsightsServer, address string, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		l:       l,
	}
}

// Run runs the grpc server until ctx is done.
// Returns error when failing to open tcp connection.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("starting tcp listener: %w", err)
	}

	return s.serve(ctx, lis)
}

func (s *Server) serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer()
	RegisterInsightsServer(srv, s.service)

	errc := make(chan error, 1)
	go func() {
		s.l.Infof("starting grpc server, listening on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("running grpc server: %w", err)
	case <-ctx.Done():
	}

	srv.GracefulStop()
	s.l.Info("grpc server shut down")

	return nil
}
