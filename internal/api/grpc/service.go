package grpc

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/chart"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AppService can run insights query for github link.
type AppService interface {
	Insights(ctx context.Context, input string) (*app.Report, error)
}

// Service implements InsightsServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ InsightsServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// Query calls service and returns dashboard as reply.
func (s *Service) Query(ctx context.Context, r *wrapperspb.StringValue) (*structpb.Struct, error) {
	report, err := s.appService.Insights(ctx, r.GetValue())
	if err != nil {
		return nil, statusError(err)
	}

	reply, err := dashboardToStruct(chart.Build(report))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding reply: %v", err)
	}

	return reply, nil
}

func statusError(err error) error {
	var te *app.TransportError
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsNotFoundError(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &te) && te.IsUpstreamNotFound():
		return status.Error(codes.NotFound, "not found on github")
	case app.IsTransportError(err):
		return status.Error(codes.Unavailable, "github request failed")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func dashboardToStruct(d chart.Dashboard) (*structpb.Struct, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	s := new(structpb.Struct)
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, err
	}

	return s, nil
}

func structToDashboard(s *structpb.Struct) (chart.Dashboard, error) {
	var d chart.Dashboard
	b, err := protojson.Marshal(s)
	if err != nil {
		return d, err
	}
	err = json.Unmarshal(b, &d)

	return d, err
}
