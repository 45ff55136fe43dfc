package keysvc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// UnaryLogger logs one entry per RPC with its method, type URL, status code
// and duration. Rejected keys log at warn level, other failures at error.
func UnaryLogger(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start),
		}
		if a, ok := req.(*anypb.Any); ok {
			fields["type_url"] = a.GetTypeUrl()
		}
		entry := log.WithFields(fields)
		switch {
		case err == nil:
			entry.Debug("rpc ok")
		case isClientFault(err):
			entry.WithError(err).Warn("rpc rejected")
		default:
			entry.WithError(err).Error("rpc failed")
		}
		return resp, err
	}
}

func isClientFault(err error) bool {
	switch status.Code(err) {
	case codes.InvalidArgument, codes.NotFound:
		return true
	default:
		return false
	}
}
