package keysvc

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/cosmoskey/keyid"
	"xdao.co/cosmoskey/typeurl"
)

// Server exposes the typeurl registry over the Keys gRPC service. Only codecs
// linked into the binary are served.
type Server struct {
	UnimplementedKeysServer
}

func (s *Server) Normalize(ctx context.Context, in *anypb.Any) (*anypb.Any, error) {
	_ = ctx
	_, out, err := canonical(in)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Server) Fingerprint(ctx context.Context, in *anypb.Any) (*wrapperspb.StringValue, error) {
	_ = ctx
	_, out, err := canonical(in)
	if err != nil {
		return nil, err
	}
	id, err := keyid.Of(out.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, "cid computation failed")
	}
	return wrapperspb.String(id.String()), nil
}

func (s *Server) Render(ctx context.Context, in *anypb.Any) (*wrapperspb.StringValue, error) {
	_ = ctx
	v, _, err := canonical(in)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.String(string(b)), nil
}

func (s *Server) Types(ctx context.Context, in *emptypb.Empty) (*wrapperspb.StringValue, error) {
	_ = ctx
	return wrapperspb.String(strings.Join(typeurl.URLs(), "\n")), nil
}

// canonical decodes in through the registry and re-encodes the typed value.
func canonical(in *anypb.Any) (any, *anypb.Any, error) {
	v, err := typeurl.Unpack(in)
	if err != nil {
		return nil, nil, mapErr(err)
	}
	out, err := typeurl.Pack(in.GetTypeUrl(), v)
	if err != nil {
		return nil, nil, status.Error(codes.Internal, err.Error())
	}
	return v, out, nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case typeurl.IsUnknownType(err):
		return status.Error(codes.NotFound, err.Error())
	default:
		// Codecs only fail on malformed wire bytes or length violations.
		return status.Error(codes.InvalidArgument, err.Error())
	}
}
