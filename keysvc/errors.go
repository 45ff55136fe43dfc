package keysvc

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/cosmoskey/typeurl"
)

// ErrInvalidKey is returned by Client when the server rejected the key bytes.
var ErrInvalidKey = errors.New("keysvc: invalid key")

func IsInvalidKey(err error) bool { return errors.Is(err, ErrInvalidKey) }

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", typeurl.ErrUnknownType, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidKey, st.Message())
	default:
		return err
	}
}
