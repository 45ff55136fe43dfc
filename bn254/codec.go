package bn254

import (
	"fmt"

	"xdao.co/cosmoskey/typeurl"
)

func init() {
	typeurl.MustRegister(typeurl.Codec{
		URL:         TypeURL,
		Description: "BN254 public key (32 bytes)",
		Decode: func(value []byte) (any, error) {
			var k PubKey
			if err := k.Unmarshal(value); err != nil {
				return nil, err
			}
			return k, nil
		},
		Encode: func(v any) ([]byte, error) {
			switch k := v.(type) {
			case PubKey:
				return k.Marshal()
			case *PubKey:
				if k == nil {
					return nil, fmt.Errorf("%w: nil *bn254.PubKey", typeurl.ErrTypeMismatch)
				}
				return k.Marshal()
			default:
				return nil, fmt.Errorf("%w: %T is not a bn254.PubKey", typeurl.ErrTypeMismatch, v)
			}
		},
	})
}
