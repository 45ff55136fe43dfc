// Package keysvc serves key validation over gRPC.
//
// Keys arrive as google.protobuf.Any and are decoded through the typeurl
// registry, so the server handles exactly the codecs linked into its binary
// (blank-import the codec packages, e.g. xdao.co/cosmoskey/bn254).
package keysvc
