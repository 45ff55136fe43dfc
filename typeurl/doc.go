// Package typeurl maps protobuf type URLs (as carried in google.protobuf.Any)
// to decode/encode function pairs.
//
// Codec packages own their identifier and conversions and register them here;
// this package only routes by URL and holds no type-specific logic.
package typeurl
