package typeurl

import (
	"fmt"
	"sort"
	"sync"

	"google.golang.org/protobuf/types/known/anypb"
)

// Codec binds a type URL to the functions that convert between a validated
// in-process value and the binary wire message.
//
// Codecs typically register themselves in init():
//
//	typeurl.MustRegister(typeurl.Codec{ ... })
//
// The binary must import the codec package for registration to occur.
type Codec struct {
	URL         string
	Description string

	// Decode validates wire bytes and returns the typed value.
	Decode func(value []byte) (any, error)

	// Encode returns the wire bytes for v. It returns ErrTypeMismatch when v
	// is not the codec's type.
	Encode func(v any) ([]byte, error)
}

var (
	mu     sync.RWMutex
	codecs = map[string]Codec{}
)

// Register registers a codec.
func Register(c Codec) error {
	if c.URL == "" {
		return fmt.Errorf("typeurl: codec URL is required")
	}
	if c.URL[0] != '/' {
		return fmt.Errorf("typeurl: codec URL %q must start with '/'", c.URL)
	}
	if c.Decode == nil {
		return fmt.Errorf("typeurl: codec %q missing Decode", c.URL)
	}
	if c.Encode == nil {
		return fmt.Errorf("typeurl: codec %q missing Encode", c.URL)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := codecs[c.URL]; exists {
		return fmt.Errorf("typeurl: codec %q already registered", c.URL)
	}
	codecs[c.URL] = c
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(c Codec) {
	if err := Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the codec registered for url.
func Lookup(url string) (Codec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := codecs[url]
	return c, ok
}

// List returns all codecs sorted by URL.
func List() []Codec {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Codec, 0, len(codecs))
	for _, c := range codecs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out
}

// URLs returns the registered type URLs, sorted.
func URLs() []string {
	cs := List()
	u := make([]string, 0, len(cs))
	for _, c := range cs {
		u = append(u, c.URL)
	}
	return u
}

// Decode decodes value using the codec registered for url.
func Decode(url string, value []byte) (any, error) {
	c, ok := Lookup(url)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, url)
	}
	return c.Decode(value)
}

// Unpack decodes the payload of an Any through its type URL.
func Unpack(a *anypb.Any) (any, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil Any", ErrUnknownType)
	}
	return Decode(a.GetTypeUrl(), a.GetValue())
}

// Pack encodes v with the codec registered for url and wraps it in an Any.
func Pack(url string, v any) (*anypb.Any, error) {
	c, ok := Lookup(url)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, url)
	}
	b, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return &anypb.Any{TypeUrl: url, Value: b}, nil
}
