// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"code.hybscloud.com/parsing"
)

// RequestData is structured routing input: a method and path components.
// Parsers consume the method by clearing it and path components from the front.
type RequestData struct {
	Method string
	Path   []string
}

// NewRequestData splits a slash-separated path into components.
func NewRequestData(method, path string) RequestData {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return RequestData{Method: method, Path: parts}
}

// Len reports the number of unconsumed path components.
func (r RequestData) Len() int { return len(r.Path) }

// String renders the request as "METHOD /a/b".
func (r RequestData) String() string {
	return r.Method + " /" + strings.Join(r.Path, "/")
}

// RouteKind names a route.
type RouteKind int

const (
	Home RouteKind = iota
	ContactUs
	Episodes
	Episode
	EpisodeComments
)

func (k RouteKind) String() string {
	switch k {
	case Home:
		return "home"
	case ContactUs:
		return "contactUs"
	case Episodes:
		return "episodes"
	case Episode:
		return "episode"
	case EpisodeComments:
		return "episodeComments"
	}
	return fmt.Sprintf("RouteKind(%d)", int(k))
}

// Route is a recognized request. ID is set for Episode and EpisodeComments.
type Route struct {
	Kind RouteKind
	ID   int
}

// method matches the request method.
type method string

func (m method) Parse(in *RequestData) (parsing.Void, error) {
	if !strings.EqualFold(in.Method, string(m)) {
		return parsing.Void{}, &parsing.Error{Msg: fmt.Sprintf("expected method %s", string(m)), Remaining: in.Len()}
	}
	in.Method = ""
	return parsing.Void{}, nil
}

func (m method) Print(_ parsing.Void, in *RequestData) error {
	in.Method = string(m)
	return nil
}

// segment matches one literal path component.
type segment string

func (s segment) Parse(in *RequestData) (parsing.Void, error) {
	if len(in.Path) == 0 || in.Path[0] != string(s) {
		return parsing.Void{}, &parsing.Error{Msg: fmt.Sprintf("expected path component %q", string(s)), Remaining: in.Len()}
	}
	in.Path = in.Path[1:]
	return parsing.Void{}, nil
}

func (s segment) Print(_ parsing.Void, in *RequestData) error {
	in.Path = append(in.Path, string(s))
	return nil
}

// intSegment parses one path component as an int.
type intSegment struct{}

func (intSegment) Parse(in *RequestData) (int, error) {
	if len(in.Path) == 0 {
		return 0, &parsing.Error{Msg: "expected integer path component", Remaining: 0}
	}
	n, err := parsing.ParseAll(parsing.Int[string](), in.Path[0])
	if err != nil {
		return 0, err
	}
	in.Path = in.Path[1:]
	return n, nil
}

func (intSegment) Print(n int, in *RequestData) error {
	in.Path = append(in.Path, strconv.Itoa(n))
	return nil
}

// chain runs Void matchers in order, restoring the input when one fails.
type chain []parsing.ParserPrinter[RequestData, parsing.Void]

func (c chain) Parse(in *RequestData) (parsing.Void, error) {
	saved := *in
	for _, p := range c {
		if _, err := p.Parse(in); err != nil {
			*in = saved
			return parsing.Void{}, err
		}
	}
	return parsing.Void{}, nil
}

func (c chain) Print(_ parsing.Void, in *RequestData) error {
	saved := *in
	for _, p := range c {
		if err := p.Print(parsing.Void{}, in); err != nil {
			*in = saved
			return err
		}
	}
	return nil
}

var end = parsing.End[RequestData]()

func kindMismatch(want RouteKind, got Route) error {
	return fmt.Errorf("route %s is not %s", got.Kind, want)
}

// fixed routes a request matching parts exactly to kind.
func fixed(kind RouteKind, parts ...parsing.ParserPrinter[RequestData, parsing.Void]) parsing.ParserPrinter[RequestData, Route] {
	return parsing.Convert[RequestData, parsing.Void, Route](append(chain(parts), end),
		func(parsing.Void) (Route, error) { return Route{Kind: kind}, nil },
		func(r Route) (parsing.Void, error) {
			if r.Kind != kind {
				return parsing.Void{}, kindMismatch(kind, r)
			}
			return parsing.Void{}, nil
		},
	)
}

// withID routes prefix, an int component, then suffix to kind.
func withID(kind RouteKind, prefix, suffix chain) parsing.ParserPrinter[RequestData, Route] {
	body := parsing.Take2Printer[RequestData, parsing.Void, int](prefix, parsing.LeftPrinter[RequestData, int](intSegment{}, append(suffix, end)))
	return parsing.Convert[RequestData, parsing.Pair[parsing.Void, int], Route](body,
		func(p parsing.Pair[parsing.Void, int]) (Route, error) { return Route{Kind: kind, ID: p.Second}, nil },
		func(r Route) (parsing.Pair[parsing.Void, int], error) {
			if r.Kind != kind {
				return parsing.Pair[parsing.Void, int]{}, kindMismatch(kind, r)
			}
			return parsing.Pair[parsing.Void, int]{Second: r.ID}, nil
		},
	)
}

const get method = "GET"

// Router recognizes the site's routes and prints routes back to requests.
var Router = parsing.OneOfPrinter(
	fixed(Home, get),
	fixed(ContactUs, get, segment("contact-us")),
	fixed(Episodes, get, segment("episodes")),
	withID(Episode, chain{get, segment("episodes")}, nil),
	withID(EpisodeComments, chain{get, segment("episodes")}, chain{segment("comments")}),
)
