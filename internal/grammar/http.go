// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grammar

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/parsing"
)

// RequestLine is the first line of an HTTP/1.1 request.
type RequestLine struct {
	Method  string
	URI     string
	Version string
}

// Header is one request header. Value holds the first line and any
// folded continuation lines.
type Header struct {
	Name  string
	Value []string
}

// Head is a parsed request head.
type Head struct {
	Line    RequestLine
	Headers []Header
}

func isToken(c byte) bool {
	if c >= 128 || c <= 31 {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '\'', '/', '[', ']', '?', '=', '{', '}', ' ':
		return false
	}
	return true
}

func notLineEnding(c byte) bool { return c != '\r' && c != '\n' }

func isNotSpace(c byte) bool { return c != ' ' }

func isHorizontalSpace(c byte) bool { return c == ' ' || c == '\t' }

func isVersion(c byte) bool { return '0' <= c && c <= '9' || c == '.' }

type bytesIn = []byte

var (
	sp      = parsing.Lit[bytesIn](" ")
	newline = parsing.OneOf[bytesIn, parsing.Void](
		parsing.Lit[bytesIn]("\r\n"),
		parsing.Lit[bytesIn]("\n"),
	)
	token = parsing.Map(parsing.While1[bytesIn](isToken), func(b []byte) string { return string(b) })
)

var requestLine = parsing.Do[bytesIn](func() kont.Eff[RequestLine] {
	return parsing.TakeBind(token, func(method string) kont.Eff[RequestLine] {
		return parsing.SkipThen(sp,
			parsing.TakeBind(parsing.While1[bytesIn](isNotSpace), func(uri []byte) kont.Eff[RequestLine] {
				return parsing.SkipThen(sp,
					parsing.SkipThen(parsing.Lit[bytesIn]("HTTP/"),
						parsing.TakeBind(parsing.While1[bytesIn](isVersion), func(version []byte) kont.Eff[RequestLine] {
							return parsing.SkipThen(newline, parsing.Done(RequestLine{
								Method:  method,
								URI:     string(uri),
								Version: string(version),
							}))
						})))
			}))
	})
})

// headerValue is one value line: leading horizontal space, then text up
// to the line ending.
var headerValue = parsing.Do[bytesIn](func() kont.Eff[string] {
	return parsing.SkipThen(parsing.OneOf[bytesIn, parsing.Void](sp, parsing.Lit[bytesIn]("\t")),
		parsing.SkipThen(parsing.While[bytesIn](isHorizontalSpace),
			parsing.TakeBind(parsing.While[bytesIn](notLineEnding), func(v []byte) kont.Eff[string] {
				return parsing.SkipThen(newline, parsing.Done(string(v)))
			})))
})

var header = parsing.Do[bytesIn](func() kont.Eff[Header] {
	return parsing.TakeBind(token, func(name string) kont.Eff[Header] {
		return parsing.SkipThen(parsing.Lit[bytesIn](":"),
			parsing.TakeBind(parsing.NewMany(headerValue).AtLeast(1), func(values []string) kont.Eff[Header] {
				return parsing.Done(Header{Name: name, Value: values})
			}))
	})
})

// Request parses an HTTP/1.1 request head: the request line, the headers,
// and the blank line ending the head when present.
var Request = parsing.Map(
	parsing.Left(
		parsing.Take2(requestLine, parsing.NewMany(header)),
		parsing.NewOptionalVoid[bytesIn](newline),
	),
	func(p parsing.Pair[RequestLine, []Header]) Head {
		return Head{Line: p.First, Headers: p.Second}
	},
)
