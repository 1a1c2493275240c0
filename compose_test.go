// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing_test

import (
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/parsing"
)

func TestMap(t *testing.T) {
	double := parsing.Map[string, int, int](parsing.Int[string](), func(n int) int { return n * 2 })
	got, rest, err := parsing.Parse[string, int](double, "21!")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 42 || rest != "!" {
		t.Fatalf("got (%d, %q), want (42, %q)", got, rest, "!")
	}
}

func TestMapRestoresOnFailure(t *testing.T) {
	double := parsing.Map[string, int, int](sloppy{}, func(n int) int { return n * 2 })
	in := "abc"
	if _, err := double.Parse(&in); err == nil {
		t.Fatalf("expected failure")
	}
	if in != "abc" {
		t.Fatalf("rest got %q, want %q", in, "abc")
	}
}

var errNegative = errors.New("negative")

func natural() parsing.Conversion[string, int, uint] {
	return parsing.Convert[string, int, uint](parsing.Int[string](),
		func(n int) (uint, error) {
			if n < 0 {
				return 0, errNegative
			}
			return uint(n), nil
		},
		func(u uint) (int, error) { return int(u), nil },
	)
}

func TestConvert(t *testing.T) {
	got, rest, err := parsing.Parse[string, uint](natural(), "7 apples")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 7 || rest != " apples" {
		t.Fatalf("got (%d, %q), want (7, %q)", got, rest, " apples")
	}

	out, err := parsing.Print[string, uint](natural(), 7)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "7" {
		t.Fatalf("got %q, want %q", out, "7")
	}
}

func TestConvertRejectRestores(t *testing.T) {
	in := "-7 apples"
	_, err := natural().Parse(&in)
	if !errors.Is(err, errNegative) {
		t.Fatalf("got %v, want errNegative", err)
	}
	if !errors.Is(err, parsing.ErrFailed) {
		t.Fatalf("conversion failure should classify as ErrFailed: %v", err)
	}
	if in != "-7 apples" {
		t.Fatalf("rest got %q, want %q", in, "-7 apples")
	}
}

func TestConvertUnapplyReject(t *testing.T) {
	even := parsing.Convert[string, int, int](parsing.Int[string](),
		func(n int) (int, error) { return n, nil },
		func(n int) (int, error) {
			if n%2 != 0 {
				return 0, errors.New("odd")
			}
			return n, nil
		},
	)
	buf := "n="
	if err := even.Print(3, &buf); err == nil {
		t.Fatalf("expected failure")
	}
	if buf != "n=" {
		t.Fatalf("buffer got %q, want %q", buf, "n=")
	}
}

func TestTake2(t *testing.T) {
	pair := parsing.Take2[string, int, string](parsing.Int[string](), parsing.Rest[string]())
	got, rest, err := parsing.Parse[string, parsing.Pair[int, string]](pair, "12abc")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.First != 12 || got.Second != "abc" || rest != "" {
		t.Fatalf("got (%+v, %q)", got, rest)
	}
}

func TestTake2RestoresOnSecondFailure(t *testing.T) {
	pair := parsing.Take2[string, int, parsing.Void](parsing.Int[string](), parsing.Lit[string](";"))
	in := "12,"
	if _, err := pair.Parse(&in); err == nil {
		t.Fatalf("expected failure")
	}
	if in != "12," {
		t.Fatalf("rest got %q, want %q", in, "12,")
	}
}

func TestTake2PrinterRoundTrip(t *testing.T) {
	kv := parsing.Take2Printer[string, string, int](
		parsing.LeftPrinter[string, string](parsing.While1[string](isLower), parsing.Lit[string]("=")),
		parsing.Int[string](),
	)
	out, err := parsing.Print[string, parsing.Pair[string, int]](kv, parsing.Pair[string, int]{First: "port", Second: 8080})
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "port=8080" {
		t.Fatalf("got %q, want %q", out, "port=8080")
	}
	back, err := parsing.ParseAll[string, parsing.Pair[string, int]](kv, out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back.First != "port" || back.Second != 8080 {
		t.Fatalf("round trip got %+v", back)
	}
}

func TestTake2PrinterRestoresOnSecondFailure(t *testing.T) {
	kv := parsing.Take2Printer[string, string, string](parsing.While1[string](isLower), parsing.While1[string](isDigit))
	buf := ">"
	if err := kv.Print(parsing.Pair[string, string]{First: "ab", Second: "x"}, &buf); err == nil {
		t.Fatalf("expected failure")
	}
	if buf != ">" {
		t.Fatalf("buffer got %q, want %q", buf, ">")
	}
}

func TestLeftRight(t *testing.T) {
	quoted := parsing.Right(parsing.Lit[string]("\""), parsing.Left(parsing.UpTo[string]("\""), parsing.Lit[string]("\"")))
	got, rest, err := parsing.Parse[string, string](quoted, `"hi" there`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "hi" || rest != " there" {
		t.Fatalf("got (%q, %q), want (%q, %q)", got, rest, "hi", " there")
	}
}

func TestRightPrinter(t *testing.T) {
	neg := parsing.RightPrinter[string, int](parsing.Lit[string]("#"), parsing.Int[string]())
	out, err := parsing.Print[string, int](neg, 5)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "#5" {
		t.Fatalf("got %q, want %q", out, "#5")
	}
	n, err := parsing.ParseAll[string, int](neg, out)
	if err != nil || n != 5 {
		t.Fatalf("parse back got (%d, %v)", n, err)
	}
}

func TestOneOf(t *testing.T) {
	boolean := parsing.OneOf[string, bool](
		parsing.Map(parsing.Lit[string]("true"), func(parsing.Void) bool { return true }),
		parsing.Map(parsing.Lit[string]("false"), func(parsing.Void) bool { return false }),
	)
	got, rest, err := parsing.Parse[string, bool](boolean, "false!")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got || rest != "!" {
		t.Fatalf("got (%v, %q), want (false, %q)", got, rest, "!")
	}

	in := "maybe"
	if _, err := boolean.Parse(&in); !errors.Is(err, parsing.ErrFailed) {
		t.Fatalf("got %v, want ErrFailed", err)
	}
	if in != "maybe" {
		t.Fatalf("rest got %q, want %q", in, "maybe")
	}
}

func TestOneOfRestoresBetweenAttempts(t *testing.T) {
	p := parsing.OneOf[string, int](sloppy{}, parsing.Int[string]())
	got, rest, err := parsing.Parse[string, int](p, "12")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 12 || rest != "" {
		t.Fatalf("got (%d, %q), want (12, %q)", got, rest, "")
	}
}

func TestOneOfPrinter(t *testing.T) {
	signed := parsing.OneOfPrinter[string, int](
		parsing.NewFilterPrinter[string, int](parsing.RightPrinter[string, int](parsing.Lit[string]("+"), parsing.Int[string]()), func(n int) bool { return n > 0 }),
		parsing.Int[string](),
	)
	pos, err := parsing.Print[string, int](signed, 3)
	if err != nil || pos != "+3" {
		t.Fatalf("got (%q, %v), want (%q, nil)", pos, err, "+3")
	}
	neg, err := parsing.Print[string, int](signed, -3)
	if err != nil || neg != "-3" {
		t.Fatalf("got (%q, %v), want (%q, nil)", neg, err, "-3")
	}
}

func TestOneOfPrinterNoChoice(t *testing.T) {
	none := parsing.OneOfPrinter[string, int](parsing.Fail[string, int]{})
	buf := "x"
	if err := none.Print(1, &buf); !errors.Is(err, parsing.ErrFailed) {
		t.Fatalf("got %v, want ErrFailed", err)
	}
	if buf != "x" {
		t.Fatalf("buffer got %q, want %q", buf, "x")
	}
}

func TestSkip(t *testing.T) {
	ws := parsing.Skip(parsing.While[string](func(c byte) bool { return c == ' ' }))
	in := "   x"
	if _, err := ws.Parse(&in); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in != "x" {
		t.Fatalf("rest got %q, want %q", in, "x")
	}
}

func TestSkipRestoresOnFailure(t *testing.T) {
	in := "abc"
	if _, err := parsing.Skip[string, int](sloppy{}).Parse(&in); err == nil {
		t.Fatalf("expected failure")
	}
	if in != "abc" {
		t.Fatalf("rest got %q, want %q", in, "abc")
	}
}

func TestParseAll(t *testing.T) {
	if n, err := parsing.ParseAll[string, int](parsing.Int[string](), "42"); err != nil || n != 42 {
		t.Fatalf("got (%d, %v), want (42, nil)", n, err)
	}
	_, err := parsing.ParseAll[string, int](parsing.Int[string](), "42x")
	if !errors.Is(err, parsing.ErrNotEnd) {
		t.Fatalf("got %v, want ErrNotEnd", err)
	}
	var perr *parsing.Error
	if !errors.As(err, &perr) || perr.Remaining != 1 {
		t.Fatalf("got %v, want 1 remaining", err)
	}
}

func TestPrintToFailureKeepsBuffer(t *testing.T) {
	buf, err := parsing.PrintTo[string, string](parsing.While1[string](isDigit), "x", "keep")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if buf != "keep" {
		t.Fatalf("buffer got %q, want %q", buf, "keep")
	}
}

func TestFuncAdapters(t *testing.T) {
	hex := parsing.ParserFunc[string, int](func(in *string) (int, error) {
		n := 0
		for n < len(*in) && isHexDigit((*in)[n]) {
			n++
		}
		v, err := strconv.ParseInt((*in)[:n], 16, 64)
		if err != nil {
			return 0, &parsing.Error{Msg: err.Error(), Remaining: len(*in), Err: err}
		}
		*in = (*in)[n:]
		return int(v), nil
	})
	got, rest, err := parsing.Parse[string, int](hex, "ff;")
	if err != nil || got != 255 || rest != ";" {
		t.Fatalf("got (%d, %q, %v), want (255, %q, nil)", got, rest, err, ";")
	}

	hexOut := parsing.PrinterFunc[string, int](func(n int, in *string) error {
		*in += strconv.FormatInt(int64(n), 16)
		return nil
	})
	out, err := parsing.Print[string, int](hexOut, 255)
	if err != nil || out != "ff" {
		t.Fatalf("got (%q, %v), want (%q, nil)", out, err, "ff")
	}
}
