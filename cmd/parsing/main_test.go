// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/parsing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFieldsCmd(t *testing.T) {
	out, err := run(t, "fields", "2001:db8::2:1")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	want := "0\t\"2001\"\n1\t\"db8\"\n2\t\"\"\n3\t\"2\"\n4\t\"1\"\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFieldsCmdBounds(t *testing.T) {
	out, err := run(t, "fields", "--separator", ",", "--at-most", "2", "a,b,c")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if !strings.Contains(out, "rest\t\",c\"") {
		t.Fatalf("got %q, want remainder line", out)
	}

	if _, err := run(t, "fields", "--separator", ",", "--at-least", "4", "a,b,c"); !errors.Is(err, parsing.ErrFailed) {
		t.Fatalf("got %v, want ErrFailed", err)
	}
	if _, err := run(t, "fields", "--separator", "", "a"); err == nil {
		t.Fatalf("expected empty separator to be rejected")
	}
}

func TestSumCmd(t *testing.T) {
	out, err := run(t, "sum", "1,2,3,4,5")
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("got %q, want %q", out, "15\n")
	}
}

func TestRouteCmd(t *testing.T) {
	out, err := run(t, "route", "GET", "/episodes/42/comments")
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if out != "episodeComments\tid=42\tGET /episodes/42/comments\n" {
		t.Fatalf("got %q", out)
	}
	if _, err := run(t, "route", "DELETE", "/episodes/42"); err == nil {
		t.Fatalf("expected no route")
	}
}

func TestHTTPCmd(t *testing.T) {
	path := writeTemp(t, "req.txt", "GET /index.html HTTP/1.1\r\nHost: example.com\r\n\r\n")
	out, err := run(t, "http", path)
	if err != nil {
		t.Fatalf("http: %v", err)
	}
	want := "method\tGET\nuri\t/index.html\nversion\t1.1\nHost\texample.com\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestLinesCmd(t *testing.T) {
	skipRace(t)

	path := writeTemp(t, "hosts", "# hosts\nalpha\n# beta\ngamma\n# end\n")
	out, err := run(t, "lines", "--capacity", "1", path)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if out != "alpha\ngamma\n" {
		t.Fatalf("got %q, want %q", out, "alpha\ngamma\n")
	}
}

func TestLinesCmdUnterminatedLastLine(t *testing.T) {
	skipRace(t)

	cases := []struct {
		in, want string
	}{
		{"alpha\nbeta", "alpha\nbeta\n"},
		{"alpha\n# c\nbeta", "alpha\nbeta\n"},
		{"alpha\n# end", "alpha\n"},
	}
	for _, c := range cases {
		out, err := run(t, "lines", writeTemp(t, "hosts", c.in))
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if out != c.want {
			t.Fatalf("%q: got %q, want %q", c.in, out, c.want)
		}
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := readInput(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want ErrNotExist", err)
	}
}

func TestEbnfShowCmd(t *testing.T) {
	out, err := run(t, "ebnf", "show")
	if err != nil {
		t.Fatalf("ebnf show: %v", err)
	}
	if !strings.HasPrefix(out, "Grammars = ") {
		t.Fatalf("got %q", out)
	}
}

func TestEbnfCheckCmd(t *testing.T) {
	good := writeTemp(t, "good.ebnf", "Pair = Word \"=\" Word .\nWord = \"a\" … \"z\" .\n")
	out, err := run(t, "ebnf", "check", "--start", "Pair", good)
	if err != nil {
		t.Fatalf("ebnf check: %v", err)
	}
	if out != "2 productions\n" {
		t.Fatalf("got %q, want %q", out, "2 productions\n")
	}

	bad := writeTemp(t, "bad.ebnf", "Pair = Word \"=\" Word .\n")
	if _, err := run(t, "ebnf", "check", "--start", "Pair", bad); err == nil {
		t.Fatalf("expected undefined production to fail")
	}
}
