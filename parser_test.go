// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson_test

import (
	"errors"
	"testing"

	"github.com/advxolltm/flatjson"
	"github.com/advxolltm/flatjson/arena"
)

func mustParse(t *testing.T, src string) []*flatjson.Value {
	t.Helper()
	recs, err := flatjson.Parse([]byte(src), arena.New(1<<20))
	if err != nil {
		t.Fatalf("Parse(%#q): unexpected error: %v", src, err)
	}
	return recs
}

func TestParseShapes(t *testing.T) {
	t.Run("SingleObject", func(t *testing.T) {
		recs := mustParse(t, `{"a": 1, "b": "two"}`)
		if len(recs) != 1 {
			t.Fatalf("got %d records, want 1", len(recs))
		}
		obj := recs[0]
		if obj.Kind() != flatjson.Object {
			t.Fatalf("record kind: got %v, want object", obj.Kind())
		}
		if got := len(obj.Members()); got != 2 {
			t.Errorf("members: got %d, want 2", got)
		}
		if m := obj.Find("b"); m == nil {
			t.Error(`Find("b") returned nil`)
		} else if got := m.Value.Text().StringCopy(); got != "two" {
			t.Errorf(`Find("b") value: got %q, want "two"`, got)
		}
	})

	t.Run("ArrayOfObjects", func(t *testing.T) {
		recs := mustParse(t, `[{"a": 1}, {"a": 2}, {}]`)
		if len(recs) != 3 {
			t.Fatalf("got %d records, want 3", len(recs))
		}
		for i, rec := range recs {
			if rec.Kind() != flatjson.Object {
				t.Errorf("record %d kind: got %v, want object", i, rec.Kind())
			}
		}
	})

	t.Run("MemberOrder", func(t *testing.T) {
		recs := mustParse(t, `{"z": 1, "a": 2, "m": 3}`)
		var keys []string
		for _, m := range recs[0].Members() {
			keys = append(keys, m.Key.StringCopy())
		}
		want := []string{"z", "a", "m"}
		for i, k := range keys {
			if k != want[i] {
				t.Errorf("member %d: got %q, want %q", i, k, want[i])
			}
		}
	})

	t.Run("DuplicateKeysPreserved", func(t *testing.T) {
		recs := mustParse(t, `{"a": 1, "a": 2}`)
		if got := len(recs[0].Members()); got != 2 {
			t.Errorf("members: got %d, want 2 (duplicates preserved)", got)
		}
	})
}

func TestParseValues(t *testing.T) {
	recs := mustParse(t, `{
	  "null": null, "yes": true, "no": false,
	  "int": -15, "frac": 0.50, "exp": -0.001E-100,
	  "zero": 0,
	  "arr": [null, 1, "x"],
	  "obj": {"inner": []}
	}`)
	obj := recs[0]

	find := func(key string) *flatjson.Value {
		t.Helper()
		m := obj.Find(key)
		if m == nil {
			t.Fatalf("Find(%q) returned nil", key)
		}
		return m.Value
	}

	if v := find("null"); v.Kind() != flatjson.Null {
		t.Errorf("null kind: got %v", v.Kind())
	}
	if v := find("yes"); v.Kind() != flatjson.Bool || !v.Bool() {
		t.Errorf("yes: got %v/%v, want bool/true", v.Kind(), v.Bool())
	}
	if v := find("no"); v.Kind() != flatjson.Bool || v.Bool() {
		t.Errorf("no: got %v/%v, want bool/false", v.Kind(), v.Bool())
	}

	// Numbers keep their verbatim source text, not a normalized form.
	for key, want := range map[string]string{
		"int":  "-15",
		"frac": "0.50",
		"exp":  "-0.001E-100",
		"zero": "0",
	} {
		v := find(key)
		if v.Kind() != flatjson.Number {
			t.Errorf("%s kind: got %v, want number", key, v.Kind())
		}
		if got := v.Text().StringCopy(); got != want {
			t.Errorf("%s text: got %q, want %q", key, got, want)
		}
	}

	if v := find("arr"); v.Kind() != flatjson.Array || len(v.Values()) != 3 {
		t.Errorf("arr: got %v with %d elements, want array with 3", v.Kind(), len(v.Values()))
	}
	inner := find("obj").Find("inner")
	if inner == nil || inner.Value.Kind() != flatjson.Array || len(inner.Value.Values()) != 0 {
		t.Errorf("obj.inner: got %+v, want empty array", inner)
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string // a full document with one string value under "s"
		want  string // decoded content
	}{
		{"FastPath", `{"s": "plain text, no escapes"}`, "plain text, no escapes"},
		{"Empty", `{"s": ""}`, ""},
		{"Newline", `{"s": "a\nb"}`, "a\nb"},
		{"AllSimpleEscapes", `{"s": "\"\\\/\b\f\n\r\t"}`, "\"\\/\b\f\n\r\t"},
		{"UnicodeASCII", `{"s": "\u0041\u007f"}`, "A\x7f"},
		{"UnicodeHighIsPlaceholder", `{"s": "caf\u00e9 \u2028"}`, "caf? ?"},
		{"RawUTF8PassesThrough", `{"s": "café"}`, "café"},
		{"EscapeThenPlain", `{"s": "x\ty and more"}`, "x\ty and more"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs := mustParse(t, tc.input)
			got := recs[0].Find("s").Value.Text().StringCopy()
			if got != tc.want {
				t.Errorf("decoded string: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"OnlySpace", "  \n\t "},
		{"OpenBrace", `{`},
		{"TrailingArrayComma", `[1,]`},
		{"MissingValue", `{"a":}`},
		{"MissingColon", `{"a" 1}`},
		{"TrailingObjectComma", `{"a": 1,}`},
		{"TopLevelScalar", `42`},
		{"TopLevelString", `"hello"`},
		{"ArrayOfNonObjects", `[1,2]`},
		{"MixedTopArray", `[{"a":1}, 2]`},
		{"NonStringKey", `{1: 2}`},
		{"UnterminatedString", `{"a": "oops`},
		{"UnterminatedArray", `{"a": [1, 2}`},
		{"UnterminatedObject", `[{"a": 1]`},
		{"BadKeyword", `{"a": tru}`},
		{"BadEscape", `{"a": "\q"}`},
		{"BadUnicodeEscape", `{"a": "\u12g4"}`},
		{"LeadingZeroes", `{"a": 007}`},
		{"BareMinus", `{"a": -}`},
		{"DanglingFraction", `{"a": 1.}`},
		{"DanglingExponent", `{"a": 1e+}`},
		{"TrailingGarbage", `{"a": 1} extra`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := flatjson.Parse([]byte(tc.input), arena.New(1<<20))
			if err == nil {
				t.Fatalf("Parse(%#q): got %d records, want error", tc.input, len(recs))
			}
			var serr *flatjson.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("error type: got %T (%v), want *SyntaxError", err, err)
			}
			if serr.Offset < 0 || serr.Offset > len(tc.input) {
				t.Errorf("error offset %d out of range [0, %d]", serr.Offset, len(tc.input))
			}
			t.Logf("Got expected error: %v", err)
		})
	}
}

// A trailing comma must be reported as such in both container kinds, not as
// a downstream complaint about the closing delimiter.
func TestTrailingCommaDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Array", `[1,]`, "trailing comma in array"},
		{"Object", `{"a": 1,}`, "trailing comma in object"},
		{"NestedObject", `{"a": {"b": 2 , }}`, "trailing comma in object"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := flatjson.Parse([]byte(tc.input), arena.New(1<<20))
			var serr *flatjson.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse(%#q): got error %v, want *SyntaxError", tc.input, err)
			}
			if serr.Message != tc.want {
				t.Errorf("message: got %q, want %q", serr.Message, tc.want)
			}
		})
	}
}
