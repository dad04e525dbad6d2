package markup

import (
	"reflect"
	"testing"
)

func TestParseInline(t *testing.T) {
	got := ParseInline("a **b** *c* `d` e")

	want := []Span{
		{Kind: SpanPlain, Text: "a ", Start: 0, End: 2},
		{Kind: SpanBold, Text: "b", Start: 2, End: 7},
		{Kind: SpanPlain, Text: " ", Start: 7, End: 8},
		{Kind: SpanItalic, Text: "c", Start: 8, End: 11},
		{Kind: SpanPlain, Text: " ", Start: 11, End: 12},
		{Kind: SpanCode, Text: "d", Start: 12, End: 15},
		{Kind: SpanPlain, Text: " e", Start: 15, End: 17},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("spans=%+v, want %+v", got, want)
	}
}

func TestParseInline_UnterminatedAndEmptyMarkersArePlain(t *testing.T) {
	for _, text := range []string{"a **b", "****", "x * y", "``"} {
		got := ParseInline(text)
		want := []Span{{Kind: SpanPlain, Text: text, Start: 0, End: len(text)}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%q: spans=%+v, want %+v", text, got, want)
		}
	}
}

func TestParseInline_Empty(t *testing.T) {
	if got := ParseInline(""); len(got) != 0 {
		t.Fatalf("spans=%+v, want none", got)
	}
}

func TestPlainText(t *testing.T) {
	if got, want := PlainText("**b** and *i* or `c`"), "b and i or c"; got != want {
		t.Fatalf("PlainText=%q, want %q", got, want)
	}
}
