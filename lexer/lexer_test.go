package lexer

import (
	"testing"

	"github.com/cwbudde/go-tlox/token"
)

func TestScanTokensBasicOperators(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Type
	}{
		{"single char", "(){},.-+;:?#", []token.Type{
			token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
			token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
			token.COLON, token.QUESTION, token.HASH, token.EOF,
		}},
		{"compound assign", "+= -= *= /= %=", []token.Type{
			token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL, token.MOD_EQUAL, token.EOF,
		}},
		{"incr decr", "++ --", []token.Type{token.INCR, token.DECR, token.EOF}},
		{"comparisons", "== != <= >= < >", []token.Type{
			token.EQUAL_EQUAL, token.BANG_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL, token.LESS, token.GREATER, token.EOF,
		}},
		{"line comment", "1 // trailing\n2", []token.Type{token.NUMBER, token.NUMBER, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.src)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(got), len(tt.want), got)
			}
			for i, typ := range tt.want {
				if got[i].Type != typ {
					t.Errorf("token %d: got %s, want %s", i, got[i].Type, typ)
				}
			}
		})
	}
}

func TestScanTokensStrongLiterals(t *testing.T) {
	got := Tokenize(`5! "hi"! true! false!`)
	want := []token.Type{token.STRONG_NUMBER, token.STRONG_STRING, token.STRONG_TRUE, token.STRONG_FALSE, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, got[i].Type, typ)
		}
	}
	if got[0].Literal.(float64) != 5 {
		t.Errorf("strong number literal = %v, want 5", got[0].Literal)
	}
	if got[1].Literal.(string) != "hi" {
		t.Errorf("strong string literal = %v, want hi", got[1].Literal)
	}
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	got := Tokenize("class foo foreach in var")
	want := []token.Type{token.CLASS, token.IDENTIFIER, token.FOREACH, token.IN, token.VAR, token.EOF}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, got[i].Type, typ)
		}
	}
}

func TestScanTokensMultilineString(t *testing.T) {
	got := Tokenize("\"line1\nline2\"")
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
	if got[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", got[0].Type)
	}
	if got[0].Literal.(string) != "line1\nline2" {
		t.Errorf("literal = %q", got[0].Literal)
	}
	if got[1].Line != 2 {
		t.Errorf("EOF line = %d, want 2", got[1].Line)
	}
}

func TestScanTokensUnterminatedStringIsIllegal(t *testing.T) {
	got := Tokenize(`"unterminated`)
	if got[0].Type != token.ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", got[0].Type)
	}
}

func TestScanTokensNumberLiteral(t *testing.T) {
	got := Tokenize("3.5")
	if got[0].Type != token.NUMBER || got[0].Literal.(float64) != 3.5 {
		t.Fatalf("got %+v", got[0])
	}
}
