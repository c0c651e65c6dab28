package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLineSelect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"first", "1\n", 0, false},
		{"last without newline", "3", 2, false},
		{"spaces", "  2 \n", 1, false},
		{"zero", "0\n", -1, true},
		{"too large", "4\n", -1, true},
		{"not a number", "abc\n", -1, true},
		{"eof", "", -1, true},
	}

	items := []string{"One Piece", "Naruto", "Bleach"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLine(strings.NewReader(tt.input), &out)
			got, err := p.Select(context.Background(), "Select anime", items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Select() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
			if !strings.Contains(out.String(), "  2) Naruto") {
				t.Errorf("items not listed: %q", out.String())
			}
		})
	}
}

func TestLineSelectNoItems(t *testing.T) {
	p := NewLine(strings.NewReader("1\n"), &bytes.Buffer{})
	if _, err := p.Select(context.Background(), "Select", nil); err == nil {
		t.Error("expected error for empty item list")
	}
}

func TestLineInput(t *testing.T) {
	p := NewLine(strings.NewReader("  one piece  \n"), &bytes.Buffer{})
	got, err := p.Input(context.Background(), "Anime title")
	if err != nil {
		t.Fatalf("Input() error: %v", err)
	}
	if got != "one piece" {
		t.Errorf("Input() = %q, want 'one piece'", got)
	}

	p = NewLine(strings.NewReader("\n"), &bytes.Buffer{})
	if _, err := p.Input(context.Background(), "Anime title"); err == nil {
		t.Error("expected error for blank input")
	}
}

func TestLinePromptsShareInput(t *testing.T) {
	p := NewLine(strings.NewReader("frieren\n2\n1\n"), &bytes.Buffer{})
	ctx := context.Background()

	q, err := p.Input(ctx, "Anime title")
	if err != nil || q != "frieren" {
		t.Fatalf("Input() = %q, %v", q, err)
	}
	idx, err := p.Select(ctx, "Select anime", []string{"a", "b"})
	if err != nil || idx != 1 {
		t.Fatalf("first Select() = %d, %v", idx, err)
	}
	idx, err = p.Select(ctx, "Select episode", []string{"x", "y"})
	if err != nil || idx != 0 {
		t.Fatalf("second Select() = %d, %v", idx, err)
	}
}
