package parse

import (
	"strings"
	"testing"
)

func TestByte(t *testing.T) {
	c := NewCursor([]byte{0x50, 0x36})

	r := Byte(c)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Value != 0x50 {
		t.Errorf("got %#x, want 0x50", r.Value)
	}
	if r.Rest.Offset() != 1 {
		t.Errorf("offset after Byte: got %d, want 1", r.Rest.Offset())
	}
	if c.Offset() != 0 {
		t.Errorf("original cursor moved: offset %d", c.Offset())
	}

	r = Byte(Byte(r.Rest).Rest)
	if r.Err == nil {
		t.Fatal("expected error past end of input")
	}
	if r.Err.Offset != 2 {
		t.Errorf("error offset: got %d, want 2", r.Err.Offset)
	}
}

func TestFixedBytes(t *testing.T) {
	c := NewCursor([]byte("abcdef"))

	r := FixedBytes(c, 4)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if string(r.Value) != "abcd" {
		t.Errorf("got %q, want %q", r.Value, "abcd")
	}
	if r.Rest.Remaining() != 2 {
		t.Errorf("remaining: got %d, want 2", r.Rest.Remaining())
	}

	if r := FixedBytes(r.Rest, 3); r.Err == nil {
		t.Error("expected error for truncated input")
	}
	if r := FixedBytes(c, -1); r.Err == nil {
		t.Error("expected error for negative count")
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tag     string
		ok      bool
		wantOff int
	}{
		{"match", "P6rest", "P6", true, 2},
		{"mismatch reports start offset", "P5rest", "P6", false, 0},
		{"truncated", "P", "P6", false, 0},
		{"empty input", "", "P6", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Literal(NewCursor([]byte(tt.input)), tt.tag)
			if tt.ok {
				if r.Err != nil {
					t.Fatalf("unexpected error: %v", r.Err)
				}
				if r.Rest.Offset() != tt.wantOff {
					t.Errorf("offset: got %d, want %d", r.Rest.Offset(), tt.wantOff)
				}
				return
			}
			if r.Err == nil {
				t.Fatal("expected error")
			}
			if r.Err.Offset != tt.wantOff {
				t.Errorf("error offset: got %d, want %d", r.Err.Offset, tt.wantOff)
			}
		})
	}
}

func TestNatural(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantOff int
	}{
		{"0 ", 0, 1},
		{"640 480", 640, 3},
		{"255\n", 255, 3},
		{"007x", 7, 3},
	}
	for _, tt := range tests {
		r := Natural(NewCursor([]byte(tt.input)))
		if r.Err != nil {
			t.Fatalf("Natural(%q): unexpected error: %v", tt.input, r.Err)
		}
		if r.Value != tt.want || r.Rest.Offset() != tt.wantOff {
			t.Errorf("Natural(%q) = %d ending at %d, want %d ending at %d",
				tt.input, r.Value, r.Rest.Offset(), tt.want, tt.wantOff)
		}
	}

	for _, bad := range []string{"", "x12", " 12"} {
		if r := Natural(NewCursor([]byte(bad))); r.Err == nil {
			t.Errorf("Natural(%q): expected error", bad)
		}
	}
}

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input   string
		wantOff int
	}{
		{"   x", 3},
		{"\n\t\r x", 4},
		{"x", 0},
		{"", 0},
		{"# comment\n255", 10},
		{" # c1\n# c2\n9", 11},
	}
	for _, tt := range tests {
		r := SkipSpace(NewCursor([]byte(tt.input)))
		if r.Err != nil {
			t.Fatalf("SkipSpace(%q): unexpected error: %v", tt.input, r.Err)
		}
		if r.Rest.Offset() != tt.wantOff {
			t.Errorf("SkipSpace(%q): offset %d, want %d", tt.input, r.Rest.Offset(), tt.wantOff)
		}
	}
}

// TestBindShortCircuit verifies that once a step fails, no bound
// continuation runs and the failure offset is preserved through the chain.
func TestBindShortCircuit(t *testing.T) {
	c := NewCursor([]byte("12")) // truncated: second FixedBytes must fail

	calls := 0
	r := Bind(FixedBytes(c, 2), func(_ []byte, c Cursor) Result[int] {
		calls++
		return Bind(FixedBytes(c, 4), func(_ []byte, c Cursor) Result[int] {
			calls++
			return Natural(c)
		})
	})

	if calls != 1 {
		t.Errorf("continuations called %d times, want 1", calls)
	}
	if r.Err == nil {
		t.Fatal("expected error")
	}
	if r.Err.Offset != 2 {
		t.Errorf("error offset: got %d, want 2", r.Err.Offset)
	}
	if !strings.Contains(r.Err.Error(), "offset 2") {
		t.Errorf("error text should name the offset: %q", r.Err.Error())
	}
}

func TestMap(t *testing.T) {
	r := Map(Byte(NewCursor([]byte("A"))), func(b byte) rune { return rune(b) })
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Value != 'A' {
		t.Errorf("got %q, want 'A'", r.Value)
	}
	if r.Rest.Offset() != 1 {
		t.Errorf("Map must not move the cursor: offset %d, want 1", r.Rest.Offset())
	}

	called := false
	bad := Map(Fail[byte](NewCursor(nil), "boom"), func(b byte) rune {
		called = true
		return rune(b)
	})
	if called {
		t.Error("Map ran its transform on a failed result")
	}
	if bad.Err == nil {
		t.Error("expected propagated error")
	}
}
