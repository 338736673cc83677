package biomarket

import (
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Price
		wantErr bool
	}{
		{name: "dot separator", in: "1.50", want: P(1.5)},
		{name: "comma separator", in: "1,50", want: P(1.5)},
		{name: "integer", in: "3", want: P(3)},
		{name: "surrounding spaces", in: " 2.5 ", want: P(2.5)},
		{name: "negative", in: "-0.5", want: P(-0.5)},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePrice(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) error = %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParsePrice(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestPrice_String_isStable(t *testing.T) {
	// The storage form must survive a parse/format round-trip unchanged.
	for _, in := range []string{"0", "10", "1.5", "0.123", "-2.25"} {
		p, err := ParsePrice(in)
		if err != nil {
			t.Fatal(err)
		}
		q, err := ParsePrice(p.String())
		if err != nil {
			t.Fatal(err)
		}
		if p.String() != q.String() {
			t.Errorf("round-trip of %q: %q then %q", in, p.String(), q.String())
		}
	}
}

func TestPrice_arithmetic(t *testing.T) {
	profit := P(2.00).Sub(P(1.00)).MulInt(3)
	if !profit.Equal(P(3)) {
		t.Errorf("(2-1)*3 = %s, want 3", profit)
	}
	if !P(0.1).Add(P(0.2)).Equal(P(0.3)) {
		t.Error("0.1 + 0.2 != 0.3, price arithmetic must be exact")
	}
}

func TestPrice_Display(t *testing.T) {
	testCases := []struct {
		in   Price
		want string
	}{
		{in: P(1.5), want: "€1.50"},
		{in: P(0), want: "€0.00"},
		{in: P(3), want: "€3.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.Display(); got != tc.want {
			t.Errorf("Display(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewProduct_validation(t *testing.T) {
	if _, err := NewProduct("  ", 1, P(1), P(2)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name error = %v, want ErrEmptyName", err)
	}
	if _, err := NewProduct("Apple", -1, P(1), P(2)); !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("negative quantity error = %v, want ErrNegativeQuantity", err)
	}
	if _, err := NewProduct("Apple", 1, P(-1), P(2)); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("negative purchase price error = %v, want ErrNegativePrice", err)
	}
	if _, err := NewProduct("Apple", 1, P(1), P(-2)); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("negative sale price error = %v, want ErrNegativePrice", err)
	}

	// Zero quantity is accepted, a row can exist with nothing in stock.
	p, err := NewProduct(" Apple ", 0, P(0), P(0))
	if err != nil {
		t.Fatalf("NewProduct() error = %v", err)
	}
	if p.Name != "Apple" {
		t.Errorf("name = %q, want trimmed %q", p.Name, "Apple")
	}
}
