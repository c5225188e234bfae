package currency

import (
	"encoding/json"
	"testing"
)

func TestFormatTyped(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"R$ ,", ""},
		{"0", "R$ 0,00"},
		{"5", "R$ 0,05"},
		{"50", "R$ 0,50"},
		{"1050", "R$ 10,50"},
		{"105000", "R$ 1.050,00"},
		{"123456789", "R$ 1.234.567,89"},
		{"1a0b5c0", "R$ 10,50"}, // los no-dígitos se ignoran
	}

	for _, c := range cases {
		if got := FormatTyped(c.in); got != c.want {
			t.Fatalf("FormatTyped(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDisplay(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"R$ 10,50", 1050},
		{"R$\u00a010,50", 1050}, // NBSP de formateadores de locale
		{"R$ 1.234.567,89", 123456789},
		{"10,5", 1050},
		{"1050", 105000}, // sin coma: reales enteros
		{"", 0},
		{"abc", 0}, // inválido => 0, nunca error
	}

	for _, c := range cases {
		if got := ParseDisplay(c.in); got != c.want {
			t.Fatalf("ParseDisplay(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRoundTrip_TypedDigits(t *testing.T) {
	// parse(format(dígitos de x)) debe recuperar exactamente x centavos
	for _, cents := range []int64{0, 1, 99, 100, 1050, 123456789, 999999999999} {
		digits := FormatTyped(intDigits(cents))
		if got := ParseDisplay(digits); int64(got) != cents {
			t.Fatalf("round-trip %d: formatted %q parsed to %d", cents, digits, got)
		}
	}
}

func intDigits(n int64) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in      string
		want    Cents
		wantErr bool
	}{
		{"", 0, false},
		{"50", 5000, false},
		{"50.5", 5050, false},
		{"50.00", 5000, false},
		{".5", 50, false},
		{"-10.25", -1025, false},
		{"50.123", 0, true}, // más de 2 decimales
		{"abc", 0, true},
	}

	for _, c := range cases {
		got, err := ParseDecimal(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseDecimal(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDecimal(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseDecimal(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCents_JSON(t *testing.T) {
	b, err := json.Marshal(Cents(8000))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "80.00" {
		t.Fatalf("expected 80.00, got %s", b)
	}

	var c Cents
	if err := json.Unmarshal([]byte("50.00"), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != 5000 {
		t.Fatalf("expected 5000 cents, got %d", c)
	}

	if err := json.Unmarshal([]byte("null"), &c); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if c != 0 {
		t.Fatalf("expected null to decode as 0, got %d", c)
	}
}

func TestDisplay_Negative(t *testing.T) {
	if got := Display(Cents(-1050)); got != "R$ -10,50" {
		t.Fatalf("expected R$ -10,50, got %q", got)
	}
}
