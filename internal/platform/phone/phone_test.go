package phone

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"1198765", "(11) 98765"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543210000", "(11) 98765-4321"}, // se descarta el exceso
		{"(11) 98765-4321", "(11) 98765-4321"}, // re-formatear es estable
	}

	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Fatalf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
