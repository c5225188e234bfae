// Package phone aplica la máscara de teléfono brasileña para display.
package phone

import "strings"

// Format enmascara los dígitos como (DD) DDDDD-DDDD, de forma progresiva
// para entrada parcial. Se descarta todo más allá de 11 dígitos.
// El valor almacenado sigue siendo texto libre; esto es solo presentación.
func Format(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	d := b.String()
	if d == "" {
		return ""
	}
	if len(d) > 11 {
		d = d[:11]
	}

	switch {
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}
