// Package currency maneja montos en BRL como centavos enteros.
// Toda la aritmética del dominio se hace sobre Cents; el formato
// decimal solo aparece en los bordes (JSON y display).
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents es un monto en centavos (unidad mínima de BRL).
type Cents int64

// MarshalJSON emite el monto como número decimal exacto de 2 dígitos
// (8000 => 80.00), sin pasar por float64.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.decimalString()), nil
}

// UnmarshalJSON acepta números JSON con hasta 2 decimales (50, 50.5, 50.00).
// null o campo ausente => 0 (un agendamiento sin valor es válido).
func (c *Cents) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Cents) decimalString() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// ParseDecimal convierte "50.00" / "50.5" / "50" a centavos sin error de
// redondeo binario. Cadena vacía => 0.
func ParseDecimal(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("currency: more than 2 decimal places in %q", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("currency: invalid amount %q", s)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("currency: invalid amount %q", s)
	}

	n := whole*100 + frac
	if neg {
		n = -n
	}
	return Cents(n), nil
}

// Display renderiza el monto en formato pt-BR: "R$ 1.234,56".
func Display(c Cents) string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	reais := strconv.FormatInt(n/100, 10)
	return "R$ " + sign + groupThousands(reais) + "," + fmt.Sprintf("%02d", n%100)
}

// FormatTyped interpreta la entrada como dígitos acumulados de un campo de
// texto: ignora todo lo que no sea dígito y trata el número como centavos.
// Sin dígitos => cadena vacía (el campo arranca en blanco, no en "R$ 0,00").
func FormatTyped(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// overflow de int64: entrada absurda, campo en blanco
		return ""
	}
	return Display(Cents(n))
}

// ParseDisplay deshace Display: quita símbolo, espacios (incluido NBSP) y
// separadores de miles, convierte la coma decimal y devuelve centavos.
// Entrada inválida => 0, nunca error.
func ParseDisplay(formatted string) Cents {
	cleaned := strings.NewReplacer(
		"R$", "",
		"\u00a0", "",
		" ", "",
		".", "",
	).Replace(formatted)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	c, err := ParseDecimal(cleaned)
	if err != nil {
		return 0
	}
	return c
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
