// Package revenue agrega los agendamientos por período de reporte.
// El filtrado compara solo días calendario y las sumas se hacen en
// centavos enteros: nunca acumulamos floats.
package revenue

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studio-agenda/internal/domain/appointments"
	"studio-agenda/internal/platform/currency"
)

// Period es la ventana del reporte de receitas.
type Period string

const (
	PeriodDay    Period = "day"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

var ErrUnknownPeriod = errors.New("unknown period")

// ParsePeriod acepta los valores del query string sin distinguir mayúsculas.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodCustom:
		return PeriodCustom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// CustomRange es el rango inclusivo del período custom. Si falta cualquiera
// de los dos extremos no matchea nada (resultado vacío, no error).
type CustomRange struct {
	Start *time.Time
	End   *time.Time
}

// MatchesPeriod decide si la fecha de un agendamiento cae dentro del período.
//
// La semana arranca en domingo: [ref - ref.Weekday(), +6], ambos extremos
// inclusive. Si el rango custom viene invertido se intercambian los extremos
// antes de filtrar, de modo que start <= end siempre vale.
func MatchesPeriod(aptDate time.Time, p Period, ref time.Time, custom CustomRange) bool {
	d := dateOnly(aptDate)
	r := dateOnly(ref)

	switch p {
	case PeriodDay:
		return d.Equal(r)
	case PeriodWeek:
		start := r.AddDate(0, 0, -int(r.Weekday()))
		end := start.AddDate(0, 0, 6)
		return !d.Before(start) && !d.After(end)
	case PeriodMonth:
		return d.Year() == r.Year() && d.Month() == r.Month()
	case PeriodCustom:
		if custom.Start == nil || custom.End == nil {
			return false
		}
		start, end := dateOnly(*custom.Start), dateOnly(*custom.End)
		if start.After(end) {
			start, end = end, start
		}
		return !d.Before(start) && !d.After(end)
	}
	return false
}

// Summary son los agregados de un período: total general, por tipo de
// servicio y conteos.
type Summary struct {
	Total       currency.Cents
	ByType      map[appointments.ServiceType]currency.Cents
	Count       int
	CountByType map[appointments.ServiceType]int
}

// Aggregate recorre el snapshot y suma los agendamientos que matchean.
// Un tipo de servicio fuera de la enumeración suma a Total/Count pero a
// ningún bucket por tipo: no debería pasar, pero jamás rompe.
func Aggregate(appts []appointments.Appointment, match func(appointments.Appointment) bool) Summary {
	sum := Summary{
		ByType: map[appointments.ServiceType]currency.Cents{
			appointments.ServiceLaser: 0,
			appointments.ServiceCera:  0,
		},
		CountByType: map[appointments.ServiceType]int{
			appointments.ServiceLaser: 0,
			appointments.ServiceCera:  0,
		},
	}

	for _, a := range appts {
		if !match(a) {
			continue
		}
		sum.Total += a.Value
		sum.Count++
		if a.ServiceType.Valid() {
			sum.ByType[a.ServiceType] += a.Value
			sum.CountByType[a.ServiceType]++
		}
	}
	return sum
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
