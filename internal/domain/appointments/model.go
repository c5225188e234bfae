package appointments

import (
	"time"

	"studio-agenda/internal/platform/currency"
)

// ServiceType define los tipos de servicio soportados.
// @Enum Laser, Cera
type ServiceType string

const (
	ServiceLaser ServiceType = "Laser"
	ServiceCera  ServiceType = "Cera"
)

// Valid reporta si el tipo pertenece a la enumeración cerrada.
func (t ServiceType) Valid() bool {
	return t == ServiceLaser || t == ServiceCera
}

// Appointment representa un agendamiento de la operadora.
// Date es solo fecha (medianoche UTC); Times son las etiquetas HH:MM de la
// grilla fija que el agendamiento ocupa, ordenadas y sin repetir.
type Appointment struct {
	ID          string
	OwnerUserID string

	Date        time.Time
	Times       []string
	ServiceType ServiceType

	ClientName   string
	Value        currency.Cents
	Observations string
	Phone        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateKey devuelve la fecha como clave YYYY-MM-DD, la forma en que la grilla
// agrupa agendamientos por día.
func (a Appointment) DateKey() string {
	return a.Date.Format("2006-01-02")
}
