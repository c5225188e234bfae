// Package schedule implementa la grilla de horarios y la selección de slots.
// Todas las funciones son puras: reciben el snapshot de agendamientos y la
// selección en curso, y nunca mutan sus argumentos.
package schedule

import (
	"fmt"
	"sort"
)

const slotCount = 28

// SlotStatus es el estado de un horario en la grilla de un día.
type SlotStatus string

const (
	StatusOccupied  SlotStatus = "occupied"
	StatusSelected  SlotStatus = "selected"
	StatusAvailable SlotStatus = "available"
)

// Booking es la vista mínima de un agendamiento que necesita la grilla.
// El paquete appointments convierte su modelo a este tipo.
type Booking struct {
	AppointmentID string
	DateKey       string // YYYY-MM-DD
	Times         []string
	ClientName    string
}

// SlotInfo es una celda de la grilla de un día.
type SlotInfo struct {
	Time       string     `json:"time"`
	Status     SlotStatus `json:"status"`
	ClientName string     `json:"client_name,omitempty"`
}

var validLabels = func() map[string]struct{} {
	m := make(map[string]struct{}, slotCount)
	for _, l := range TimeSlots() {
		m[l] = struct{}{}
	}
	return m
}()

// TimeSlots devuelve las 28 etiquetas de media hora entre 07:00 y 20:30.
// La secuencia es fija e idéntica para cualquier fecha.
func TimeSlots() []string {
	out := make([]string, 0, slotCount)
	for i := 0; i < slotCount; i++ {
		h := 7 + i/2
		m := 0
		if i%2 == 1 {
			m = 30
		}
		out = append(out, fmt.Sprintf("%02d:%02d", h, m))
	}
	return out
}

// ValidLabel reporta si label pertenece a la grilla fija.
func ValidLabel(label string) bool {
	_, ok := validLabels[label]
	return ok
}

// Status clasifica un horario para una fecha dada.
// Ocupado gana sobre seleccionado; los horarios del agendamiento en edición
// (editingID) no cuentan como ocupados contra sí mismo.
func Status(label, dateKey string, booked []Booking, selection []string, editingID string) SlotStatus {
	if isOccupied(label, dateKey, booked, editingID) {
		return StatusOccupied
	}
	if containsLabel(selection, label) {
		return StatusSelected
	}
	return StatusAvailable
}

// Toggle alterna la pertenencia de label en la selección y devuelve la nueva
// selección en orden ascendente. Sobre un horario ocupado es un no-op:
// repetir el toggle jamás cambia la selección.
func Toggle(label, dateKey string, booked []Booking, selection []string, editingID string) []string {
	if isOccupied(label, dateKey, booked, editingID) {
		return selection
	}

	out := make([]string, 0, len(selection)+1)
	found := false
	for _, s := range selection {
		if s == label {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, label)
	}

	// Lexicográfico alcanza: HH:MM es de ancho fijo con cero a la izquierda.
	sort.Strings(out)
	return out
}

// Occupied devuelve el subconjunto de labels ya ocupados en la fecha,
// preservando el orden de entrada. Es el chequeo que usa el servicio de
// agendamientos para rechazar una reserva en conflicto.
func Occupied(labels []string, dateKey string, booked []Booking, editingID string) []string {
	var taken []string
	for _, l := range labels {
		if isOccupied(l, dateKey, booked, editingID) {
			taken = append(taken, l)
		}
	}
	return taken
}

// DayGrid arma la grilla completa de un día para render: cada celda con su
// estado y, si está ocupada, el nombre del cliente que la reservó.
func DayGrid(dateKey string, booked []Booking) []SlotInfo {
	out := make([]SlotInfo, 0, slotCount)
	for _, label := range TimeSlots() {
		cell := SlotInfo{Time: label, Status: StatusAvailable}
		for _, b := range booked {
			if b.DateKey != dateKey {
				continue
			}
			if containsLabel(b.Times, label) {
				cell.Status = StatusOccupied
				cell.ClientName = b.ClientName
				break
			}
		}
		out = append(out, cell)
	}
	return out
}

func isOccupied(label, dateKey string, booked []Booking, editingID string) bool {
	for _, b := range booked {
		if b.DateKey != dateKey {
			continue
		}
		if editingID != "" && b.AppointmentID == editingID {
			continue
		}
		if containsLabel(b.Times, label) {
			return true
		}
	}
	return false
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
