package schedule

import (
	"reflect"
	"testing"
)

const day = "2024-04-01"

func TestTimeSlots_Grid(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 28 {
		t.Fatalf("expected 28 slots, got %d", len(slots))
	}
	if slots[0] != "07:00" {
		t.Fatalf("expected first slot 07:00, got %s", slots[0])
	}
	if slots[1] != "07:30" {
		t.Fatalf("expected second slot 07:30, got %s", slots[1])
	}
	if slots[len(slots)-1] != "20:30" {
		t.Fatalf("expected last slot 20:30, got %s", slots[len(slots)-1])
	}

	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots out of order: %s >= %s", slots[i-1], slots[i])
		}
	}
}

func TestValidLabel(t *testing.T) {
	for _, l := range TimeSlots() {
		if !ValidLabel(l) {
			t.Fatalf("expected %s to be valid", l)
		}
	}
	for _, l := range []string{"06:30", "21:00", "9:00", "09:15", ""} {
		if ValidLabel(l) {
			t.Fatalf("expected %s to be invalid", l)
		}
	}
}

func TestStatus_OccupiedWinsOverSelected(t *testing.T) {
	booked := []Booking{
		{AppointmentID: "a1", DateKey: day, Times: []string{"09:00"}, ClientName: "Maria"},
	}

	if got := Status("09:00", day, booked, []string{"09:00"}, ""); got != StatusOccupied {
		t.Fatalf("expected occupied, got %s", got)
	}
	if got := Status("09:30", day, booked, []string{"09:30"}, ""); got != StatusSelected {
		t.Fatalf("expected selected, got %s", got)
	}
	if got := Status("10:00", day, booked, []string{"09:30"}, ""); got != StatusAvailable {
		t.Fatalf("expected available, got %s", got)
	}
}

func TestStatus_OtherDateDoesNotOccupy(t *testing.T) {
	booked := []Booking{
		{AppointmentID: "a1", DateKey: "2024-04-02", Times: []string{"09:00"}},
	}

	if got := Status("09:00", day, booked, nil, ""); got != StatusAvailable {
		t.Fatalf("expected available on a different date, got %s", got)
	}
}

func TestStatus_EditingExcludesOwnAppointment(t *testing.T) {
	booked := []Booking{
		{AppointmentID: "a1", DateKey: day, Times: []string{"09:00"}},
		{AppointmentID: "a2", DateKey: day, Times: []string{"10:00"}},
	}

	// El propio agendamiento en edición no se bloquea a sí mismo
	if got := Status("09:00", day, booked, nil, "a1"); got != StatusAvailable {
		t.Fatalf("expected available while editing a1, got %s", got)
	}
	// Pero los demás sí siguen ocupando
	if got := Status("10:00", day, booked, nil, "a1"); got != StatusOccupied {
		t.Fatalf("expected occupied for a2's slot, got %s", got)
	}
}

func TestToggle_OccupiedIsNoop(t *testing.T) {
	booked := []Booking{
		{AppointmentID: "a1", DateKey: day, Times: []string{"09:00"}},
	}
	sel := []string{"08:00"}

	got := Toggle("09:00", day, booked, sel, "")
	if !reflect.DeepEqual(got, sel) {
		t.Fatalf("expected selection unchanged, got %v", got)
	}

	// Idempotente: repetir el intento tampoco cambia nada
	got = Toggle("09:00", day, booked, got, "")
	if !reflect.DeepEqual(got, sel) {
		t.Fatalf("expected selection unchanged after repeat, got %v", got)
	}
}

func TestToggle_AddRemoveKeepsOrder(t *testing.T) {
	var sel []string

	sel = Toggle("10:00", day, nil, sel, "")
	sel = Toggle("08:30", day, nil, sel, "")
	sel = Toggle("09:00", day, nil, sel, "")

	want := []string{"08:30", "09:00", "10:00"}
	if !reflect.DeepEqual(sel, want) {
		t.Fatalf("expected %v, got %v", want, sel)
	}

	sel = Toggle("09:00", day, nil, sel, "")
	want = []string{"08:30", "10:00"}
	if !reflect.DeepEqual(sel, want) {
		t.Fatalf("expected %v after removal, got %v", want, sel)
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	sel := []string{"08:00", "09:00"}
	_ = Toggle("10:00", day, nil, sel, "")

	if !reflect.DeepEqual(sel, []string{"08:00", "09:00"}) {
		t.Fatalf("input selection was mutated: %v", sel)
	}
}

func TestOccupied_ReturnsConflictingSubset(t *testing.T) {
	booked := []Booking{
		{AppointmentID: "a1", DateKey: day, Times: []string{"09:00", "09:30"}},
	}

	taken := Occupied([]string{"08:30", "09:00", "09:30", "10:00"}, day, booked, "")
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(taken, want) {
		t.Fatalf("expected %v, got %v", want, taken)
	}

	if taken := Occupied([]string{"09:00"}, day, booked, "a1"); len(taken) != 0 {
		t.Fatalf("expected no conflicts while editing a1, got %v", taken)
	}
}

func TestDayGrid_ShowsClientOnOccupied(t *testing.T) {
	booked := []Booking{
		{AppointmentID: "a1", DateKey: day, Times: []string{"07:00"}, ClientName: "Ana"},
	}

	grid := DayGrid(day, booked)
	if len(grid) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(grid))
	}
	if grid[0].Status != StatusOccupied || grid[0].ClientName != "Ana" {
		t.Fatalf("expected 07:00 occupied by Ana, got %+v", grid[0])
	}
	if grid[1].Status != StatusAvailable || grid[1].ClientName != "" {
		t.Fatalf("expected 07:30 available, got %+v", grid[1])
	}
}
