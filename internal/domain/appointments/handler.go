package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"studio-agenda/internal/middleware"
	"studio-agenda/internal/platform/currency"
	"studio-agenda/internal/platform/phone"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listHandler(svc))
		ar.Post("/", createHandler(svc))

		// Grilla de horarios del día (ocupado / disponible + cliente)
		ar.Get("/slots", slotsHandler(svc))

		ar.Put("/{appointmentID}", updateHandler(svc))
		ar.Delete("/{appointmentID}", deleteHandler(svc))
	})
}

type appointmentRequest struct {
	Date         string         `json:"date"` // YYYY-MM-DD
	Times        []string       `json:"times"`
	Type         string         `json:"type"`
	ClientName   string         `json:"client_name"`
	Value        currency.Cents `json:"value"` // opcional, default 0
	Observations string         `json:"observations"`
	Phone        string         `json:"phone"`
}

type appointmentResponse struct {
	ID           string         `json:"id"`
	OwnerUserID  string         `json:"user_id"`
	Date         string         `json:"date"`
	Times        []string       `json:"times"`
	Type         string         `json:"type"`
	ClientName   string         `json:"client_name"`
	Value        currency.Cents `json:"value"`
	Observations string         `json:"observations"`
	Phone        string         `json:"phone,omitempty"`
	PhoneDisplay string         `json:"phone_display,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		in, err := decodeAppointment(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		in, err := decodeAppointment(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		id := chi.URLParam(r, "appointmentID")
		a, err := svc.Update(r.Context(), claims.UserID, id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		id := chi.URLParam(r, "appointmentID")
		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var f ListFilter
		q := r.URL.Query()
		if v := strings.TrimSpace(q.Get("date")); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			f.Date = &d
		} else if q.Get("startDate") != "" || q.Get("endDate") != "" {
			start, err := time.Parse(dateLayout, q.Get("startDate"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
				return
			}
			end, err := time.Parse(dateLayout, q.Get("endDate"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
				return
			}
			f.StartDate, f.EndDate = &start, &end
		}

		items, err := svc.List(r.Context(), claims.UserID, f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func slotsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		d, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		grid, err := svc.DayGrid(r.Context(), claims.UserID, d)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, grid)
	}
}

func decodeAppointment(r *http.Request) (Input, error) {
	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Input{}, errors.New("invalid json")
	}

	d, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return Input{}, errors.New("date must be YYYY-MM-DD")
	}

	return Input{
		Date:         d,
		Times:        req.Times,
		ServiceType:  ServiceType(strings.TrimSpace(req.Type)),
		ClientName:   req.ClientName,
		Value:        req.Value,
		Observations: req.Observations,
		Phone:        req.Phone,
	}, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSlotTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "appointment not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:           a.ID,
		OwnerUserID:  a.OwnerUserID,
		Date:         a.DateKey(),
		Times:        a.Times,
		Type:         string(a.ServiceType),
		ClientName:   a.ClientName,
		Value:        a.Value,
		Observations: a.Observations,
		Phone:        a.Phone,
		PhoneDisplay: phone.Format(a.Phone),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
