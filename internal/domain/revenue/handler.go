package revenue

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"studio-agenda/internal/domain/appointments"
	"studio-agenda/internal/middleware"
	"studio-agenda/internal/platform/currency"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/revenue", reportHandler(svc))
}

type reportResponse struct {
	Total      currency.Cents `json:"total"`
	Laser      currency.Cents `json:"laser"`
	Cera       currency.Cents `json:"cera"`
	Count      int            `json:"count"`
	CountLaser int            `json:"count_laser"`
	CountCera  int            `json:"count_cera"`
}

func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		q := r.URL.Query()

		period, err := ParsePeriod(q.Get("period"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Sin date explícita el reporte se ancla en hoy (comportamiento
		// esperado por la pantalla de receitas).
		ref := time.Now().UTC()
		if v := strings.TrimSpace(q.Get("date")); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			ref = d
		}

		query := Query{Period: period, Reference: ref}
		if v := strings.TrimSpace(q.Get("startDate")); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
				return
			}
			query.Start = &d
		}
		if v := strings.TrimSpace(q.Get("endDate")); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
				return
			}
			query.End = &d
		}

		sum, err := svc.Report(r.Context(), claims.UserID, query)
		if err != nil {
			if errors.Is(err, appointments.ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, reportResponse{
			Total:      sum.Total,
			Laser:      sum.ByType[appointments.ServiceLaser],
			Cera:       sum.ByType[appointments.ServiceCera],
			Count:      sum.Count,
			CountLaser: sum.CountByType[appointments.ServiceLaser],
			CountCera:  sum.CountByType[appointments.ServiceCera],
		})
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
