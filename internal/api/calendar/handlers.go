// internal/api/calendar/handlers.go
package calendar

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/golazo-app/golazo/internal/api/apiutil"
	"github.com/golazo-app/golazo/internal/export"
	"github.com/golazo-app/golazo/internal/occupancy"
	"github.com/golazo-app/golazo/internal/request"
)

const (
	calendarQueryTimeout = 5 * time.Second
	adminIDPathKey       = "adminID"
	fieldIDQueryKey      = "field_id"
	dateQueryKey         = "date"
	xlsxContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	service     *occupancy.Service
	serviceOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(svc *occupancy.Service) {
	if svc == nil {
		return
	}
	serviceOnce.Do(func() {
		service = svc
	})
}

// GET /api/v1/admins/{adminID}/calendar
func HandleWeek(w http.ResponseWriter, r *http.Request) {
	svc, q, ok := prepare(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), calendarQueryTimeout)
	defer cancel()

	view, err := svc.Week(ctx, q)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, view); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write calendar response")
	}
}

// GET /api/v1/admins/{adminID}/calendar/export
func HandleWeekExport(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc, q, ok := prepare(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), calendarQueryTimeout)
	defer cancel()

	view, err := svc.Week(ctx, q)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWeek(view, &buf); err != nil {
		logger.Error().Err(err).Msg("Failed to render calendar workbook")
		http.Error(w, "Failed to export calendar", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(view)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("Failed to write calendar workbook")
	}
}

// GET /api/v1/admins/{adminID}/free-slots
func HandleFreeSlots(w http.ResponseWriter, r *http.Request) {
	svc, q, ok := prepare(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), calendarQueryTimeout)
	defer cancel()

	day, err := svc.FreeSlots(ctx, q)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, day); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write free slots response")
	}
}

func prepare(w http.ResponseWriter, r *http.Request) (*occupancy.Service, occupancy.Query, bool) {
	svc := loadService()
	if svc == nil {
		log.Ctx(r.Context()).Error().Msg("Occupancy service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, occupancy.Query{}, false
	}

	q, err := queryFromRequest(r, svc.Location())
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return nil, occupancy.Query{}, false
	}
	return svc, q, true
}

func queryFromRequest(r *http.Request, loc *time.Location) (occupancy.Query, error) {
	adminID, err := request.IDFromPath(r, adminIDPathKey)
	if err != nil {
		return occupancy.Query{}, err
	}
	fieldID, err := request.OptionalIDFromQuery(r, fieldIDQueryKey)
	if err != nil {
		return occupancy.Query{}, err
	}
	date, err := request.DateFromQuery(r, dateQueryKey, loc)
	if err != nil {
		return occupancy.Query{}, err
	}
	return occupancy.Query{AdminID: adminID, FieldID: fieldID, Date: date}, nil
}

func loadService() *occupancy.Service {
	return service
}
