package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrUserNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrProfileNotFound:    {http.StatusNotFound, app.MsgProfileNotFound},
	store.ErrNoteNotFound:       {http.StatusNotFound, app.MsgNoteNotFound},
}

// responseFromError returns the status code and the body message for err.
// Validation failures keep their reason, e.g. "invalid data provided: title
// is too long". Unknown errors are 500 without details.
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if target == service.ErrInvalidDataProvided {
			full := err.Error()
			if idx := strings.Index(full, app.MsgInvalidDataProvided); idx != -1 {
				return resp.status, full[idx:]
			}
		}
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) int {
	status, msg := responseFromError(err)
	utils.WriteError(w, msg, status)
	return status
}
