package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// verifyHash checks the HMAC-SHA256 of the request body against the
// HashSHA256 header. It is a pass-through when no hash key is configured.
func (h *Handler) verifyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyHash").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Err(ErrMissingBodyHash).Str("func", "*Handler.verifyHash").Send()
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		if !h.hasher.Verify(body, signature) {
			log.Err(ErrBodyHashMismatch).Str("func", "*Handler.verifyHash").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
