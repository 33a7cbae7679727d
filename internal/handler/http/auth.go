package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.register").Int("status", status).Msg("user registration failed")
		return
	}

	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.login").Int("status", status).Msg("user login failed")
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser)
}

// issueToken answers a successful register or login: the bearer token in
// the Authorization header and the identity in the body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.issueToken").Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, user.Identity(), http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.currentUser").Int("status", status).Msg("user search failed")
		return
	}

	_, _ = utils.WriteJSON(w, user.Identity(), http.StatusOK)
}
