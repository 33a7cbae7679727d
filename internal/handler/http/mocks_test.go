package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getUserFn      func(ctx context.Context, userID string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProfileService struct {
	getProfileFn func(ctx context.Context, userID string) (models.Profile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return m.getProfileFn(ctx, userID)
}

type mockNoteService struct {
	listNotesFn      func(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	createNoteFn     func(ctx context.Context, userID string, note models.NewNote) (models.Note, error)
	updateNoteFn     func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteNoteFn     func(ctx context.Context, key models.NoteKey) error
	renderNoteHTMLFn func(ctx context.Context, key models.NoteKey) ([]byte, error)
}

func (m *mockNoteService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	return m.listNotesFn(ctx, req)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID string, note models.NewNote) (models.Note, error) {
	return m.createNoteFn(ctx, userID, note)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	return m.updateNoteFn(ctx, update)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, key models.NoteKey) error {
	return m.deleteNoteFn(ctx, key)
}

func (m *mockNoteService) RenderNoteHTML(ctx context.Context, key models.NoteKey) ([]byte, error) {
	return m.renderNoteHTMLFn(ctx, key)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

const (
	testUserID = "0190a5b2-7c1e-7d3a-9f00-000000000001"
	testNoteID = "0190a5b2-7c1e-7d3a-9f00-0000000000aa"
	testToken  = "valid-token"
)

// newTestHandler returns a handler over the given services. ParseToken of
// the auth service accepts testToken as testUserID unless the caller set
// its own parseTokenFn.
func newTestHandler(auth *mockAuthService, profiles *mockProfileService, notes *mockNoteService, cfg *config.StructuredConfig) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if auth.parseTokenFn == nil {
		auth.parseTokenFn = func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		}
	}
	if profiles == nil {
		profiles = &mockProfileService{}
	}
	if notes == nil {
		notes = &mockNoteService{}
	}
	if cfg == nil {
		cfg = &config.StructuredConfig{}
	}

	services := &service.Services{
		AuthService:    auth,
		ProfileService: profiles,
		NoteService:    notes,
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	}
	return NewHandler(services, cfg, logger.Nop())
}

func serve(h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

// serveDirect calls fn without the router, so no middleware runs.
func serveDirect(fn http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(method, target, nil))
	return rec
}
