package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// ClientServices groups the services used by the terminal screens.
type ClientServices struct {
	AuthService    ClientAuthService
	NotesService   ClientNotesService
	AccountService ClientAccountService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(storages.SessionRepository, serverAdapter, logger),
		NotesService:   NewClientNotesService(serverAdapter, logger),
		AccountService: NewClientAccountService(serverAdapter, logger),
	}
}
