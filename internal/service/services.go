package service

import (
	"time"

	"github.com/MKhiriev/shield-chat/internal/adapter"
	"github.com/MKhiriev/shield-chat/internal/crypto"
	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/internal/store"
)

type ClientServices struct {
	KeyChainService crypto.KeyChainService
	Reconciler      Reconciler
	ChatSession     ChatSession
}

func NewClientServices(storages *store.ClientStorages, storeAdapter adapter.StoreAdapter, pollInterval time.Duration, log *logger.Logger) *ClientServices {
	keychain := crypto.NewKeyChainService()
	reconciler := NewReconciler(keychain, log)

	var history store.HistoryRepository
	if storages != nil {
		history = storages.HistoryRepository
	}

	return &ClientServices{
		KeyChainService: keychain,
		Reconciler:      reconciler,
		ChatSession:     NewChatSession(storeAdapter, history, keychain, reconciler, pollInterval, log),
	}
}
