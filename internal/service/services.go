package service

import (
	"github.com/amekhanov/drill-journal/internal/adapter"
	"github.com/amekhanov/drill-journal/internal/store"
	"github.com/amekhanov/drill-journal/internal/validators"
)

type Services struct {
	Journal JournalService
}

func NewServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, presenter Presenter) *Services {
	return &Services{
		Journal: NewJournalService(
			storages.Wells,
			storages.Layers,
			serverAdapter,
			validators.NewRecordValidator(),
			presenter,
		),
	}
}
