package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Registry хранит независимые экземпляры мастера по идентификатору контейнера.
// Несколько виджетов на одной странице не разделяют состояние.
type Registry struct {
	mu      sync.RWMutex
	wizards map[string]*Wizard

	backend      Backend
	source       AvailabilitySource
	timeProvider TimeProvider
	logger       Logger
}

// NewRegistry создает реестр мастеров. source может быть nil.
func NewRegistry(backend Backend, source AvailabilitySource, timeProvider TimeProvider, logger Logger) *Registry {
	return &Registry{
		wizards:      make(map[string]*Wizard),
		backend:      backend,
		source:       source,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Open возвращает мастер контейнера, загружая бизнес и расписание при первом обращении.
// Если контейнер уже открыт для другого бизнеса, мастер создается заново,
// а незавершенная загрузка слотов прежнего мастера отменяется.
func (r *Registry) Open(ctx context.Context, containerID, businessID string) (*Wizard, error) {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return nil, ErrInvalidContainer
	}

	r.mu.RLock()
	existing, ok := r.wizards[containerID]
	r.mu.RUnlock()
	if ok && existing.business.ID == businessID {
		return existing, nil
	}

	business, err := r.backend.GetBusiness(ctx, businessID)
	if err != nil {
		r.logger.Error("wizard %s: failed to load business %s: %v", containerID, businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrBusinessUnavailable, err)
	}

	w := New(containerID, business, r.backend, r.source, r.timeProvider, r.logger)
	if err := w.RefreshAvailability(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Параллельный Open мог успеть создать мастер для того же бизнеса
	current, ok := r.wizards[containerID]
	if ok && current.business.ID == businessID {
		return current, nil
	}
	if ok {
		current.discard()
	}
	r.wizards[containerID] = w
	r.logger.Info("wizard %s: opened for business %s", containerID, businessID)
	return w, nil
}

// Get возвращает открытый мастер контейнера
func (r *Registry) Get(containerID string) (*Wizard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wizards[containerID]
	return w, ok
}

// Close удаляет мастер контейнера
func (r *Registry) Close(containerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.wizards[containerID]; ok {
		w.discard()
		delete(r.wizards, containerID)
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wizards)
}
