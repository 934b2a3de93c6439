package artists

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Directory справочник артистов с модерацией.
// Регистрация всегда создает запись в статусе pending;
// одобрение и отклонение (удаление) доступны только администратору.
type Directory struct {
	store        Store
	gate         Authorizer
	timeProvider TimeProvider
	logger       Logger
}

// NewDirectory создает новый экземпляр справочника
func NewDirectory(store Store, gate Authorizer, timeProvider TimeProvider, logger Logger) *Directory {
	return &Directory{
		store:        store,
		gate:         gate,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register регистрирует нового артиста в статусе pending
func (d *Directory) Register(ctx context.Context, req RegisterRequest) (*domain.Artist, error) {
	req = req.trim()
	d.logger.Info("Register: name=%q stage=%q", req.Name, req.StageName)

	if err := validateRegister(req); err != nil {
		d.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	artist := domain.Artist{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Phone:       req.Phone,
		StageName:   req.StageName,
		Genre:       req.Genre,
		Instagram:   req.Instagram,
		TikTok:      req.TikTok,
		YouTube:     req.YouTube,
		Twitter:     req.Twitter,
		VideoURL:    req.VideoURL,
		VideoLineID: req.VideoLineID,
		LineID:      req.LineID,
		Note:        req.Note,
		Status:      domain.ArtistPending,
		CreatedAt:   d.timeProvider.Now().UTC(),
	}

	err := d.store.Mutate(ctx, func(state *snapshot.State) error {
		state.Artists[artist.ID] = artist
		return nil
	})
	if err != nil {
		d.logger.Error("Register: failed to store artist: %v", err)
		return nil, err
	}

	d.logger.Info("Register: artist id=%s registered, awaiting approval", artist.ID)
	return &artist, nil
}

// Lookup ищет артиста по имени, сценическому имени или телефону.
// Возвращает первое совпадение в порядке регистрации.
func (d *Directory) Lookup(query string) (*domain.Artist, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	m := newMatcher(query)
	for _, a := range sortedByCreation(d.store.View()) {
		if m.match(&a) {
			d.logger.Info("Lookup: query=%q matched artist id=%s status=%s", query, a.ID, a.Status)
			return &a, nil
		}
	}

	d.logger.Info("Lookup: query=%q no match", query)
	return nil, ErrArtistNotFound
}

// Get возвращает артиста по ID
func (d *Directory) Get(id string) (*domain.Artist, error) {
	a, ok := d.store.View().Artists[id]
	if !ok {
		return nil, ErrArtistNotFound
	}
	return &a, nil
}

// List возвращает всех артистов: сначала ожидающие модерации, затем новые выше старых
func (d *Directory) List() []domain.Artist {
	list := sortedByCreation(d.store.View())
	slices.Reverse(list)
	slices.SortStableFunc(list, func(a, b domain.Artist) int {
		switch {
		case a.IsPending() && !b.IsPending():
			return -1
		case !a.IsPending() && b.IsPending():
			return 1
		}
		return 0
	})
	return list
}

// PendingCount возвращает количество анкет, ожидающих модерации
func (d *Directory) PendingCount() int {
	count := 0
	for _, a := range d.store.View().Artists {
		if a.IsPending() {
			count++
		}
	}
	return count
}

// Approve переводит артиста из pending в approved. Повторное одобрение не ошибка.
func (d *Directory) Approve(ctx context.Context, id string) (*domain.Artist, error) {
	if err := d.gate.Require(); err != nil {
		d.logger.Warn("Approve: artist id=%s rejected: %v", id, err)
		return nil, err
	}

	var approved domain.Artist
	err := d.store.Mutate(ctx, func(state *snapshot.State) error {
		a, ok := state.Artists[id]
		if !ok {
			return ErrArtistNotFound
		}
		a.Status = domain.ArtistApproved
		state.Artists[id] = a
		approved = a
		return nil
	})
	if err != nil {
		d.logger.Warn("Approve: artist id=%s failed: %v", id, err)
		return nil, err
	}

	d.logger.Info("Approve: artist id=%s approved", id)
	return &approved, nil
}

// Reject удаляет анкету артиста целиком
func (d *Directory) Reject(ctx context.Context, id string) error {
	if err := d.gate.Require(); err != nil {
		d.logger.Warn("Reject: artist id=%s rejected: %v", id, err)
		return err
	}

	err := d.store.Mutate(ctx, func(state *snapshot.State) error {
		if _, ok := state.Artists[id]; !ok {
			return ErrArtistNotFound
		}
		delete(state.Artists, id)
		return nil
	})
	if err != nil {
		d.logger.Warn("Reject: artist id=%s failed: %v", id, err)
		return err
	}

	d.logger.Info("Reject: artist id=%s removed", id)
	return nil
}

// sortedByCreation возвращает артистов по времени регистрации, при равенстве по ID
func sortedByCreation(state *snapshot.State) []domain.Artist {
	list := make([]domain.Artist, 0, len(state.Artists))
	for _, a := range state.Artists {
		list = append(list, a)
	}
	slices.SortFunc(list, func(a, b domain.Artist) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return list
}
