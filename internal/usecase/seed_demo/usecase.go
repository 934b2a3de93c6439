package seed_demo

import (
	"context"
)

// UseCase use case для заполнения хранилища демо-данными
type UseCase struct {
	store        Store
	gate         Authorizer
	horizon      Horizon
	timeProvider TimeProvider
	seed         int64
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store Store,
	gate Authorizer,
	horizon Horizon,
	timeProvider TimeProvider,
	seed int64,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		gate:         gate,
		horizon:      horizon,
		timeProvider: timeProvider,
		seed:         seed,
		logger:       logger,
	}
}

// Execute заполняет хранилище. Без Force непустое хранилище не трогается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SeedDemo: force=%t seed=%d", req.Force, uc.seed)

	// 1. Перезапись существующих данных только администратором
	if req.Force {
		if err := uc.gate.Require(); err != nil {
			uc.logger.Warn("SeedDemo: rejected: %v", err)
			return nil, err
		}
	} else if !uc.store.View().IsEmpty() {
		uc.logger.Info("SeedDemo: store is not empty, skipping")
		return &Response{Skipped: true}, nil
	}

	// 2. Строим снапшот на текущий горизонт
	state := Build(uc.seed, uc.timeProvider.Now(), uc.horizon.Today(), uc.horizon.End())

	// 3. Заменяем состояние целиком
	if err := uc.store.Replace(ctx, state); err != nil {
		uc.logger.Error("SeedDemo: failed to replace state: %v", err)
		return nil, err
	}

	resp := &Response{
		Artists:      len(state.Artists),
		Reservations: len(state.Reservations),
		ClosedSlots:  len(state.ClosedSlots),
	}
	uc.logger.Info("SeedDemo: artists=%d reservations=%d closed=%d",
		resp.Artists, resp.Reservations, resp.ClosedSlots)
	return resp, nil
}
