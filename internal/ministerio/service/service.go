package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ministerios/internal/ministerio/metrics"
	"ministerios/internal/ministerio/model"
	"ministerios/internal/ministerio/repository"
	"ministerios/internal/ministerio/util"
)

var (
	ErrNotFound   = errors.New("ministerio not found")
	ErrValidation = errors.New("validation error")
	ErrConnection = errors.New("storage unavailable")
	ErrBadRequest = errors.New("bad request")
)

var classify = metrics.SentinelClassifier(ErrNotFound, ErrValidation, ErrConnection, ErrBadRequest)

type MinisterioService interface {
	CreateMinisterio(ctx context.Context, fields model.MinisterioFields) (*model.Ministerio, error)
	GetMinisterio(ctx context.Context, id string) (*model.Ministerio, error)
	UpdateMinisterio(ctx context.Context, id string, patch model.MinisterioPatch) (*model.Ministerio, error)
	DeleteMinisterio(ctx context.Context, id string) error
	ListMinisterios(ctx context.Context, filter model.MinisterioFilter) ([]*model.Ministerio, error)
	Ping(ctx context.Context) error
}

type Service struct {
	Repo repository.MinisterioRepository
}

func NewService(repo repository.MinisterioRepository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateMinisterio(ctx context.Context, fields model.MinisterioFields) (m *model.Ministerio, err error) {
	defer s.observe("create", time.Now(), &err)

	m, err = s.Repo.Create(ctx, fields)
	if err != nil {
		return nil, mapRepoError(err)
	}

	util.GetLogger().Info("Audit: Ministerio created", "id", m.ID.Hex(), "nombre", m.Nombre, "miembro_id", m.MiembroID)
	return m, nil
}

func (s *Service) GetMinisterio(ctx context.Context, id string) (m *model.Ministerio, err error) {
	defer s.observe("find", time.Now(), &err)

	id, err = normalizeID(id)
	if err != nil {
		return nil, err
	}

	m, err = s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return m, nil
}

func (s *Service) UpdateMinisterio(ctx context.Context, id string, patch model.MinisterioPatch) (m *model.Ministerio, err error) {
	defer s.observe("update", time.Now(), &err)

	id, err = normalizeID(id)
	if err != nil {
		return nil, err
	}

	m, err = s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err)
	}

	changed := make([]string, 0, 4)
	for k := range patch.Fields() {
		changed = append(changed, k)
	}
	util.GetLogger().Info("Audit: Ministerio updated", "id", id, "fields", changed)
	return m, nil
}

func (s *Service) DeleteMinisterio(ctx context.Context, id string) (err error) {
	defer s.observe("delete", time.Now(), &err)

	id, err = normalizeID(id)
	if err != nil {
		return err
	}

	if err = s.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	util.GetLogger().Info("Audit: Ministerio deleted", "id", id)
	return nil
}

func (s *Service) ListMinisterios(ctx context.Context, filter model.MinisterioFilter) (list []*model.Ministerio, err error) {
	defer s.observe("query", time.Now(), &err)

	if filter.Skip < 0 || filter.Limit < 0 {
		return nil, ErrBadRequest
	}

	list, err = s.Repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return list, nil
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.Repo.Ping(ctx); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// observe counts every call. Only backend and unexpected failures are logged
// at error level; caller mistakes stay at debug.
func (s *Service) observe(op string, start time.Time, err *error) {
	outcome := classify(*err)
	metrics.Observe(op, time.Since(start).Seconds(), outcome)
	switch outcome {
	case metrics.OutcomeConnection, metrics.OutcomeError:
		util.GetLogger().Error("Ministerio operation failed", "operation", op, "error", *err)
	case metrics.OutcomeBadRequest:
		util.GetLogger().Debug("Ministerio operation rejected", "operation", op, "error", *err)
	}
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrBadRequest
	}
	return id, nil
}

// mapRepoError converts repository sentinels to service sentinels. The driver cause stays wrapped.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrValidation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, repository.ErrConnection):
		return fmt.Errorf("%w: %w", ErrConnection, err)
	default:
		return err
	}
}
