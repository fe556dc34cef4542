package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"ministerios/internal/ministerio/metrics"
	"ministerios/internal/ministerio/model"
	"ministerios/internal/ministerio/repository"
	"ministerios/internal/ministerio/util"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var jovenes = model.MinisterioFields{
	Nombre:        "Jóvenes",
	FechaCreacion: "2024-01-01",
	Descripcion:   "Grupo juvenil",
	MiembroID:     "m1",
}

func newMemoryService() *Service {
	return NewService(repository.NewMemoryRepository())
}

func TestCreateThenFind(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.CreateMinisterio(ctx, jovenes)
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "2024-01-01", created.FechaCreacion)

	found, err := svc.GetMinisterio(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, jovenes.Nombre, found.Nombre)
	assert.Equal(t, jovenes.FechaCreacion, found.FechaCreacion)
	assert.Equal(t, jovenes.Descripcion, found.Descripcion)
	assert.Equal(t, jovenes.MiembroID, found.MiembroID)
}

func TestUpdateChangesOnlySuppliedField(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.CreateMinisterio(ctx, jovenes)
	require.NoError(t, err)

	updated, err := svc.UpdateMinisterio(ctx, created.ID.Hex(), model.MinisterioPatch{Descripcion: strPtr("x")})
	require.NoError(t, err)

	expected := *created
	expected.Descripcion = "x"
	assert.Equal(t, &expected, updated)

	found, err := svc.GetMinisterio(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, &expected, found)
}

func TestDeleteThenFind(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.CreateMinisterio(ctx, jovenes)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMinisterio(ctx, created.ID.Hex()))

	_, err = svc.GetMinisterio(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteMinisterio(ctx, created.ID.Hex()), ErrNotFound)
	_, err = svc.UpdateMinisterio(ctx, created.ID.Hex(), model.MinisterioPatch{Nombre: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMinisterios(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	_, err := svc.CreateMinisterio(ctx, jovenes)
	require.NoError(t, err)
	_, err = svc.CreateMinisterio(ctx, model.MinisterioFields{Nombre: "Alabanza", MiembroID: "m2"})
	require.NoError(t, err)

	list, err := svc.ListMinisterios(ctx, model.MinisterioFilter{MiembroID: "m2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alabanza", list[0].Nombre)

	_, err = svc.ListMinisterios(ctx, model.MinisterioFilter{Limit: -1})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestBlankIDIsBadRequest(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMinisterioRepository)
	svc := NewService(mockRepo)

	_, err := svc.GetMinisterio(ctx, "  ")
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = svc.UpdateMinisterio(ctx, "", model.MinisterioPatch{})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, svc.DeleteMinisterio(ctx, ""), ErrBadRequest)

	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestBlankIDIsNotCountedAsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := util.Logger
	util.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	t.Cleanup(func() { util.Logger = prev })

	svc := NewService(new(MockMinisterioRepository))
	badBefore := testutil.ToFloat64(metrics.Operations.WithLabelValues("find", metrics.OutcomeBadRequest))
	errBefore := testutil.ToFloat64(metrics.Operations.WithLabelValues("find", metrics.OutcomeError))

	_, err := svc.GetMinisterio(context.Background(), " ")
	require.ErrorIs(t, err, ErrBadRequest)

	assert.Equal(t, badBefore+1, testutil.ToFloat64(metrics.Operations.WithLabelValues("find", metrics.OutcomeBadRequest)))
	assert.Equal(t, errBefore, testutil.ToFloat64(metrics.Operations.WithLabelValues("find", metrics.OutcomeError)))
	assert.Empty(t, buf.String())
}

func TestConnectionFailureIsLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	prev := util.Logger
	util.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { util.Logger = prev })

	mockRepo := new(MockMinisterioRepository)
	mockRepo.On("Delete", mock.Anything, "abc").Return(repository.ErrConnection)
	svc := NewService(mockRepo)

	require.ErrorIs(t, svc.DeleteMinisterio(context.Background(), "abc"), ErrConnection)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"operation":"delete"`)
}

func TestRepositoryErrorsAreMapped(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("socket closed")

	t.Run("connection error", func(t *testing.T) {
		mockRepo := new(MockMinisterioRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", mock.Anything, jovenes).
			Return(nil, fmt.Errorf("%w: %w", repository.ErrConnection, cause))

		_, err := svc.CreateMinisterio(ctx, jovenes)
		assert.ErrorIs(t, err, ErrConnection)
		assert.ErrorIs(t, err, cause)
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockRepo := new(MockMinisterioRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Update", mock.Anything, "abc", mock.Anything).
			Return(nil, fmt.Errorf("%w: %w", repository.ErrValidation, cause))

		_, err := svc.UpdateMinisterio(ctx, " abc ", model.MinisterioPatch{Nombre: strPtr("")})
		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockMinisterioRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Delete", mock.Anything, "abc").Return(repository.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteMinisterio(ctx, "abc"), ErrNotFound)
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		mockRepo := new(MockMinisterioRepository)
		svc := NewService(mockRepo)
		mockRepo.On("List", mock.Anything, model.MinisterioFilter{}).Return(nil, cause)

		_, err := svc.ListMinisterios(ctx, model.MinisterioFilter{})
		assert.Equal(t, cause, err)
	})

	t.Run("ping", func(t *testing.T) {
		mockRepo := new(MockMinisterioRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Ping", mock.Anything).Return(fmt.Errorf("%w: %w", repository.ErrConnection, cause))

		assert.ErrorIs(t, svc.Ping(ctx), ErrConnection)
	})
}
