package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodosen/repositori-backend/internal/repository"
	"github.com/repodosen/repositori-backend/internal/service"
)

func TestDosenCreateAndGet(t *testing.T) {
	svc := service.NewDosenService(newMockDosenRepo())

	created, err := svc.Create(context.Background(), "D001", "Ada", 1)
	require.NoError(t, err)
	assert.Equal(t, "D001", created.NIP)

	got, err := svc.GetByNIP(context.Background(), "D001")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.NamaLengkap)
	assert.Equal(t, 1, got.ProdiID)
}

func TestDosenCreateDuplicateNIP(t *testing.T) {
	svc := service.NewDosenService(newMockDosenRepo())

	_, err := svc.Create(context.Background(), "D001", "Ada", 1)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "D001", "Bob", 2)
	assert.ErrorIs(t, err, service.ErrDuplicateKey)
}

func TestDosenCreateDanglingProdi(t *testing.T) {
	repo := newMockDosenRepo()
	repo.forcedErr = repository.ErrForeignKey
	svc := service.NewDosenService(repo)

	_, err := svc.Create(context.Background(), "D001", "Ada", 99)
	assert.ErrorIs(t, err, service.ErrMissingReference)
}

func TestDosenUpdateReplacesAllFields(t *testing.T) {
	svc := service.NewDosenService(newMockDosenRepo())

	_, err := svc.Create(context.Background(), "D001", "Ada", 1)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "D001", "Ada Lovelace", 2)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.NamaLengkap)
	assert.Equal(t, 2, updated.ProdiID)
}

func TestDosenUpdateMissing(t *testing.T) {
	svc := service.NewDosenService(newMockDosenRepo())

	_, err := svc.Update(context.Background(), "D404", "Ada", 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDosenDeleteTwice(t *testing.T) {
	svc := service.NewDosenService(newMockDosenRepo())

	_, err := svc.Create(context.Background(), "D001", "Ada", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "D001"))

	err = svc.Delete(context.Background(), "D001")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
