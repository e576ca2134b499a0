package plannerRepository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ExpensePlannerGolang/internal/entity"
	redisPkg "ExpensePlannerGolang/pkg/redis"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) SetBlob(_ context.Context, key string, payload string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = payload
	return nil
}

func (f *fakeKV) GetBlob(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	val, ok := f.data[key]
	if !ok {
		return "", redisPkg.ErrKeyNotFound
	}
	return val, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testEntries() []entity.LedgerEntry {
	date := time.Date(2025, 5, 9, 12, 0, 0, 0, time.UTC)
	return []entity.LedgerEntry{
		{ID: "a", Date: date, Category: "Income", Description: "Salary", Amount: 1000, IsIncome: true},
		{ID: "b", Date: date.AddDate(0, 0, 1), Category: "Food", Description: "Groceries", Amount: 300, IsIncome: false},
		{ID: "c", Date: date.AddDate(0, 0, 2), Category: "Transport", Description: "Bus pass", Amount: 100, IsIncome: false},
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	kv := newFakeKV()
	repo := New(kv, testLogger()).NewClient()
	ctx := context.Background()

	entries := testEntries()
	require.NoError(t, repo.Ledger.SaveEntries(ctx, entries))

	loaded, err := repo.Ledger.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestLoadEntries_MissingKey(t *testing.T) {
	repo := New(newFakeKV(), testLogger()).NewClient()

	loaded, err := repo.Ledger.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestLoadEntries_MalformedPayload(t *testing.T) {
	kv := newFakeKV()
	kv.data[ledgerStorageKey] = `{"this is": "not an array"`
	repo := New(kv, testLogger()).NewClient()

	loaded, err := repo.Ledger.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadEntries_StorageUnavailable(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("connection refused")
	repo := New(kv, testLogger()).NewClient()

	loaded, err := repo.Ledger.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveEntries_RewritesFullBlob(t *testing.T) {
	kv := newFakeKV()
	repo := New(kv, testLogger()).NewClient()
	ctx := context.Background()

	entries := testEntries()
	require.NoError(t, repo.Ledger.SaveEntries(ctx, entries[:1]))
	require.NoError(t, repo.Ledger.SaveEntries(ctx, entries))

	loaded, err := repo.Ledger.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestSaveEntries_StorageError(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("connection refused")
	repo := New(kv, testLogger()).NewClient()

	err := repo.Ledger.SaveEntries(context.Background(), testEntries())
	assert.Error(t, err)
}
