package plannerRepository

import (
	contextPkg "ExpensePlannerGolang/pkg/context"
	redisPkg "ExpensePlannerGolang/pkg/redis"
	"context"
	"errors"

	"ExpensePlannerGolang/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ledgerRepository struct {
	kv  redisPkg.IRedis
	log *logrus.Logger
}

// LoadEntries reads the full ledger blob. A missing key or a payload that no
// longer decodes both count as "no data yet" and yield an empty ledger rather
// than an error.
func (r *ledgerRepository) LoadEntries(ctx context.Context) ([]entity.LedgerEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := r.kv.GetBlob(ctx, ledgerStorageKey)
	if err != nil {
		if !errors.Is(err, redisPkg.ErrKeyNotFound) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Storage error when loading ledger, falling back to empty")
		}
		return []entity.LedgerEntry{}, nil
	}

	var entries []entity.LedgerEntry
	if err := json.UnmarshalFromString(raw, &entries); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Malformed ledger payload, falling back to empty")
		return []entity.LedgerEntry{}, nil
	}

	if entries == nil {
		entries = []entity.LedgerEntry{}
	}

	return entries, nil
}

// SaveEntries serializes the full in-memory list and rewrites the blob.
func (r *ledgerRepository) SaveEntries(ctx context.Context, entries []entity.LedgerEntry) error {
	requestID := contextPkg.GetRequestID(ctx)

	payload, err := json.MarshalToString(entries)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to serialize ledger")
		return err
	}

	if err := r.kv.SetBlob(ctx, ledgerStorageKey, payload); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Storage error when saving ledger")
		return err
	}

	return nil
}
