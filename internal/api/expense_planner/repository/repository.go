package plannerRepository

import (
	"ExpensePlannerGolang/internal/entity"
	redisPkg "ExpensePlannerGolang/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ledgerStorageKey is the single key the whole ledger lives under. Every save
// rewrites the full blob; there is no incremental persistence.
const ledgerStorageKey = "expense_planner:entries"

func New(kv redisPkg.IRedis, log *logrus.Logger) Repository {
	return &repository{
		kv:  kv,
		log: log,
	}
}

type repository struct {
	kv  redisPkg.IRedis
	log *logrus.Logger
}

type Repository interface {
	NewClient() Client
}

func (r *repository) NewClient() Client {
	return Client{
		Ledger: &ledgerRepository{kv: r.kv, log: r.log},
	}
}

type Client struct {
	Ledger interface {
		LoadEntries(ctx context.Context) ([]entity.LedgerEntry, error)
		SaveEntries(ctx context.Context, entries []entity.LedgerEntry) error
	}
}
