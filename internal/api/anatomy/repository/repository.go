package anatomyRepository

import (
	"AnatomyOverlay/internal/entity"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Overrides: &overrideRepository{q: db, log: r.log},
		Parts:     &partRepository{q: db, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Overrides interface {
		GetOverride(ctx context.Context, structure string) (entity.DescriptionOverride, error)
		UpsertOverride(ctx context.Context, override entity.DescriptionOverride) (entity.DescriptionOverride, error)
		DeleteOverride(ctx context.Context, structure string) error
	}

	Parts interface {
		GetPartDocument(ctx context.Context, partID string) (entity.PartDocument, error)
		UpsertPartDocument(ctx context.Context, doc entity.PartDocument) error
	}

	Commit   func() error
	Rollback func() error
}

type overrideRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type partRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
