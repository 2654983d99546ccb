package anatomyRepository

import (
	"AnatomyOverlay/internal/api/anatomy"
	"AnatomyOverlay/internal/entity"
	contextPkg "AnatomyOverlay/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *partRepository) GetPartDocument(c context.Context, partID string) (entity.PartDocument, error) {
	requestID := contextPkg.GetRequestID(c)
	var doc entity.PartDocument

	query, args, err := sqlx.Named(queryGetPartDocument, map[string]interface{}{
		"part_id": partID,
	})
	if err != nil {
		return entity.PartDocument{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PartDocument{}, anatomy.ErrPartDocumentNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"part_id":    partID,
		}).Error("Database error when reading part document")
		return entity.PartDocument{}, err
	}

	return doc, nil
}

func (r *partRepository) UpsertPartDocument(c context.Context, doc entity.PartDocument) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryUpsertPartDocument, map[string]interface{}{
		"part_id":  doc.PartID,
		"source":   doc.Source,
		"document": string(doc.Document),
		"now":      time.Now(),
	})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"part_id":    doc.PartID,
			}).Warn("Part document is not valid JSON")
		} else {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
				"part_id":    doc.PartID,
			}).Error("Database error when saving part document")
		}
		return err
	}

	return nil
}
