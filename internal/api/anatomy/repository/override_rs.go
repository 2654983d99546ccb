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
	"github.com/sirupsen/logrus"
)

func (r *overrideRepository) GetOverride(c context.Context, structure string) (entity.DescriptionOverride, error) {
	requestID := contextPkg.GetRequestID(c)
	var override entity.DescriptionOverride

	query, args, err := sqlx.Named(queryGetOverride, map[string]interface{}{
		"structure": structure,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverride named query preparation err")
		return entity.DescriptionOverride{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&override); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.DescriptionOverride{}, anatomy.ErrOverrideNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"structure":  structure,
		}).Error("Database error when reading override")
		return entity.DescriptionOverride{}, err
	}

	return override, nil
}

func (r *overrideRepository) UpsertOverride(c context.Context, o entity.DescriptionOverride) (entity.DescriptionOverride, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryUpsertOverride, map[string]interface{}{
		"structure":   o.Structure,
		"description": o.Description,
		"updated_by":  o.UpdatedBy,
		"now":         time.Now(),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpsertOverride")
		return entity.DescriptionOverride{}, err
	}

	query = r.q.Rebind(query)

	var saved entity.DescriptionOverride
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&saved); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"structure":  o.Structure,
		}).Error("Database error when saving override")
		return entity.DescriptionOverride{}, err
	}

	return saved, nil
}

func (r *overrideRepository) DeleteOverride(c context.Context, structure string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteOverride, map[string]interface{}{
		"structure": structure,
	})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"structure":  structure,
		}).Error("Database error when deleting override")
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return anatomy.ErrOverrideNotFound
	}

	return nil
}
