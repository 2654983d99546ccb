package anatomyRepository

const (
	queryGetOverride = `
SELECT structure, description, updated_by, created_at, updated_at
FROM description_overrides
    WHERE structure = :structure`

	queryUpsertOverride = `
INSERT INTO description_overrides (structure, description, updated_by, created_at, updated_at)
VALUES (:structure, :description, :updated_by, :now, :now)
ON CONFLICT (structure) DO UPDATE
SET description = EXCLUDED.description,
    updated_by = EXCLUDED.updated_by,
    updated_at = EXCLUDED.updated_at
RETURNING structure, description, updated_by, created_at, updated_at`

	queryDeleteOverride = `
DELETE FROM description_overrides
WHERE structure = :structure`

	queryGetPartDocument = `
SELECT part_id, source, document, created_at, updated_at
FROM part_documents
    WHERE part_id = :part_id`

	queryUpsertPartDocument = `
INSERT INTO part_documents (part_id, source, document, created_at, updated_at)
VALUES (:part_id, :source, :document, :now, :now)
ON CONFLICT (part_id) DO UPDATE
SET source = EXCLUDED.source,
    document = EXCLUDED.document,
    updated_at = EXCLUDED.updated_at`
)
