package persistent

import (
	"database/sql"
	"errors"
	"fmt"

	"cliptube/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgInvalidTextRepresentation is raised when a bound parameter cannot be
// parsed as the column type, e.g. a malformed uuid arriving in a path
// identifier.
const pgInvalidTextRepresentation = "22P02"

// normalizeError folds store-level failures into the domain taxonomy. A
// malformed identifier can never name a row, so it is a caller error, not an
// internal one.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return fmt.Errorf("%w: malformed identifier", entity.ErrValidation)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrAlreadyExists
	}
	return err
}

// viewerParam binds an optional viewer id into a uuid-typed comparison. An
// absent viewer becomes SQL NULL, which matches no row, so viewer-relative
// fields such as is_subscribed and is_liked come back false instead of the
// query failing on an empty-string uuid.
func viewerParam(viewerID string) sql.NullString {
	return sql.NullString{String: viewerID, Valid: viewerID != ""}
}
