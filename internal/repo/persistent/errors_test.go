package persistent

import (
	"errors"
	"testing"

	"cliptube/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNormalizeError_Nil(t *testing.T) {
	assert.NoError(t, normalizeError(nil))
}

func TestNormalizeError_MalformedIdentifier(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    pgInvalidTextRepresentation,
		Message: `invalid input syntax for type uuid: "not-a-uuid"`,
	}

	err := normalizeError(pgErr)

	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestNormalizeError_WrappedMalformedIdentifier(t *testing.T) {
	// gorm wraps driver errors before they reach the repository.
	wrapped := errors.Join(errors.New("exec failed"), &pgconn.PgError{Code: pgInvalidTextRepresentation})

	err := normalizeError(wrapped)

	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestNormalizeError_RecordNotFound(t *testing.T) {
	assert.ErrorIs(t, normalizeError(gorm.ErrRecordNotFound), entity.ErrNotFound)
}

func TestNormalizeError_DuplicatedKey(t *testing.T) {
	assert.ErrorIs(t, normalizeError(gorm.ErrDuplicatedKey), entity.ErrAlreadyExists)
}

func TestNormalizeError_OtherPgErrorPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", Message: "foreign key violation"}

	err := normalizeError(pgErr)

	assert.False(t, errors.Is(err, entity.ErrValidation))
	assert.ErrorIs(t, err, pgErr)
}

func TestViewerParam_AnonymousBindsNull(t *testing.T) {
	param := viewerParam("")

	assert.False(t, param.Valid)
}

func TestViewerParam_PresentViewer(t *testing.T) {
	param := viewerParam("8c5f1f1e-62e2-4f0b-9c70-0a3d8f4d9b11")

	assert.True(t, param.Valid)
	assert.Equal(t, "8c5f1f1e-62e2-4f0b-9c70-0a3d8f4d9b11", param.String)
}
