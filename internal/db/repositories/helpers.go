package repositories

import (
	"errors"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate maps driver errors onto the domain taxonomy.
func translate(op, entity string, id any, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict("%s already exists", entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Invalid(entity, "references a record that does not exist")
	}
	return apperr.Storage(op, err)
}

// forUpdate takes a row lock on Postgres. SQLite ignores the clause.
func forUpdate(db *gorm.DB, lock bool) *gorm.DB {
	if !lock {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// saveVersioned writes every column of row only if the stored version still
// equals prevVersion. The caller has already incremented row's version.
func saveVersioned(db *gorm.DB, row any, prevVersion int) error {
	res := db.Model(row).
		Where("version = ?", prevVersion).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Conflict(constants.MsgStaleVersion)
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
