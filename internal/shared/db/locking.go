package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate is a GORM scope that takes a row lock on the selected rows.
// SQLite has no row-level locks (a write transaction locks the database), so
// the clause is skipped there.
//
// Example usage:
//
//	tx.Scopes(db.ForUpdate()).First(&model, id)
func ForUpdate() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if tx.Dialector != nil && tx.Dialector.Name() == "sqlite" {
			return tx
		}
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
