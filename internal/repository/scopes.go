package repository

import (
	"database/sql"
	"time"

	"task-manager-backend/internal/visibility"

	"gorm.io/gorm"
)

// withScope narrows a query by a visibility predicate; nil leaves it unscoped
func withScope(db *gorm.DB, scope *visibility.Predicate) *gorm.DB {
	if scope == nil {
		return db
	}
	return db.Where(scope.SQL, scope.Args...)
}

// maxUpdatedAt runs MAX(updated_at) over the query. Nil when no row matches.
func maxUpdatedAt(q *gorm.DB) (*time.Time, error) {
	var latest sql.NullTime
	if err := q.Select("MAX(updated_at)").Row().Scan(&latest); err != nil {
		return nil, err
	}
	if !latest.Valid {
		return nil, nil
	}
	t := latest.Time
	return &t, nil
}
