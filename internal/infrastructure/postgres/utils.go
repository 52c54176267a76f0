package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// idsParam normaliza el slice para = ANY($1); pgx codifica nil como NULL y ANY(NULL) no matchea nada.
func idsParam(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
