package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// GORM rewrites '?' into the dialect's bind variables, so one format serves both drivers.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// CountOtherByCPF counts rows of table holding cpf, ignoring the row whose
// key is excludeCPF. An empty excludeCPF counts every match.
func CountOtherByCPF(ctx context.Context, db *gorm.DB, table, cpf, excludeCPF string) (int64, error) {
	queryBuilder := psql.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"cpf": cpf})
	if excludeCPF != "" {
		queryBuilder = queryBuilder.Where(sq.NotEq{"cpf": excludeCPF})
	}

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL query for CountOtherByCPF: %w", err)
	}

	var count int64
	if err := db.WithContext(ctx).Raw(sqlStr, args...).Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s rows with cpf %s: %w", table, cpf, err)
	}
	return count, nil
}
