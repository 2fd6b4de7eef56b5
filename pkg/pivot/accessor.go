package pivot

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Row is a result row with values accessible by column name.
type Row map[string]any

// Accessor executes read-only parameterized queries.
type Accessor interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
}

// GormAccessor executes queries on a gorm database.
type GormAccessor struct {
	DB *gorm.DB
}

func (a GormAccessor) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	db := a.DB.WithContext(ctx)

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		values := map[string]any{}
		err = db.ScanRows(rows, &values)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d failed: %w", len(result), err)
		}

		// Some drivers return text as []byte
		for k, v := range values {
			if b, ok := v.([]byte); ok {
				values[k] = string(b)
			}
		}

		result = append(result, Row(values))
	}

	return result, rows.Err()
}
