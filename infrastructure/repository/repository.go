// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks
//go:generate mockgen -source=influencer.go -destination=mocks/influencer_mock.go -package=mocks
//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks
//go:generate mockgen -source=collaboration.go -destination=mocks/collaboration_mock.go -package=mocks
//go:generate mockgen -source=analytics.go -destination=mocks/analytics_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
)

// ErrUniqueViolation é retornado quando uma coluna única colide com um registro existente
var ErrUniqueViolation = errors.New("repository: unique constraint violated")

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func now() time.Time {
	return time.Now().UTC()
}

func wrapWriteError(err error) error {
	if sqldb.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	}
	return err
}

// queryRow executa a query e devolve a linha para o scan
func queryRow(ctx context.Context, q sqldb.Queryer, builder squirrel.Sqlizer) (*sql.Row, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return q.QueryRowContext(ctx, query, args...), nil
}

func exec(ctx context.Context, q sqldb.Queryer, builder squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return q.ExecContext(ctx, query, args...)
}

// queryAll executa a query e converte cada linha com scan
func queryAll[T any](ctx context.Context, q sqldb.Queryer, builder squirrel.Sqlizer, scan func(scanner) (*T, error)) ([]*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return items, nil
}

// scanOne trata sql.ErrNoRows como ausência do registro
func scanOne[T any](row *sql.Row, scan func(scanner) (*T, error)) (*T, error) {
	item, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// likePattern escapa os curingas do LIKE e monta o padrão de substring em minúsculas
func likePattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.ToLower(search)) + "%"
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func nullInt(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// decimalValue converte para o valor gravado no banco; nil vira NULL
func decimalValue(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

func timeValue(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
