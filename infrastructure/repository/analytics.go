package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const analyticsTable = "analytics"

var analyticsColumns = []string{"id", "campaign_id", "collaboration_id", "metric", "value", "date", "created_at"}

type AnalyticsRepository interface {
	ListAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.Analytics, error)
	CreateAnalytics(ctx context.Context, entry *domain.Analytics) (*domain.Analytics, error)
}

type analyticsRepository struct {
	conn sqldb.Conn
}

func NewAnalyticsRepository(conn sqldb.Conn) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// ListAnalytics retorna a série em ordem cronológica
func (r *analyticsRepository) ListAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.Analytics, error) {
	if filters.CampaignIDs != nil && len(filters.CampaignIDs) == 0 {
		return []*domain.Analytics{}, nil
	}

	queryBuilder := r.conn.Builder().
		Select(analyticsColumns...).
		From(analyticsTable).
		OrderBy("date ASC", "id ASC")

	if filters.CampaignIDs != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"campaign_id": filters.CampaignIDs})
	}

	if filters.Metric != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"metric": filters.Metric})
	}

	return queryAll(ctx, r.conn, queryBuilder, scanAnalytics)
}

func (r *analyticsRepository) CreateAnalytics(ctx context.Context, entry *domain.Analytics) (*domain.Analytics, error) {
	created := *entry
	created.CreatedAt = now()
	created.Date = created.Date.UTC()

	queryBuilder := r.conn.Builder().
		Insert(analyticsTable).
		Columns(analyticsColumns[1:]...).
		Values(
			created.CampaignID,
			created.CollaborationID,
			created.Metric,
			created.Value.String(),
			created.Date,
			created.CreatedAt,
		).
		Suffix("RETURNING id")

	row, err := queryRow(ctx, r.conn, queryBuilder)
	if err != nil {
		return nil, err
	}

	if err := row.Scan(&created.ID); err != nil {
		return nil, wrapWriteError(err)
	}

	return &created, nil
}

func scanAnalytics(row scanner) (*domain.Analytics, error) {
	var (
		a               domain.Analytics
		collaborationID sql.NullInt64
	)

	if err := row.Scan(
		&a.ID,
		&a.CampaignID,
		&collaborationID,
		&a.Metric,
		&a.Value,
		&a.Date,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.CollaborationID = nullInt(collaborationID)
	a.Date = a.Date.UTC()
	a.CreatedAt = a.CreatedAt.UTC()

	return &a, nil
}
