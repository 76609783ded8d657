package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id", "name", "description", "category", "budget", "status", "start_date", "end_date",
	"target_audience", "goals", "created_by", "created_at", "updated_at",
}

type CampaignRepository interface {
	ListCampaigns(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID int) (*domain.Campaign, error)
	GetCampaignsByIDs(ctx context.Context, campaignIDs []int) ([]*domain.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID int, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID int) error
}

type campaignRepository struct {
	conn sqldb.Conn
}

func NewCampaignRepository(conn sqldb.Conn) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
	queryBuilder := r.conn.Builder().
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("created_at DESC", "id DESC")

	if filters.UserID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"created_by": *filters.UserID})
	}

	if filters.HasStatus() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filters.Status})
	}

	return queryAll(ctx, r.conn, queryBuilder, scanCampaign)
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, campaignID int) (*domain.Campaign, error) {
	row, err := queryRow(ctx, r.conn, r.conn.Builder().
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}))
	if err != nil {
		return nil, err
	}
	return scanOne(row, scanCampaign)
}

func (r *campaignRepository) GetCampaignsByIDs(ctx context.Context, campaignIDs []int) ([]*domain.Campaign, error) {
	if len(campaignIDs) == 0 {
		return []*domain.Campaign{}, nil
	}

	queryBuilder := r.conn.Builder().
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignIDs}).
		OrderBy("id ASC")

	return queryAll(ctx, r.conn, queryBuilder, scanCampaign)
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	created := *campaign
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	queryBuilder := r.conn.Builder().
		Insert(campaignsTable).
		Columns(campaignColumns[1:]...).
		Values(
			created.Name,
			created.Description,
			created.Category,
			created.Budget.String(),
			string(created.Status),
			timeValue(created.StartDate),
			timeValue(created.EndDate),
			created.TargetAudience,
			created.Goals,
			created.CreatedBy,
			created.CreatedAt,
			created.UpdatedAt,
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

func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaignID int, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	queryBuilder := r.conn.Builder().
		Update(campaignsTable).
		Set("updated_at", now()).
		Where(squirrel.Eq{"id": campaignID}).
		Suffix("RETURNING " + joinColumns(campaignColumns))

	if patch.Name != nil {
		queryBuilder = queryBuilder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		queryBuilder = queryBuilder.Set("description", *patch.Description)
	}
	if patch.Category != nil {
		queryBuilder = queryBuilder.Set("category", *patch.Category)
	}
	if patch.Budget != nil {
		queryBuilder = queryBuilder.Set("budget", patch.Budget.String())
	}
	if patch.Status != nil {
		queryBuilder = queryBuilder.Set("status", string(*patch.Status))
	}
	if patch.StartDate != nil {
		queryBuilder = queryBuilder.Set("start_date", timeValue(patch.StartDate))
	}
	if patch.EndDate != nil {
		queryBuilder = queryBuilder.Set("end_date", timeValue(patch.EndDate))
	}
	if patch.TargetAudience != nil {
		queryBuilder = queryBuilder.Set("target_audience", *patch.TargetAudience)
	}
	if patch.Goals != nil {
		queryBuilder = queryBuilder.Set("goals", *patch.Goals)
	}
	if patch.CreatedBy != nil {
		queryBuilder = queryBuilder.Set("created_by", *patch.CreatedBy)
	}

	row, err := queryRow(ctx, r.conn, queryBuilder)
	if err != nil {
		return nil, err
	}

	return scanOne(row, scanCampaign)
}

// DeleteCampaign remove a campanha, suas colaborações e toda a série de métricas
func (r *campaignRepository) DeleteCampaign(ctx context.Context, campaignID int) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, r.conn.Builder().
			Delete(analyticsTable).
			Where(squirrel.Eq{"campaign_id": campaignID})); err != nil {
			return fmt.Errorf("erro ao remover métricas da campanha %d: %w", campaignID, err)
		}

		if _, err := exec(ctx, tx, r.conn.Builder().
			Delete(collaborationsTable).
			Where(squirrel.Eq{"campaign_id": campaignID})); err != nil {
			return fmt.Errorf("erro ao remover colaborações da campanha %d: %w", campaignID, err)
		}

		if _, err := exec(ctx, tx, r.conn.Builder().
			Delete(campaignsTable).
			Where(squirrel.Eq{"id": campaignID})); err != nil {
			return fmt.Errorf("erro ao remover campanha %d: %w", campaignID, err)
		}

		return nil
	})
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var (
		c                            domain.Campaign
		status                       string
		description, audience, goals sql.NullString
		startDate, endDate           sql.NullTime
	)

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&description,
		&c.Category,
		&c.Budget,
		&status,
		&startDate,
		&endDate,
		&audience,
		&goals,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.CampaignStatus(status)
	c.Description = nullString(description)
	c.StartDate = nullTime(startDate)
	c.EndDate = nullTime(endDate)
	c.TargetAudience = nullString(audience)
	c.Goals = nullString(goals)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()

	return &c, nil
}
