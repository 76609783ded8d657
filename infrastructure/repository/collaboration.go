package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const collaborationsTable = "collaborations"

var collaborationColumns = []string{
	"id", "campaign_id", "influencer_id", "status", "agreed_rate", "deliverables", "actual_reach",
	"actual_engagement", "completed_at", "created_at", "updated_at",
}

type CollaborationRepository interface {
	ListCollaborations(ctx context.Context, filters domain.CollaborationFilters) ([]*domain.Collaboration, error)
	GetCollaborationByID(ctx context.Context, collaborationID int) (*domain.Collaboration, error)
	CreateCollaboration(ctx context.Context, collaboration *domain.Collaboration) (*domain.Collaboration, error)
	UpdateCollaboration(ctx context.Context, collaborationID int, patch *domain.UpdateCollaborationRequest) (*domain.Collaboration, error)
}

type collaborationRepository struct {
	conn sqldb.Conn
}

func NewCollaborationRepository(conn sqldb.Conn) CollaborationRepository {
	return &collaborationRepository{
		conn: conn,
	}
}

func (r *collaborationRepository) ListCollaborations(ctx context.Context, filters domain.CollaborationFilters) ([]*domain.Collaboration, error) {
	// lista de campanhas vazia (não nil) nunca casa
	if filters.CampaignIDs != nil && len(filters.CampaignIDs) == 0 {
		return []*domain.Collaboration{}, nil
	}

	queryBuilder := r.conn.Builder().
		Select(collaborationColumns...).
		From(collaborationsTable).
		OrderBy("created_at DESC", "id DESC")

	if filters.CampaignIDs != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"campaign_id": filters.CampaignIDs})
	}

	if filters.InfluencerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"influencer_id": *filters.InfluencerID})
	}

	if filters.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": string(filters.Status)})
	}

	return queryAll(ctx, r.conn, queryBuilder, scanCollaboration)
}

func (r *collaborationRepository) GetCollaborationByID(ctx context.Context, collaborationID int) (*domain.Collaboration, error) {
	row, err := queryRow(ctx, r.conn, r.conn.Builder().
		Select(collaborationColumns...).
		From(collaborationsTable).
		Where(squirrel.Eq{"id": collaborationID}))
	if err != nil {
		return nil, err
	}
	return scanOne(row, scanCollaboration)
}

func (r *collaborationRepository) CreateCollaboration(ctx context.Context, collaboration *domain.Collaboration) (*domain.Collaboration, error) {
	created := *collaboration
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	queryBuilder := r.conn.Builder().
		Insert(collaborationsTable).
		Columns(collaborationColumns[1:]...).
		Values(
			created.CampaignID,
			created.InfluencerID,
			string(created.Status),
			decimalValue(created.AgreedRate),
			created.Deliverables,
			created.ActualReach,
			decimalValue(created.ActualEngagement),
			timeValue(created.CompletedAt),
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

func (r *collaborationRepository) UpdateCollaboration(ctx context.Context, collaborationID int, patch *domain.UpdateCollaborationRequest) (*domain.Collaboration, error) {
	queryBuilder := r.conn.Builder().
		Update(collaborationsTable).
		Set("updated_at", now()).
		Where(squirrel.Eq{"id": collaborationID}).
		Suffix("RETURNING " + joinColumns(collaborationColumns))

	if patch.CampaignID != nil {
		queryBuilder = queryBuilder.Set("campaign_id", *patch.CampaignID)
	}
	if patch.InfluencerID != nil {
		queryBuilder = queryBuilder.Set("influencer_id", *patch.InfluencerID)
	}
	if patch.Status != nil {
		queryBuilder = queryBuilder.Set("status", string(*patch.Status))
	}
	if patch.AgreedRate != nil {
		queryBuilder = queryBuilder.Set("agreed_rate", decimalValue(patch.AgreedRate))
	}
	if patch.Deliverables != nil {
		queryBuilder = queryBuilder.Set("deliverables", *patch.Deliverables)
	}
	if patch.ActualReach != nil {
		queryBuilder = queryBuilder.Set("actual_reach", *patch.ActualReach)
	}
	if patch.ActualEngagement != nil {
		queryBuilder = queryBuilder.Set("actual_engagement", decimalValue(patch.ActualEngagement))
	}
	if patch.CompletedAt != nil {
		queryBuilder = queryBuilder.Set("completed_at", timeValue(patch.CompletedAt))
	}

	row, err := queryRow(ctx, r.conn, queryBuilder)
	if err != nil {
		return nil, err
	}

	return scanOne(row, scanCollaboration)
}

func scanCollaboration(row scanner) (*domain.Collaboration, error) {
	var (
		c                      domain.Collaboration
		status                 string
		agreedRate, engagement decimal.NullDecimal
		deliverables           sql.NullString
		reach                  sql.NullInt64
		completedAt            sql.NullTime
	)

	if err := row.Scan(
		&c.ID,
		&c.CampaignID,
		&c.InfluencerID,
		&status,
		&agreedRate,
		&deliverables,
		&reach,
		&engagement,
		&completedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.CollaborationStatus(status)
	c.AgreedRate = nullDecimal(agreedRate)
	c.Deliverables = nullString(deliverables)
	c.ActualReach = nullInt(reach)
	c.ActualEngagement = nullDecimal(engagement)
	c.CompletedAt = nullTime(completedAt)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()

	return &c, nil
}
