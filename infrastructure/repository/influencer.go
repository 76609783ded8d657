package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const influencersTable = "influencers"

var influencerColumns = []string{
	"id", "name", "handle", "email", "category", "followers", "engagement_rate", "rate_per_post",
	"profile_image_url", "bio", "is_verified", "created_at", "updated_at",
}

type InfluencerRepository interface {
	ListInfluencers(ctx context.Context, filters domain.InfluencerFilters) ([]*domain.Influencer, error)
	GetInfluencerByID(ctx context.Context, influencerID int) (*domain.Influencer, error)
	GetInfluencerByHandle(ctx context.Context, handle string) (*domain.Influencer, error)
	GetInfluencersByIDs(ctx context.Context, influencerIDs []int) ([]*domain.Influencer, error)
	CountInfluencers(ctx context.Context) (int, error)
	CreateInfluencer(ctx context.Context, influencer *domain.Influencer) (*domain.Influencer, error)
	UpdateInfluencer(ctx context.Context, influencerID int, patch *domain.UpdateInfluencerRequest) (*domain.Influencer, error)
	DeleteInfluencer(ctx context.Context, influencerID int) error
}

type influencerRepository struct {
	conn sqldb.Conn
}

func NewInfluencerRepository(conn sqldb.Conn) InfluencerRepository {
	return &influencerRepository{
		conn: conn,
	}
}

func (r *influencerRepository) ListInfluencers(ctx context.Context, filters domain.InfluencerFilters) ([]*domain.Influencer, error) {
	queryBuilder := r.conn.Builder().
		Select(influencerColumns...).
		From(influencersTable).
		OrderBy("followers DESC", "id ASC")

	if filters.HasCategory() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": filters.Category})
	}

	if filters.MinFollowers != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"followers": *filters.MinFollowers})
	}

	if filters.MaxFollowers != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"followers": *filters.MaxFollowers})
	}

	lower := r.conn.Dialect().LowerFunc()
	if filters.Search != "" && lower != "" {
		pattern := likePattern(filters.Search)
		queryBuilder = queryBuilder.Where(squirrel.Expr(
			fmt.Sprintf(`(%[1]s(name) LIKE ? ESCAPE '\' OR %[1]s(handle) LIKE ? ESCAPE '\')`, lower),
			pattern, pattern,
		))
	}

	influencers, err := queryAll(ctx, r.conn, queryBuilder, scanInfluencer)
	if err != nil || filters.Search == "" || lower != "" {
		return influencers, err
	}

	// sem LOWER com Unicode no banco, a busca é feita aqui com a mesma regra do store em memória
	search := domain.InfluencerFilters{Search: filters.Search}
	matched := make([]*domain.Influencer, 0, len(influencers))
	for _, inf := range influencers {
		if search.Match(inf) {
			matched = append(matched, inf)
		}
	}

	return matched, nil
}

func (r *influencerRepository) GetInfluencerByID(ctx context.Context, influencerID int) (*domain.Influencer, error) {
	return r.getInfluencer(ctx, squirrel.Eq{"id": influencerID})
}

func (r *influencerRepository) GetInfluencerByHandle(ctx context.Context, handle string) (*domain.Influencer, error) {
	return r.getInfluencer(ctx, squirrel.Eq{"handle": handle})
}

func (r *influencerRepository) getInfluencer(ctx context.Context, where squirrel.Sqlizer) (*domain.Influencer, error) {
	row, err := queryRow(ctx, r.conn, r.conn.Builder().Select(influencerColumns...).From(influencersTable).Where(where))
	if err != nil {
		return nil, err
	}
	return scanOne(row, scanInfluencer)
}

func (r *influencerRepository) GetInfluencersByIDs(ctx context.Context, influencerIDs []int) ([]*domain.Influencer, error) {
	if len(influencerIDs) == 0 {
		return []*domain.Influencer{}, nil
	}

	queryBuilder := r.conn.Builder().
		Select(influencerColumns...).
		From(influencersTable).
		Where(squirrel.Eq{"id": influencerIDs}).
		OrderBy("id ASC")

	return queryAll(ctx, r.conn, queryBuilder, scanInfluencer)
}

func (r *influencerRepository) CountInfluencers(ctx context.Context) (int, error) {
	row, err := queryRow(ctx, r.conn, r.conn.Builder().Select("COUNT(*)").From(influencersTable))
	if err != nil {
		return 0, err
	}

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar influenciadores: %w", err)
	}

	return count, nil
}

func (r *influencerRepository) CreateInfluencer(ctx context.Context, influencer *domain.Influencer) (*domain.Influencer, error) {
	created := *influencer
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	queryBuilder := r.conn.Builder().
		Insert(influencersTable).
		Columns(influencerColumns[1:]...).
		Values(
			created.Name,
			created.Handle,
			created.Email,
			created.Category,
			created.Followers,
			created.EngagementRate.String(),
			created.RatePerPost.String(),
			created.ProfileImageURL,
			created.Bio,
			created.IsVerified,
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

func (r *influencerRepository) UpdateInfluencer(ctx context.Context, influencerID int, patch *domain.UpdateInfluencerRequest) (*domain.Influencer, error) {
	queryBuilder := r.conn.Builder().
		Update(influencersTable).
		Set("updated_at", now()).
		Where(squirrel.Eq{"id": influencerID}).
		Suffix("RETURNING " + joinColumns(influencerColumns))

	if patch.Name != nil {
		queryBuilder = queryBuilder.Set("name", *patch.Name)
	}
	if patch.Handle != nil {
		queryBuilder = queryBuilder.Set("handle", *patch.Handle)
	}
	if patch.Email != nil {
		queryBuilder = queryBuilder.Set("email", *patch.Email)
	}
	if patch.Category != nil {
		queryBuilder = queryBuilder.Set("category", *patch.Category)
	}
	if patch.Followers != nil {
		queryBuilder = queryBuilder.Set("followers", *patch.Followers)
	}
	if patch.EngagementRate != nil {
		queryBuilder = queryBuilder.Set("engagement_rate", patch.EngagementRate.String())
	}
	if patch.RatePerPost != nil {
		queryBuilder = queryBuilder.Set("rate_per_post", patch.RatePerPost.String())
	}
	if patch.ProfileImageURL != nil {
		queryBuilder = queryBuilder.Set("profile_image_url", *patch.ProfileImageURL)
	}
	if patch.Bio != nil {
		queryBuilder = queryBuilder.Set("bio", *patch.Bio)
	}
	if patch.IsVerified != nil {
		queryBuilder = queryBuilder.Set("is_verified", *patch.IsVerified)
	}

	row, err := queryRow(ctx, r.conn, queryBuilder)
	if err != nil {
		return nil, err
	}

	influencer, err := scanOne(row, scanInfluencer)
	if err != nil {
		return nil, wrapWriteError(err)
	}

	return influencer, nil
}

// DeleteInfluencer remove o influenciador junto com as colaborações e as métricas ligadas a elas
func (r *influencerRepository) DeleteInfluencer(ctx context.Context, influencerID int) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, r.conn.Builder().
			Delete(analyticsTable).
			Where(squirrel.Expr(
				"collaboration_id IN (SELECT id FROM "+collaborationsTable+" WHERE influencer_id = ?)",
				influencerID,
			))); err != nil {
			return fmt.Errorf("erro ao remover métricas do influenciador %d: %w", influencerID, err)
		}

		if _, err := exec(ctx, tx, r.conn.Builder().
			Delete(collaborationsTable).
			Where(squirrel.Eq{"influencer_id": influencerID})); err != nil {
			return fmt.Errorf("erro ao remover colaborações do influenciador %d: %w", influencerID, err)
		}

		if _, err := exec(ctx, tx, r.conn.Builder().
			Delete(influencersTable).
			Where(squirrel.Eq{"id": influencerID})); err != nil {
			return fmt.Errorf("erro ao remover influenciador %d: %w", influencerID, err)
		}

		return nil
	})
}

func scanInfluencer(row scanner) (*domain.Influencer, error) {
	var (
		inf               domain.Influencer
		email, image, bio sql.NullString
	)

	if err := row.Scan(
		&inf.ID,
		&inf.Name,
		&inf.Handle,
		&email,
		&inf.Category,
		&inf.Followers,
		&inf.EngagementRate,
		&inf.RatePerPost,
		&image,
		&bio,
		&inf.IsVerified,
		&inf.CreatedAt,
		&inf.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inf.Email = nullString(email)
	inf.ProfileImageURL = nullString(image)
	inf.Bio = nullString(bio)
	inf.CreatedAt = inf.CreatedAt.UTC()
	inf.UpdatedAt = inf.UpdatedAt.UTC()

	return &inf, nil
}
