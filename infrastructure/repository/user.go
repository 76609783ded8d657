package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "username", "email", "password", "role", "first_name", "last_name",
	"profile_image_url", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []int) ([]*domain.User, error)
	UpdateUser(ctx context.Context, userID int, patch *domain.UpdateUserRequest) (*domain.User, error)
}

type userRepository struct {
	conn sqldb.Conn
}

func NewUserRepository(conn sqldb.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	queryBuilder := r.conn.Builder().
		Insert(usersTable).
		Columns("username", "email", "password", "role", "first_name", "last_name", "profile_image_url", "created_at", "updated_at").
		Values(
			created.Username,
			created.Email,
			created.PasswordHash,
			created.Role,
			created.FirstName,
			created.LastName,
			created.ProfileImageURL,
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

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Sqlizer) (*domain.User, error) {
	row, err := queryRow(ctx, r.conn, r.conn.Builder().Select(userColumns...).From(usersTable).Where(where))
	if err != nil {
		return nil, err
	}
	return scanOne(row, scanUser)
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, userIDs []int) ([]*domain.User, error) {
	if len(userIDs) == 0 {
		return []*domain.User{}, nil
	}

	queryBuilder := r.conn.Builder().
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"id": userIDs}).
		OrderBy("id ASC")

	return queryAll(ctx, r.conn, queryBuilder, scanUser)
}

func (r *userRepository) UpdateUser(ctx context.Context, userID int, patch *domain.UpdateUserRequest) (*domain.User, error) {
	queryBuilder := r.conn.Builder().
		Update(usersTable).
		Set("updated_at", now()).
		Where(squirrel.Eq{"id": userID}).
		Suffix("RETURNING " + joinColumns(userColumns))

	if patch.Username != nil {
		queryBuilder = queryBuilder.Set("username", *patch.Username)
	}
	if patch.Email != nil {
		queryBuilder = queryBuilder.Set("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		queryBuilder = queryBuilder.Set("password", *patch.PasswordHash)
	}
	if patch.Role != nil {
		queryBuilder = queryBuilder.Set("role", *patch.Role)
	}
	if patch.FirstName != nil {
		queryBuilder = queryBuilder.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		queryBuilder = queryBuilder.Set("last_name", *patch.LastName)
	}
	if patch.ProfileImageURL != nil {
		queryBuilder = queryBuilder.Set("profile_image_url", *patch.ProfileImageURL)
	}

	row, err := queryRow(ctx, r.conn, queryBuilder)
	if err != nil {
		return nil, err
	}

	user, err := scanOne(row, scanUser)
	if err != nil {
		return nil, wrapWriteError(err)
	}

	return user, nil
}

func scanUser(row scanner) (*domain.User, error) {
	var (
		user                      domain.User
		email, first, last, image sql.NullString
	)

	if err := row.Scan(
		&user.ID,
		&user.Username,
		&email,
		&user.PasswordHash,
		&user.Role,
		&first,
		&last,
		&image,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.Email = nullString(email)
	user.FirstName = nullString(first)
	user.LastName = nullString(last)
	user.ProfileImageURL = nullString(image)
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()

	return &user, nil
}
