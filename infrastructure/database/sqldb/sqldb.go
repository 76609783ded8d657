package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"github.com/vfg2006/influence-hub-api/internal/config"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
	DialectLibSQL   Dialect = "libsql"
)

// ParseDialect resolve o driver a partir da configuração. URLs libsql:// e wss:// sempre usam o driver do Turso.
func ParseDialect(driver, url string) (Dialect, error) {
	if strings.HasPrefix(url, "libsql://") || strings.HasPrefix(url, "wss://") {
		return DialectLibSQL, nil
	}

	switch Dialect(strings.ToLower(driver)) {
	case DialectPostgres, "postgresql":
		return DialectPostgres, nil
	case DialectSQLite, "sqlite3":
		return DialectSQLite, nil
	case DialectLibSQL:
		return DialectLibSQL, nil
	}

	return "", fmt.Errorf("sqldb: driver não suportado: %q", driver)
}

func (d Dialect) PlaceholderFormat() squirrel.PlaceholderFormat {
	if d == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

type Conn interface {
	Queryer
	Builder() squirrel.StatementBuilderType
	Dialect() Dialect
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
	dialect Dialect
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	dialect, err := ParseDialect(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), cfg.DSN)
	if err != nil {
		return nil, err
	}

	// sqlite local não suporta escritas concorrentes em conexões distintas
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logrus.WithField("dialect", dialect).Debug("Conexão com banco relacional aberta")

	return &Connection{DB: db, dialect: dialect}, nil
}

func (c *Connection) Dialect() Dialect {
	return c.dialect
}

// Builder retorna um StatementBuilder do squirrel com o placeholder do dialeto
func (c *Connection) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(c.dialect.PlaceholderFormat())
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// IsUniqueViolation identifica violação de unicidade em qualquer um dos dialetos suportados
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
