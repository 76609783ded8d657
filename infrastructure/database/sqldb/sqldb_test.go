package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influence-hub-api/internal/config"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		driver, url string
		want        Dialect
		wantErr     bool
	}{
		{driver: "postgres", url: "localhost:5432/db", want: DialectPostgres},
		{driver: "postgresql", url: "", want: DialectPostgres},
		{driver: "sqlite3", url: "file.db", want: DialectSQLite},
		{driver: "postgres", url: "libsql://db.turso.io", want: DialectLibSQL},
		{driver: "mysql", url: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.driver, tt.url)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSQLiteUnicodeLower(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lower.db")

	conn, err := NewConnection(ctx, config.Database{Driver: "sqlite", URL: path, DSN: path})
	require.NoError(t, err)
	defer conn.Close()

	var lowered string
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT "+DialectSQLite.LowerFunc()+"(?)", "ÉLODIE Ñandú").Scan(&lowered))
	assert.Equal(t, "élodie ñandú", lowered)

	var native string
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT LOWER(?)", "ÉLODIE").Scan(&native))
	assert.NotEqual(t, "élodie", native)

	assert.Equal(t, "LOWER", DialectPostgres.LowerFunc())
	assert.Empty(t, DialectLibSQL.LowerFunc())
}
