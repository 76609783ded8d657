package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// tipos de coluna que variam por dialeto
type columnTypes struct {
	pk        string
	ts        string
	decimal5  string
	decimal10 string
	decimal15 string
}

func typesFor(d Dialect) columnTypes {
	if d == DialectPostgres {
		return columnTypes{
			pk:        "SERIAL PRIMARY KEY",
			ts:        "TIMESTAMPTZ",
			decimal5:  "NUMERIC(5,2)",
			decimal10: "NUMERIC(10,2)",
			decimal15: "NUMERIC(15,2)",
		}
	}

	// sqlite guarda decimais como texto para não passar por ponto flutuante
	return columnTypes{
		pk:        "INTEGER PRIMARY KEY AUTOINCREMENT",
		ts:        "DATETIME",
		decimal5:  "TEXT",
		decimal10: "TEXT",
		decimal15: "TEXT",
	}
}

func schema(d Dialect) []string {
	t := typesFor(d)

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT NOT NULL UNIQUE,
			email TEXT UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'Brand Manager',
			first_name TEXT,
			last_name TEXT,
			profile_image_url TEXT,
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, t.pk, t.ts, t.ts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS influencers (
			id %s,
			name TEXT NOT NULL,
			handle TEXT NOT NULL UNIQUE,
			email TEXT,
			category TEXT NOT NULL,
			followers INTEGER NOT NULL,
			engagement_rate %s NOT NULL,
			rate_per_post %s NOT NULL,
			profile_image_url TEXT,
			bio TEXT,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, t.pk, t.decimal5, t.decimal10, t.ts, t.ts),
		`CREATE INDEX IF NOT EXISTS idx_influencers_followers ON influencers(followers)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS campaigns (
			id %s,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL,
			budget %s NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			start_date %s,
			end_date %s,
			target_audience TEXT,
			goals TEXT,
			created_by INTEGER NOT NULL REFERENCES users(id),
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, t.pk, t.decimal10, t.ts, t.ts, t.ts, t.ts),
		`CREATE INDEX IF NOT EXISTS idx_campaigns_created_by ON campaigns(created_by)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS collaborations (
			id %s,
			campaign_id INTEGER NOT NULL REFERENCES campaigns(id),
			influencer_id INTEGER NOT NULL REFERENCES influencers(id),
			status TEXT NOT NULL DEFAULT 'pending',
			agreed_rate %s,
			deliverables TEXT,
			actual_reach INTEGER,
			actual_engagement %s,
			completed_at %s,
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, t.pk, t.decimal10, t.decimal5, t.ts, t.ts, t.ts),
		`CREATE INDEX IF NOT EXISTS idx_collaborations_campaign_id ON collaborations(campaign_id)`,
		`CREATE INDEX IF NOT EXISTS idx_collaborations_influencer_id ON collaborations(influencer_id)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS analytics (
			id %s,
			campaign_id INTEGER NOT NULL REFERENCES campaigns(id),
			collaboration_id INTEGER REFERENCES collaborations(id),
			metric TEXT NOT NULL,
			value %s NOT NULL,
			date %s NOT NULL,
			created_at %s NOT NULL
		)`, t.pk, t.decimal15, t.ts, t.ts),
		`CREATE INDEX IF NOT EXISTS idx_analytics_campaign_id ON analytics(campaign_id)`,
	}
}

// Migrate cria as tabelas que ainda não existem
func Migrate(ctx context.Context, conn Conn) error {
	for _, stmt := range schema(conn.Dialect()) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao executar migração %q: %w", firstLine(stmt), err)
		}
	}

	logrus.WithField("dialect", conn.Dialect()).Info("Migrações aplicadas com sucesso")
	return nil
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(stmt), "\n")
	return line
}
