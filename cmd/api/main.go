package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository/memory"
	"github.com/vfg2006/influence-hub-api/internal/api"
	"github.com/vfg2006/influence-hub-api/internal/api/handler"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/scheduler"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repos  managing.Repositories
		pinger handler.Pinger
	)

	switch cfg.Storage.Backend {
	case config.StorageSQL:
		conn := sqlconn(ctx, cfg.Database)
		defer conn.Close()

		repos = managing.Repositories{
			Users:          repository.NewUserRepository(conn),
			Influencers:    repository.NewInfluencerRepository(conn),
			Campaigns:      repository.NewCampaignRepository(conn),
			Collaborations: repository.NewCollaborationRepository(conn),
			Analytics:      repository.NewAnalyticsRepository(conn),
		}
		pinger = conn
	default:
		store := memory.NewStore()
		repos = managing.Repositories{
			Users:          store,
			Influencers:    store,
			Campaigns:      store,
			Collaborations: store,
			Analytics:      store,
		}
		logrus.Warn("Usando armazenamento em memória: os dados serão perdidos ao reiniciar")
	}

	service := managing.NewService(repos, cfg)

	if cfg.Seed.OnStartup {
		result, err := service.SeedData(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao popular dados de demonstração")
		}
		logrus.WithField("seeded", result.Seeded).Info(result.Message)
	}

	snapshotService := scheduler.NewAnalyticsSnapshotService(repos.Campaigns, repos.Collaborations, repos.Analytics, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de métricas")
	} else {
		logrus.Info("Agendador de snapshot de métricas iniciado com sucesso")
	}

	server, err := api.New(cfg, service, pinger, handler.CronJobServices{
		handler.CronJobTypeAnalyticsSnapshot: snapshotService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// sqlconn abre a conexão com o banco relacional e aplica o schema quando configurado
func sqlconn(ctx context.Context, dbConfig config.Database) *sqldb.Connection {
	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("dialect", conn.Dialect()).Info("Conexão com banco de dados estabelecida com sucesso")

	if dbConfig.AutoMigrate {
		if err := sqldb.Migrate(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	return conn
}
