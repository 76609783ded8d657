// Comando migrate aplica o schema relacional e, opcionalmente, carrega dados iniciais.
//
//	go run ./cmd/migrate --seed
//	go run ./cmd/migrate --influencers roster.json
package main

import (
	"context"
	"errors"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	seed := pflag.Bool("seed", false, "popula a base com os dados de demonstração")
	influencersFile := pflag.String("influencers", "", "arquivo JSON com influenciadores para importar")
	skipMigrate := pflag.Bool("skip-migrate", false, "não aplica o schema antes da carga")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	logrus.WithField("dialect", conn.Dialect()).Info("Conexão com o banco de dados estabelecida com sucesso")

	if !*skipMigrate {
		if err := sqldb.Migrate(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	service := managing.NewService(managing.Repositories{
		Users:          repository.NewUserRepository(conn),
		Influencers:    repository.NewInfluencerRepository(conn),
		Campaigns:      repository.NewCampaignRepository(conn),
		Collaborations: repository.NewCollaborationRepository(conn),
		Analytics:      repository.NewAnalyticsRepository(conn),
	}, cfg)

	if *seed {
		result, err := service.SeedData(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao popular dados de demonstração")
		}
		logrus.WithFields(logrus.Fields{
			"seeded":         result.Seeded,
			"influencers":    result.Influencers,
			"campaigns":      result.Campaigns,
			"collaborations": result.Collaborations,
		}).Info(result.Message)
	}

	if *influencersFile != "" {
		if err := importInfluencers(ctx, service, *influencersFile); err != nil {
			logrus.WithError(err).Fatal("Erro ao importar influenciadores")
		}
	}

	logrus.Info("Migração concluída")
}

// importInfluencers cria cada influenciador do arquivo; handles já cadastrados são ignorados
func importInfluencers(ctx context.Context, service managing.Manager, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var requests []domain.CreateInfluencerRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return err
	}

	logrus.Infof("Iniciando importação de %d influenciadores...", len(requests))
	startTime := time.Now()

	successCount, skippedCount, errorCount := 0, 0, 0
	for i := range requests {
		request := requests[i]

		_, err := service.CreateInfluencer(ctx, &request)
		switch {
		case err == nil:
			successCount++
		case errors.Is(err, managing.ErrValidation):
			logrus.WithError(err).Warnf("Influenciador [%d/%d] %s ignorado", i+1, len(requests), request.Handle)
			skippedCount++
		default:
			logrus.WithError(err).Errorf("ERRO ao importar influenciador [%d/%d] %s", i+1, len(requests), request.Handle)
			errorCount++
		}

		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d influenciadores processados", i+1, len(requests))
		}
	}

	logrus.WithFields(logrus.Fields{
		"elapsed":  time.Since(startTime).String(),
		"success":  successCount,
		"skipped":  skippedCount,
		"failures": errorCount,
	}).Info("Importação de influenciadores concluída")

	if errorCount > 0 {
		return errors.New("importação concluída com erros")
	}

	return nil
}
