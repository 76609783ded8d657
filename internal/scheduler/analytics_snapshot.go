// Package scheduler contém os jobs agendados que alimentam a série de métricas das campanhas
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

// ErrSyncRunning é retornado quando já existe uma execução do job em andamento
var ErrSyncRunning = errors.New("scheduler: sincronização já em execução")

type AnalyticsSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotResult resume uma execução do snapshot
type SnapshotResult struct {
	Campaigns int `json:"campaigns"`
	Recorded  int `json:"recorded"`
	Skipped   int `json:"skipped"`
}

// AnalyticsSnapshotService registra diariamente alcance e engajamento das campanhas ativas
type AnalyticsSnapshotService struct {
	scheduler         *gocron.Scheduler
	campaignRepo      repository.CampaignRepository
	collaborationRepo repository.CollaborationRepository
	analyticsRepo     repository.AnalyticsRepository
	config            AnalyticsSnapshotConfig
	clock             func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *SnapshotResult
	lastError           string
}

func NewAnalyticsSnapshotService(
	campaignRepo repository.CampaignRepository,
	collaborationRepo repository.CollaborationRepository,
	analyticsRepo repository.AnalyticsRepository,
	cfg *config.Config,
) *AnalyticsSnapshotService {
	snapshotConfig := AnalyticsSnapshotConfig{
		CronSchedule: cfg.AnalyticsSnapshot.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.AnalyticsSnapshot.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshot de métricas carregada")

	return &AnalyticsSnapshotService{
		scheduler:         gocron.NewScheduler(time.UTC),
		campaignRepo:      campaignRepo,
		collaborationRepo: collaborationRepo,
		analyticsRepo:     analyticsRepo,
		config:            snapshotConfig,
		clock:             time.Now,
	}
}

func (s *AnalyticsSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshot de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunSnapshot(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro no snapshot de métricas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot executa o snapshot de forma síncrona. Execuções sobrepostas retornam ErrSyncRunning.
func (s *AnalyticsSnapshotService) RunSnapshot(ctx context.Context) (*SnapshotResult, error) {
	if !s.begin() {
		logrus.Warn("Snapshot de métricas já está em execução")
		return nil, ErrSyncRunning
	}

	result, err := s.snapshot(ctx)
	s.finish(result, err)

	return result, err
}

func (s *AnalyticsSnapshotService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.clock().UTC()
	return true
}

func (s *AnalyticsSnapshotService) finish(result *SnapshotResult, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.clock().UTC()
	s.lastResult = result
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *AnalyticsSnapshotService) snapshot(ctx context.Context) (*SnapshotResult, error) {
	day := truncateToDay(s.clock())

	campaigns, err := s.campaignRepo.ListCampaigns(ctx, domain.CampaignFilters{Status: string(domain.CampaignStatusActive)})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas ativas para o snapshot")
		return nil, err
	}

	result := &SnapshotResult{Campaigns: len(campaigns)}
	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa para o snapshot de métricas")
		return result, nil
	}

	campaignIDs := make([]int, 0, len(campaigns))
	for _, c := range campaigns {
		campaignIDs = append(campaignIDs, c.ID)
	}

	completed, err := s.collaborationRepo.ListCollaborations(ctx, domain.CollaborationFilters{
		CampaignIDs: campaignIDs,
		Status:      domain.CollaborationStatusCompleted,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar colaborações concluídas para o snapshot")
		return nil, err
	}

	existing, err := s.analyticsRepo.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: campaignIDs})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar métricas existentes para o snapshot")
		return nil, err
	}

	recorded := make(map[snapshotKey]bool, len(existing))
	for _, a := range existing {
		recorded[snapshotKey{a.CampaignID, a.Metric, truncateToDay(a.Date)}] = true
	}

	byCampaign := make(map[int][]*domain.Collaboration, len(campaigns))
	for _, col := range completed {
		byCampaign[col.CampaignID] = append(byCampaign[col.CampaignID], col)
	}

	for _, c := range campaigns {
		collaborations := byCampaign[c.ID]
		if len(collaborations) == 0 {
			continue
		}

		for metric, value := range campaignMetrics(collaborations) {
			if recorded[snapshotKey{c.ID, metric, day}] {
				result.Skipped++
				continue
			}

			_, err := s.analyticsRepo.CreateAnalytics(ctx, &domain.Analytics{
				CampaignID: c.ID,
				Metric:     metric,
				Value:      value,
				Date:       day,
			})
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": c.ID,
					"metric":      metric,
				}).Error("Erro ao registrar métrica do snapshot")
				return result, err
			}
			result.Recorded++
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": result.Campaigns,
		"recorded":  result.Recorded,
		"skipped":   result.Skipped,
	}).Info("Snapshot de métricas concluído")

	return result, nil
}

type snapshotKey struct {
	campaignID int
	metric     string
	day        time.Time
}

// campaignMetrics calcula o alcance somado e o engajamento médio das colaborações concluídas,
// com as mesmas regras do dashboard: engajamento nulo conta como zero na média.
// Engajamento só é registrado quando ao menos uma colaboração o informou.
func campaignMetrics(collaborations []*domain.Collaboration) map[string]decimal.Decimal {
	metrics := map[string]decimal.Decimal{
		domain.MetricReach: decimal.NewFromInt(domain.CalculateReach(collaborations)),
	}

	for _, col := range collaborations {
		if col.ActualEngagement != nil {
			metrics[domain.MetricEngagement] = domain.CalculateAverageEngagement(collaborations)
			break
		}
	}

	return metrics
}

// TriggerManualSync inicia manualmente um snapshot em background
func (s *AnalyticsSnapshotService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de métricas já em andamento, ignorando solicitação manual")
		return ErrSyncRunning
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de métricas")
	go func() {
		if _, err := s.RunSnapshot(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro no snapshot manual de métricas")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
