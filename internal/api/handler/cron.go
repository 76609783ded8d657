package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/scheduler"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAnalyticsSnapshot = "analytics-snapshot"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices associa cada tipo de cron job ao serviço que a executa
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, exists := services[cronType]
		if !exists || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Cron job já está em execução", nil)
				return
			}
			writeServiceError(w, r, err, "Erro ao iniciar cron job")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			if job != nil {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
