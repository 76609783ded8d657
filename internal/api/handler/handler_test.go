package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/influence-hub-api/internal/api/handler/router"
	"github.com/vfg2006/influence-hub-api/internal/scheduler"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

type fakeCronJob struct {
	err       error
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() error {
	f.triggered++
	return f.err
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		job        *fakeCronJob
		wantStatus int
		wantBody   string
	}{
		{
			name:       "dispara o job",
			path:       "/api/cron/analytics-snapshot/run",
			job:        &fakeCronJob{},
			wantStatus: http.StatusAccepted,
			wantBody:   "analytics-snapshot",
		},
		{
			name:       "job em execução",
			path:       "/api/cron/analytics-snapshot/run",
			job:        &fakeCronJob{err: scheduler.ErrSyncRunning},
			wantStatus: http.StatusConflict,
			wantBody:   apiErrors.ErrSchedulerBusy,
		},
		{
			name:       "falha inesperada",
			path:       "/api/cron/analytics-snapshot/run",
			job:        &fakeCronJob{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   apiErrors.ErrInternalServer,
		},
		{
			name:       "tipo desconhecido",
			path:       "/api/cron/meta/run",
			job:        &fakeCronJob{},
			wantStatus: http.StatusBadRequest,
			wantBody:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{
				CronJobTypeAnalyticsSnapshot: tt.job,
			})...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validação expõe os detalhes",
			err:         &managing.ManagingError{Err: managing.ErrValidation, Code: apiErrors.ErrInvalidRequest, Details: "name: required"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrInvalidRequest,
			wantMessage: "name: required",
		},
		{
			name:        "não encontrado",
			err:         &managing.ManagingError{Err: managing.ErrNotFound, Code: apiErrors.ErrCampaignNotFound, Details: "campanha 9 não encontrada"},
			wantStatus:  http.StatusNotFound,
			wantCode:    apiErrors.ErrCampaignNotFound,
			wantMessage: "campanha 9 não encontrada",
		},
		{
			name:        "armazenamento esconde a causa",
			err:         &managing.ManagingError{Err: managing.ErrStorage, Cause: errors.New("pq: password authentication failed"), Code: apiErrors.ErrDatabaseOperation},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrDatabaseOperation,
			wantMessage: "Erro ao buscar",
		},
		{
			name:        "erro sem categoria",
			err:         errors.New("unexpected"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrInternalServer,
			wantMessage: "Erro ao buscar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "Erro ao buscar")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.wantCode)
			assert.Contains(t, body, tt.wantMessage)
			assert.NotContains(t, body, "password authentication")
		})
	}
}
