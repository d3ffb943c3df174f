// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
)

type ModelRetrainSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ModelRetrainSyncService retreina o modelo baseline periodicamente para
// acompanhar o snapshot corrente do datastore
type ModelRetrainSyncService struct {
	scheduler           *gocron.Scheduler
	modelServer         serving.ModelServer
	config              ModelRetrainSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewModelRetrainSyncService(
	modelServer serving.ModelServer,
	cfg *config.Config,
) *ModelRetrainSyncService {
	syncConfig := ModelRetrainSyncConfig{
		CronSchedule: cfg.RetrainSync.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.RetrainSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de retreino do modelo carregada")

	return &ModelRetrainSyncService{
		scheduler:   scheduler,
		modelServer: modelServer,
		config:      syncConfig,
	}
}

func (s *ModelRetrainSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de retreino do modelo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retreino do modelo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRetrain(ctx); err != nil {
			logrus.WithError(err).Error("Erro no retreino agendado do modelo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retreino do modelo: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retreino do modelo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRetrain dispara um retreino completo. O guard local evita que o job
// agendado se acumule; o servidor de modelo ainda aplica a própria política
// de rejeição para chamadas externas concorrentes.
func (s *ModelRetrainSyncService) RunRetrain(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Retreino do modelo já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando retreino agendado do modelo")

	artifact, err := s.modelServer.RetrainModel(ctx)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return err
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"version": artifact.Version,
		"auc":     artifact.AUC,
	}).Info("Retreino agendado do modelo concluído")

	return nil
}

// TriggerManualSync inicia manualmente um retreino do modelo
func (s *ModelRetrainSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retreino do modelo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando retreino manual do modelo")
	go func() {
		if err := s.RunRetrain(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no retreino manual do modelo")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ModelRetrainSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"model_status":           s.modelServer.Status(),
	}
}
