package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	servingmocks "github.com/vfg2006/churn-analysis-api/internal/usecases/serving/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncService(t *testing.T, enabled bool) (*ModelRetrainSyncService, *servingmocks.MockModelServer) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	modelServer := servingmocks.NewMockModelServer(ctrl)
	cfg := &config.Config{
		RetrainSync: config.RetrainSync{
			CronSchedule: "0 3 * * *",
			Enabled:      enabled,
		},
	}

	return NewModelRetrainSyncService(modelServer, cfg), modelServer
}

func TestStartDesabilitadoNaoAgenda(t *testing.T) {
	service, _ := newSyncService(t, false)

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestRunRetrainSucesso(t *testing.T) {
	service, modelServer := newSyncService(t, true)

	modelServer.EXPECT().RetrainModel(gomock.Any()).Return(&domain.TrainedModelArtifact{
		Version: "v3",
		AUC:     0.82,
	}, nil)
	modelServer.EXPECT().Status().Return(domain.ModelStatusTrained)

	err := service.RunRetrain(context.Background())

	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

func TestRunRetrainFalhaRegistraErro(t *testing.T) {
	service, modelServer := newSyncService(t, true)

	modelServer.EXPECT().RetrainModel(gomock.Any()).Return(nil, errors.New("datastore fora do ar"))
	modelServer.EXPECT().Status().Return(domain.ModelStatusUntrained)

	err := service.RunRetrain(context.Background())

	require.Error(t, err)

	status := service.GetStatus()
	assert.Contains(t, status["last_sync_error"], "datastore fora do ar")
}

func TestGetStatusExpoeConfiguracao(t *testing.T) {
	service, modelServer := newSyncService(t, true)

	modelServer.EXPECT().Status().Return(domain.ModelStatusUntrained)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, domain.ModelStatusUntrained, status["model_status"])
}
