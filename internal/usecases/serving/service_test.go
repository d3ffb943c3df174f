package serving_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/churn-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
	trainermocks "github.com/vfg2006/churn-analysis-api/internal/usecases/training/mocks"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func artifact(version string) *domain.TrainedModelArtifact {
	return &domain.TrainedModelArtifact{
		Version:      version,
		FeatureNames: []string{"tenure"},
		Coefficients: []float64{-1.2},
		AUC:          0.84,
		TrainedAt:    time.Now().UTC(),
	}
}

func TestGetModelSemModeloTreinado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)

	service := serving.NewService(trainer, artifactRepo)

	_, err := service.GetModel(context.Background())

	assert.ErrorIs(t, err, serving.ErrModelNotTrained)
	assert.Equal(t, domain.ModelStatusUntrained, service.Status())
}

func TestLoadCarregaArtefatoCorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)
	artifactRepo.EXPECT().GetCurrent(gomock.Any()).Return(artifact("v1"), nil)

	service := serving.NewService(trainer, artifactRepo)

	require.NoError(t, service.Load(context.Background()))

	response, err := service.GetModel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModelStatusTrained, response.Status)
	assert.Equal(t, "v1", response.Version)
	assert.Equal(t, 0.84, response.Model.AUC)
}

func TestLoadSemArtefatoNaoFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)
	artifactRepo.EXPECT().GetCurrent(gomock.Any()).Return(nil, nil)

	service := serving.NewService(trainer, artifactRepo)

	assert.NoError(t, service.Load(context.Background()))
	assert.Equal(t, domain.ModelStatusUntrained, service.Status())
}

func TestRetrainModelPromoveNovoArtefato(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)

	novo := artifact("v2")
	trainer.EXPECT().Train(gomock.Any()).Return(novo, nil)
	artifactRepo.EXPECT().Save(gomock.Any(), novo).Return(nil)

	service := serving.NewService(trainer, artifactRepo)

	result, err := service.RetrainModel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v2", result.Version)
	assert.Equal(t, novo, service.CurrentArtifact())
	assert.Equal(t, domain.ModelStatusTrained, service.Status())
}

func TestRetrainModelFalhaPreservaArtefatoAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)

	anterior := artifact("v1")
	artifactRepo.EXPECT().GetCurrent(gomock.Any()).Return(anterior, nil)
	trainer.EXPECT().Train(gomock.Any()).Return(nil, errors.New("datastore fora do ar"))

	service := serving.NewService(trainer, artifactRepo)
	require.NoError(t, service.Load(context.Background()))

	_, err := service.RetrainModel(context.Background())

	require.Error(t, err)
	assert.Equal(t, anterior, service.CurrentArtifact())
	assert.Equal(t, domain.ModelStatusTrained, service.Status())

	response, err := service.GetModel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", response.Version)
}

func TestRetrainModelFalhaDePersistenciaPreservaAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)

	anterior := artifact("v1")
	novo := artifact("v2")
	artifactRepo.EXPECT().GetCurrent(gomock.Any()).Return(anterior, nil)
	trainer.EXPECT().Train(gomock.Any()).Return(novo, nil)
	artifactRepo.EXPECT().Save(gomock.Any(), novo).Return(errors.New("disco cheio"))

	service := serving.NewService(trainer, artifactRepo)
	require.NoError(t, service.Load(context.Background()))

	_, err := service.RetrainModel(context.Background())

	require.Error(t, err)
	assert.Equal(t, anterior, service.CurrentArtifact())
}

func TestRetrainModelConcorrenteRejeitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := trainermocks.NewMockTrainer(ctrl)
	artifactRepo := repomocks.NewMockModelArtifactRepository(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	novo := artifact("v2")
	trainer.EXPECT().Train(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.TrainedModelArtifact, error) {
		close(started)
		<-release
		return novo, nil
	})
	artifactRepo.EXPECT().Save(gomock.Any(), novo).Return(nil)

	service := serving.NewService(trainer, artifactRepo)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.RetrainModel(context.Background())
		assert.NoError(t, err)
	}()

	<-started
	assert.Equal(t, domain.ModelStatusRetraining, service.Status())

	// Segunda chamada durante o retreino é rejeitada, não enfileirada
	_, err := service.RetrainModel(context.Background())
	assert.ErrorIs(t, err, serving.ErrRetrainInProgress)

	close(release)
	wg.Wait()

	assert.Equal(t, domain.ModelStatusTrained, service.Status())
	assert.Equal(t, "v2", service.CurrentArtifact().Version)
}
