package serving

import (
	"context"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

// ModelServer define o ciclo de vida do modelo baseline em memória:
// Untrained -> Trained -> Retraining -> Trained
type ModelServer interface {
	// Load carrega o artefato corrente do armazenamento, se existir
	Load(ctx context.Context) error

	// GetModel retorna o resumo do artefato corrente ou ErrModelNotTrained
	GetModel(ctx context.Context) (*domain.BaselineModelResponse, error)

	// CurrentArtifact retorna o artefato corrente; nil quando não treinado
	CurrentArtifact() *domain.TrainedModelArtifact

	// RetrainModel treina e promove um novo artefato. Chamadas concorrentes
	// recebem ErrRetrainInProgress; uma falha preserva o artefato anterior.
	RetrainModel(ctx context.Context) (*domain.TrainedModelArtifact, error)

	// Status retorna o estado corrente do servidor de modelo
	Status() string
}
