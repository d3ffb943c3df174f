package training

import (
	"context"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

// Trainer define a interface de treinamento do classificador baseline de
// churn. Cada chamada produz um artefato novo e imutável; o treinamento
// nunca muta artefatos anteriores.
type Trainer interface {
	// Train lê o snapshot corrente do datastore e treina um novo artefato
	Train(ctx context.Context) (*domain.TrainedModelArtifact, error)
}
