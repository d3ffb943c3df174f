package serving

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/churn-analysis-api/infrastructure/repository"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/training"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

// Service implementa a interface ModelServer. O artefato corrente é trocado
// por inteiro sob o mutex; leitores nunca observam um artefato parcial.
type Service struct {
	trainer            training.Trainer
	artifactRepository repository.ModelArtifactRepository

	mu         sync.RWMutex
	current    *domain.TrainedModelArtifact
	retraining bool
}

// NewService cria uma nova instância do servidor de modelo
func NewService(
	trainer training.Trainer,
	artifactRepo repository.ModelArtifactRepository,
) ModelServer {
	return &Service{
		trainer:            trainer,
		artifactRepository: artifactRepo,
	}
}

// Load carrega o artefato corrente do armazenamento, se existir.
// A ausência de artefato não é erro: o servidor apenas inicia untrained.
func (s *Service) Load(ctx context.Context) error {
	artifact, err := s.artifactRepository.GetCurrent(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar o artefato corrente: %w", err)
	}

	if artifact == nil {
		log.ForContext(ctx).Info("serving: no trained model found, starting untrained")
		return nil
	}

	s.mu.Lock()
	s.current = artifact
	s.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"version": artifact.Version,
		"auc":     artifact.AUC,
	}).Info("serving: current model loaded")

	return nil
}

// GetModel retorna o resumo do artefato corrente ou ErrModelNotTrained
func (s *Service) GetModel(ctx context.Context) (*domain.BaselineModelResponse, error) {
	s.mu.RLock()
	current := s.current
	retraining := s.retraining
	s.mu.RUnlock()

	if current == nil {
		return nil, ErrModelNotTrained
	}

	response := current.Summary()
	if retraining {
		// Durante o retreino o artefato anterior continua servindo
		response.Status = domain.ModelStatusRetraining
	}

	return response, nil
}

// CurrentArtifact retorna o artefato corrente; nil quando não treinado
func (s *Service) CurrentArtifact() *domain.TrainedModelArtifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// RetrainModel treina e promove um novo artefato. A política de concorrência
// é rejeitar: uma segunda chamada durante o retreino recebe
// ErrRetrainInProgress em vez de entrar em fila.
func (s *Service) RetrainModel(ctx context.Context) (*domain.TrainedModelArtifact, error) {
	s.mu.Lock()
	if s.retraining {
		s.mu.Unlock()
		return nil, ErrRetrainInProgress
	}
	s.retraining = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.retraining = false
		s.mu.Unlock()
	}()

	artifact, err := s.trainer.Train(ctx)
	if err != nil {
		// Falha de treino preserva o artefato anterior
		log.ForContext(ctx).WithError(err).Error("serving: retrain failed, keeping previous model")
		return nil, fmt.Errorf("erro ao retreinar o modelo: %w", err)
	}

	if err := s.artifactRepository.Save(ctx, artifact); err != nil {
		log.ForContext(ctx).WithError(err).Error("serving: failed to persist new model, keeping previous")
		return nil, fmt.Errorf("erro ao persistir o novo artefato: %w", err)
	}

	s.mu.Lock()
	s.current = artifact
	s.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"version": artifact.Version,
		"auc":     artifact.AUC,
	}).Info("serving: new model promoted")

	return artifact, nil
}

// Status retorna o estado corrente do servidor de modelo
func (s *Service) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.retraining:
		return domain.ModelStatusRetraining
	case s.current != nil:
		return domain.ModelStatusTrained
	}
	return domain.ModelStatusUntrained
}
