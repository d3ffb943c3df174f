package training

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/vfg2006/churn-analysis-api/infrastructure/repository"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
	"github.com/vfg2006/churn-analysis-api/pkg/utils"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

const minTrainingSamples = 20

// Service implementa a interface Trainer com regressão logística por
// gradiente descendente sobre features normalizadas
type Service struct {
	cfg                *config.Config
	customerRepository repository.CustomerRepository
}

// NewService cria uma nova instância do serviço de treinamento
func NewService(
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
) Trainer {
	return &Service{
		cfg:                cfg,
		customerRepository: customerRepo,
	}
}

// Train lê o snapshot corrente do datastore e treina um novo artefato
func (s *Service) Train(ctx context.Context) (*domain.TrainedModelArtifact, error) {
	batch, err := s.customerRepository.FetchCustomers(ctx, domain.CustomerFilter{}, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes para treinamento: %w", err)
	}

	if len(batch.Anomalies) > 0 {
		log.ForContext(ctx).WithField("anomalies", len(batch.Anomalies)).
			Warn("training: malformed rows excluded from training set")
	}

	return s.TrainFromCustomers(ctx, batch.Customers)
}

// TrainFromCustomers treina o classificador a partir de um conjunto já
// validado. O pipeline é determinístico: mesma semente e mesmo dataset
// produzem os mesmos pesos, a mesma AUC e o mesmo ranking de features.
func (s *Service) TrainFromCustomers(ctx context.Context, customers []*domain.Customer) (*domain.TrainedModelArtifact, error) {
	if len(customers) < minTrainingSamples {
		return nil, ErrInsufficientData
	}

	matrix := buildDesignMatrix(customers)

	positives := 0
	for _, label := range matrix.labels {
		if label == 1 {
			positives++
		}
	}
	if positives == 0 || positives == len(matrix.labels) {
		return nil, ErrSingleClass
	}

	trainIdx, testIdx := stratifiedSplit(matrix.labels, s.cfg.Training.TestRatio, s.cfg.Training.Seed)

	means, stddevs := fitScaler(matrix.rows, trainIdx)
	scaled := applyScaler(matrix.rows, means, stddevs)

	weights, intercept := fitLogistic(
		scaled, matrix.labels, trainIdx,
		s.cfg.Training.Epochs,
		s.cfg.Training.LearningRate,
		s.cfg.Training.L2Penalty,
	)

	auc := evaluateAUC(scaled, matrix.labels, testIdx, weights, intercept)

	version, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar a versão do artefato: %w", err)
	}

	artifact := &domain.TrainedModelArtifact{
		Version:       version,
		FeatureNames:  matrix.names,
		Coefficients:  weights,
		Intercept:     intercept,
		FeatureMeans:  means,
		FeatureStdDev: stddevs,
		AUC:           utils.RoundWithFourDecimalPlace(auc),
		TopFeatures:   topFeatures(matrix.names, weights, s.cfg.Training.TopFeatures),
		TrainedAt:     time.Now().UTC(),
		TotalSamples:  len(customers),
		TrainSamples:  len(trainIdx),
		TestSamples:   len(testIdx),
		PositiveRate:  utils.RoundWithFourDecimalPlace(float64(positives) / float64(len(customers))),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"version":       artifact.Version,
		"auc":           artifact.AUC,
		"train_samples": artifact.TrainSamples,
		"test_samples":  artifact.TestSamples,
	}).Info("training: baseline model trained")

	return artifact, nil
}

// stratifiedSplit separa treino e teste mantendo a proporção de classes.
// O embaralhamento usa a semente configurada, então a partição é estável
// entre execuções sobre o mesmo dataset.
func stratifiedSplit(labels []float64, testRatio float64, seed int64) (trainIdx, testIdx []int) {
	rng := rand.New(rand.NewSource(seed))

	var positives, negatives []int
	for i, label := range labels {
		if label == 1 {
			positives = append(positives, i)
		} else {
			negatives = append(negatives, i)
		}
	}

	rng.Shuffle(len(positives), func(i, j int) { positives[i], positives[j] = positives[j], positives[i] })
	rng.Shuffle(len(negatives), func(i, j int) { negatives[i], negatives[j] = negatives[j], negatives[i] })

	split := func(class []int) (test, train []int) {
		n := int(math.Round(float64(len(class)) * testRatio))
		if n < 1 && len(class) > 1 {
			n = 1
		}
		return class[:n], class[n:]
	}

	posTest, posTrain := split(positives)
	negTest, negTrain := split(negatives)

	trainIdx = append(append([]int{}, posTrain...), negTrain...)
	testIdx = append(append([]int{}, posTest...), negTest...)

	sort.Ints(trainIdx)
	sort.Ints(testIdx)

	return trainIdx, testIdx
}

// fitScaler calcula média e desvio padrão por coluna usando apenas as
// linhas de treino; desvio zero vira 1 para não dividir por zero
func fitScaler(rows [][]float64, trainIdx []int) (means, stddevs []float64) {
	features := len(rows[0])
	means = make([]float64, features)
	stddevs = make([]float64, features)

	column := make([]float64, len(trainIdx))
	for j := 0; j < features; j++ {
		for i, idx := range trainIdx {
			column[i] = rows[idx][j]
		}

		means[j] = stat.Mean(column, nil)
		stddevs[j] = stat.StdDev(column, nil)
		if stddevs[j] == 0 || math.IsNaN(stddevs[j]) {
			stddevs[j] = 1
		}
	}

	return means, stddevs
}

func applyScaler(rows [][]float64, means, stddevs []float64) [][]float64 {
	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		out := make([]float64, len(row))
		for j, v := range row {
			out[j] = (v - means[j]) / stddevs[j]
		}
		scaled[i] = out
	}
	return scaled
}

// fitLogistic treina regressão logística por gradiente descendente em lote
// completo, com penalidade L2 sobre os pesos (não sobre o intercepto)
func fitLogistic(rows [][]float64, labels []float64, trainIdx []int, epochs int, learningRate, l2 float64) ([]float64, float64) {
	features := len(rows[0])
	weights := make([]float64, features)
	intercept := 0.0
	n := float64(len(trainIdx))

	gradient := make([]float64, features)

	for epoch := 0; epoch < epochs; epoch++ {
		for j := range gradient {
			gradient[j] = 0
		}
		interceptGradient := 0.0

		for _, idx := range trainIdx {
			residual := sigmoid(dot(rows[idx], weights)+intercept) - labels[idx]
			for j, v := range rows[idx] {
				gradient[j] += residual * v
			}
			interceptGradient += residual
		}

		for j := range weights {
			weights[j] -= learningRate * (gradient[j]/n + l2*weights[j])
		}
		intercept -= learningRate * (interceptGradient / n)
	}

	return weights, intercept
}

// evaluateAUC calcula a área sob a curva ROC no conjunto de teste.
// Quando o teste tem uma única classe a AUC é indefinida e retorna 0.5.
func evaluateAUC(rows [][]float64, labels []float64, testIdx []int, weights []float64, intercept float64) float64 {
	scores := make([]float64, len(testIdx))
	classes := make([]bool, len(testIdx))

	positives := 0
	for i, idx := range testIdx {
		scores[i] = sigmoid(dot(rows[idx], weights) + intercept)
		classes[i] = labels[idx] == 1
		if classes[i] {
			positives++
		}
	}

	if positives == 0 || positives == len(testIdx) {
		return 0.5
	}

	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)

	return integrate.Trapezoidal(fpr, tpr)
}

// topFeatures ranqueia os coeficientes por magnitude absoluta decrescente
func topFeatures(names []string, weights []float64, topN int) []domain.FeatureWeight {
	ranked := make([]domain.FeatureWeight, len(weights))
	for i, w := range weights {
		ranked[i] = domain.FeatureWeight{Feature: names[i], Weight: utils.RoundWithFourDecimalPlace(w)}
	}

	sort.Slice(ranked, func(i, j int) bool {
		ai, aj := math.Abs(ranked[i].Weight), math.Abs(ranked[j].Weight)
		if ai != aj {
			return ai > aj
		}
		return ranked[i].Feature < ranked[j].Feature
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
