package domain

import (
	"time"
)

// FeatureWeight é um coeficiente nomeado do classificador baseline
type FeatureWeight struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// TrainedModelArtifact é o artefato imutável produzido por um treinamento.
// Um retreino produz um artefato novo; artefatos anteriores nunca são
// mutados, apenas substituídos pelo ponteiro de versão corrente.
// Invariante: len(Coefficients) == len(FeatureNames).
type TrainedModelArtifact struct {
	Version      string    `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`

	// Parâmetros de normalização dos campos numéricos, na ordem de FeatureNames
	FeatureMeans  []float64 `json:"feature_means"`
	FeatureStdDev []float64 `json:"feature_stddev"`

	AUC          float64         `json:"auc"`
	TopFeatures  []FeatureWeight `json:"top_features"`
	TrainedAt    time.Time       `json:"trained_at"`
	TotalSamples int             `json:"total_samples"`
	TrainSamples int             `json:"train_samples"`
	TestSamples  int             `json:"test_samples"`
	PositiveRate float64         `json:"positive_rate"`
}

// Estados do servidor de modelo
const (
	ModelStatusUntrained  = "untrained"
	ModelStatusTrained    = "trained"
	ModelStatusRetraining = "retraining"
)

// ModelSummary é a visão pública do artefato corrente
type ModelSummary struct {
	AUC         float64         `json:"auc"`
	TopFeatures []FeatureWeight `json:"top_features"`
}

// TrainingInfo descreve as amostras usadas no último treinamento
type TrainingInfo struct {
	TotalSamples  int       `json:"total_samples"`
	TotalFeatures int       `json:"total_features"`
	TrainSamples  int       `json:"train_samples"`
	TestSamples   int       `json:"test_samples"`
	PositiveRate  float64   `json:"positive_rate"`
	TrainedAt     time.Time `json:"trained_at"`
}

// BaselineModelResponse é a resposta de consulta ao servidor de modelo
type BaselineModelResponse struct {
	Status       string        `json:"status"`
	Version      string        `json:"version,omitempty"`
	Model        *ModelSummary `json:"model,omitempty"`
	TrainingInfo *TrainingInfo `json:"training_info,omitempty"`
}

// Summary monta a visão pública de um artefato
func (a *TrainedModelArtifact) Summary() *BaselineModelResponse {
	if a == nil {
		return &BaselineModelResponse{Status: ModelStatusUntrained}
	}

	return &BaselineModelResponse{
		Status:  ModelStatusTrained,
		Version: a.Version,
		Model: &ModelSummary{
			AUC:         a.AUC,
			TopFeatures: a.TopFeatures,
		},
		TrainingInfo: &TrainingInfo{
			TotalSamples:  a.TotalSamples,
			TotalFeatures: len(a.FeatureNames),
			TrainSamples:  a.TrainSamples,
			TestSamples:   a.TestSamples,
			PositiveRate:  a.PositiveRate,
			TrainedAt:     a.TrainedAt,
		},
	}
}
