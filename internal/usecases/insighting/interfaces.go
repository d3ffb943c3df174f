package insighting

import (
	"context"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

// Insighter monta o payload único de insights e, opcionalmente, o envia ao
// colaborador externo de IA
type Insighter interface {
	// BuildPayload monta o payload agregado a partir do snapshot corrente
	BuildPayload(ctx context.Context) (*domain.InsightPayload, error)

	// GenerateInsights monta o payload e o envia ao colaborador de IA
	GenerateInsights(ctx context.Context) (*domain.InsightResult, error)
}
