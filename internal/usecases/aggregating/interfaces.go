package aggregating

import (
	"context"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

// Aggregator define a interface de agregação analítica sobre o datastore de
// clientes. Todo cálculo é feito sobre um snapshot lido no momento da
// chamada; nada é persistido.
type Aggregator interface {
	// ComputeKPIs calcula os indicadores globais do conjunto filtrado
	ComputeKPIs(ctx context.Context, filter domain.CustomerFilter) (*domain.KpiSnapshot, error)

	// SegmentBreakdown agrupa o conjunto filtrado por uma dimensão categórica
	SegmentBreakdown(ctx context.Context, dimension string, filter domain.CustomerFilter) ([]domain.SegmentBreakdownItem, error)

	// RangeBreakdown distribui o conjunto filtrado nas faixas de um campo numérico
	RangeBreakdown(ctx context.Context, field string, filter domain.CustomerFilter) (*domain.RangeBreakdown, error)

	// FeatureImpact compara a taxa de churn com e sem cada add-on de serviço
	FeatureImpact(ctx context.Context, filter domain.CustomerFilter) (*domain.FeatureImpactSummary, error)
}
