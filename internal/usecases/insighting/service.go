package insighting

import (
	"context"
	"fmt"

	"github.com/vfg2006/churn-analysis-api/infrastructure/integrator/openai"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

// Service implementa a interface Insighter
type Service struct {
	aggregator  aggregating.Aggregator
	modelServer serving.ModelServer
	generator   openai.InsightGenerator
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	aggregator aggregating.Aggregator,
	modelServer serving.ModelServer,
	generator openai.InsightGenerator,
) Insighter {
	return &Service{
		aggregator:  aggregator,
		modelServer: modelServer,
		generator:   generator,
	}
}

// BuildPayload monta o payload agregado a partir do snapshot corrente.
// O modelo baseline é opcional: sem artefato treinado o payload segue sem
// a seção de insights do modelo.
func (s *Service) BuildPayload(ctx context.Context) (*domain.InsightPayload, error) {
	filter := domain.CustomerFilter{}

	kpis, err := s.aggregator.ComputeKPIs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular os KPIs: %w", err)
	}

	byContract, err := s.aggregator.SegmentBreakdown(ctx, domain.DimensionContract, filter)
	if err != nil {
		return nil, fmt.Errorf("erro no breakdown por contrato: %w", err)
	}

	byPayment, err := s.aggregator.SegmentBreakdown(ctx, domain.DimensionPaymentMethod, filter)
	if err != nil {
		return nil, fmt.Errorf("erro no breakdown por forma de pagamento: %w", err)
	}

	tenureBins, err := s.aggregator.RangeBreakdown(ctx, domain.FieldTenure, filter)
	if err != nil {
		return nil, fmt.Errorf("erro na distribuição de tenure: %w", err)
	}

	monthlyBins, err := s.aggregator.RangeBreakdown(ctx, domain.FieldMonthlyCharges, filter)
	if err != nil {
		return nil, fmt.Errorf("erro na distribuição de mensalidade: %w", err)
	}

	impacts, err := s.aggregator.FeatureImpact(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro no impacto das features: %w", err)
	}

	var model *domain.ModelSummary
	if artifact := s.modelServer.CurrentArtifact(); artifact != nil {
		model = &domain.ModelSummary{
			AUC:         artifact.AUC,
			TopFeatures: artifact.TopFeatures,
		}
	}

	return AssemblePayload(kpis, byContract, byPayment, tenureBins, monthlyBins, impacts, model), nil
}

// GenerateInsights monta o payload e o envia ao colaborador de IA
func (s *Service) GenerateInsights(ctx context.Context) (*domain.InsightResult, error) {
	payload, err := s.BuildPayload(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.GenerateInsights(ctx, payload)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("model_used", result.Metadata.ModelUsed).
		Info("insights: generated by external collaborator")

	return result, nil
}

// AssemblePayload monta o payload de insights tolerando entradas nulas:
// seções ausentes viram coleções vazias, nunca ponteiros nulos obrigatórios
func AssemblePayload(
	kpis *domain.KpiSnapshot,
	byContract []domain.SegmentBreakdownItem,
	byPayment []domain.SegmentBreakdownItem,
	tenureBins *domain.RangeBreakdown,
	monthlyBins *domain.RangeBreakdown,
	impacts *domain.FeatureImpactSummary,
	model *domain.ModelSummary,
) *domain.InsightPayload {
	payload := &domain.InsightPayload{
		ChurnByContract:     emptyIfNil(byContract),
		ChurnByPayment:      emptyIfNil(byPayment),
		TenureDistribution:  []domain.RangeBreakdownItem{},
		MonthlyDistribution: []domain.RangeBreakdownItem{},
		FeatureImpacts:      []domain.FeatureImpactRecord{},
		ModelInsights:       model,
	}

	if kpis != nil {
		payload.OverallChurnRate = kpis.ChurnRate
		payload.TotalCustomers = kpis.TotalCustomers
		payload.ChurnedCustomers = kpis.ChurnedCustomers
		payload.AverageTenure = kpis.AvgTenure
		payload.AverageMonthlyCharges = kpis.AvgMonthlyCharges
	}

	if tenureBins != nil {
		payload.TenureDistribution = tenureBins.Bins
	}
	if monthlyBins != nil {
		payload.MonthlyDistribution = monthlyBins.Bins
	}
	if impacts != nil {
		payload.FeatureImpacts = impacts.Impacts
	}

	return payload
}

func emptyIfNil(items []domain.SegmentBreakdownItem) []domain.SegmentBreakdownItem {
	if items == nil {
		return []domain.SegmentBreakdownItem{}
	}
	return items
}
