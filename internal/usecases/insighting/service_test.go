package insighting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openaimocks "github.com/vfg2006/churn-analysis-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	aggmocks "github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/insighting"
	servingmocks "github.com/vfg2006/churn-analysis-api/internal/usecases/serving/mocks"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func TestAssemblePayloadEntradasNulas(t *testing.T) {
	payload := insighting.AssemblePayload(nil, nil, nil, nil, nil, nil, nil)

	require.NotNil(t, payload)

	// Seções ausentes viram coleções vazias, nunca nil
	assert.NotNil(t, payload.ChurnByContract)
	assert.Empty(t, payload.ChurnByContract)
	assert.NotNil(t, payload.ChurnByPayment)
	assert.NotNil(t, payload.TenureDistribution)
	assert.NotNil(t, payload.MonthlyDistribution)
	assert.NotNil(t, payload.FeatureImpacts)

	// O modelo é a única seção de fato opcional
	assert.Nil(t, payload.ModelInsights)
	assert.Zero(t, payload.OverallChurnRate)
}

func TestAssemblePayloadCompleto(t *testing.T) {
	kpis := &domain.KpiSnapshot{
		TotalCustomers:    100,
		ChurnedCustomers:  27,
		ChurnRate:         0.27,
		AvgTenure:         32.4,
		AvgMonthlyCharges: 64.76,
	}
	contract := []domain.SegmentBreakdownItem{{Key: "Month-to-month", Count: 55, ChurnRate: 0.42}}
	tenure := &domain.RangeBreakdown{
		Field: domain.FieldTenure,
		Bins:  []domain.RangeBreakdownItem{{Range: "0-12", Count: 30, Percentage: 30}},
	}
	impacts := &domain.FeatureImpactSummary{
		Impacts: []domain.FeatureImpactRecord{{Feature: "TechSupport", ChurnReduction: 0.22}},
	}
	model := &domain.ModelSummary{AUC: 0.84}

	payload := insighting.AssemblePayload(kpis, contract, nil, tenure, nil, impacts, model)

	assert.Equal(t, 0.27, payload.OverallChurnRate)
	assert.Equal(t, 100, payload.TotalCustomers)
	assert.Equal(t, 32.4, payload.AverageTenure)
	assert.Equal(t, contract, payload.ChurnByContract)
	assert.Empty(t, payload.ChurnByPayment)
	assert.Equal(t, tenure.Bins, payload.TenureDistribution)
	assert.Equal(t, impacts.Impacts, payload.FeatureImpacts)
	assert.Equal(t, model, payload.ModelInsights)
}

func expectAggregations(aggregator *aggmocks.MockAggregator) {
	filter := domain.CustomerFilter{}

	aggregator.EXPECT().ComputeKPIs(gomock.Any(), filter).
		Return(&domain.KpiSnapshot{TotalCustomers: 10, ChurnedCustomers: 3, ChurnRate: 0.3}, nil)
	aggregator.EXPECT().SegmentBreakdown(gomock.Any(), domain.DimensionContract, filter).
		Return([]domain.SegmentBreakdownItem{{Key: "Month-to-month", Count: 6}}, nil)
	aggregator.EXPECT().SegmentBreakdown(gomock.Any(), domain.DimensionPaymentMethod, filter).
		Return([]domain.SegmentBreakdownItem{{Key: "Electronic check", Count: 4}}, nil)
	aggregator.EXPECT().RangeBreakdown(gomock.Any(), domain.FieldTenure, filter).
		Return(&domain.RangeBreakdown{Field: domain.FieldTenure}, nil)
	aggregator.EXPECT().RangeBreakdown(gomock.Any(), domain.FieldMonthlyCharges, filter).
		Return(&domain.RangeBreakdown{Field: domain.FieldMonthlyCharges}, nil)
	aggregator.EXPECT().FeatureImpact(gomock.Any(), filter).
		Return(&domain.FeatureImpactSummary{}, nil)
}

func TestBuildPayloadSemModeloTreinado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := aggmocks.NewMockAggregator(ctrl)
	modelServer := servingmocks.NewMockModelServer(ctrl)
	generator := openaimocks.NewMockInsightGenerator(ctrl)

	expectAggregations(aggregator)
	modelServer.EXPECT().CurrentArtifact().Return(nil)

	service := insighting.NewService(aggregator, modelServer, generator)

	payload, err := service.BuildPayload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, payload.TotalCustomers)
	assert.Nil(t, payload.ModelInsights)
}

func TestBuildPayloadComModelo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := aggmocks.NewMockAggregator(ctrl)
	modelServer := servingmocks.NewMockModelServer(ctrl)
	generator := openaimocks.NewMockInsightGenerator(ctrl)

	expectAggregations(aggregator)
	modelServer.EXPECT().CurrentArtifact().Return(&domain.TrainedModelArtifact{
		Version: "v1",
		AUC:     0.84,
		TopFeatures: []domain.FeatureWeight{
			{Feature: "contract_Two year", Weight: -1.4},
		},
	})

	service := insighting.NewService(aggregator, modelServer, generator)

	payload, err := service.BuildPayload(context.Background())

	require.NoError(t, err)
	require.NotNil(t, payload.ModelInsights)
	assert.Equal(t, 0.84, payload.ModelInsights.AUC)
	assert.Len(t, payload.ModelInsights.TopFeatures, 1)
}

func TestGenerateInsightsEncaminhaPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := aggmocks.NewMockAggregator(ctrl)
	modelServer := servingmocks.NewMockModelServer(ctrl)
	generator := openaimocks.NewMockInsightGenerator(ctrl)

	expectAggregations(aggregator)
	modelServer.EXPECT().CurrentArtifact().Return(nil)

	expected := &domain.InsightResult{
		Insights:        "Clientes de contrato mensal concentram o churn",
		Recommendations: []string{"Oferecer migração para contratos anuais"},
	}
	generator.EXPECT().
		GenerateInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *domain.InsightPayload) (*domain.InsightResult, error) {
			assert.Equal(t, 10, payload.TotalCustomers)
			return expected, nil
		})

	service := insighting.NewService(aggregator, modelServer, generator)

	result, err := service.GenerateInsights(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
