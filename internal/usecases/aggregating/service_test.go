package aggregating_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/churn-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestConfig() *config.Config {
	return &config.Config{Bins: config.DefaultBins()}
}

func customer(id string, churned bool, tenure, monthly float64) *domain.Customer {
	return &domain.Customer{
		ID:             id,
		Gender:         "Female",
		Contract:       "Month-to-month",
		PaymentMethod:  "Electronic check",
		Tenure:         tenure,
		MonthlyCharges: monthly,
		TotalCharges:   tenure * monthly,
		Churned:        churned,
	}
}

func TestKPIsFromCustomers(t *testing.T) {
	tests := []struct {
		name      string
		customers []*domain.Customer
		expected  *domain.KpiSnapshot
	}{
		{
			name:      "conjunto vazio produz snapshot zerado",
			customers: nil,
			expected:  &domain.KpiSnapshot{},
		},
		{
			name: "três clientes com um churn",
			customers: []*domain.Customer{
				customer("c1", true, 6, 30),
				customer("c2", false, 18, 60),
				customer("c3", false, 30, 90),
			},
			expected: &domain.KpiSnapshot{
				TotalCustomers:    3,
				ChurnedCustomers:  1,
				ChurnRate:         0.3333,
				AvgTenure:         18,
				AvgMonthlyCharges: 60,
				AvgTotalCharges:   1320,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregating.KPIsFromCustomers(tt.customers))
		})
	}
}

func TestSegmentBreakdownFromCustomers(t *testing.T) {
	customers := []*domain.Customer{
		customer("c1", true, 5, 30),
		customer("c2", false, 10, 40),
		{ID: "c3", Gender: "Male", Contract: "Two year", PaymentMethod: "Mailed check", Tenure: 60, MonthlyCharges: 20},
		{ID: "c4", Contract: "Two year", PaymentMethod: "Mailed check", Tenure: 50, MonthlyCharges: 25},
	}

	items := aggregating.SegmentBreakdownFromCustomers(customers, domain.DimensionContract)

	require.Len(t, items, 2)

	// Ordenado por taxa de churn decrescente
	assert.Equal(t, "Month-to-month", items[0].Key)
	assert.Equal(t, 2, items[0].Count)
	assert.Equal(t, 0.5, items[0].ChurnRate)
	assert.Equal(t, "Two year", items[1].Key)
	assert.Equal(t, float64(0), items[1].ChurnRate)

	// Counts somam o conjunto de entrada e percentuais somam 100
	totalCount := 0
	totalPct := 0.0
	for _, item := range items {
		totalCount += item.Count
		totalPct += item.Percentage
	}
	assert.Equal(t, len(customers), totalCount)
	assert.InDelta(t, 100, totalPct, 0.01)
}

func TestSegmentBreakdownUnknownValueViraUnknown(t *testing.T) {
	customers := []*domain.Customer{
		{ID: "c1", Tenure: 1, MonthlyCharges: 10},
	}

	items := aggregating.SegmentBreakdownFromCustomers(customers, domain.DimensionGender)

	require.Len(t, items, 1)
	assert.Equal(t, domain.UnknownCategory, items[0].Key)
}

func TestRangeBreakdownFromCustomers(t *testing.T) {
	cfg := domain.BinConfig{
		Field:  domain.FieldTenure,
		Edges:  []float64{12, 24, 48},
		Labels: []string{"0-12", "13-24", "25-48", "49+"},
	}

	customers := []*domain.Customer{
		customer("c1", false, 5, 30),
		customer("c2", false, 30, 60),
		customer("c3", false, 50, 90),
	}

	breakdown := aggregating.RangeBreakdownFromCustomers(customers, cfg)

	require.Len(t, breakdown.Bins, 4)

	// Todas as faixas presentes, na ordem, incluindo a vazia
	assert.Equal(t, "0-12", breakdown.Bins[0].Range)
	assert.Equal(t, 1, breakdown.Bins[0].Count)
	assert.Equal(t, "13-24", breakdown.Bins[1].Range)
	assert.Equal(t, 0, breakdown.Bins[1].Count)
	assert.Equal(t, "25-48", breakdown.Bins[2].Range)
	assert.Equal(t, 1, breakdown.Bins[2].Count)
	assert.Equal(t, "49+", breakdown.Bins[3].Range)
	assert.Equal(t, 1, breakdown.Bins[3].Count)

	assert.InDelta(t, 33.33, breakdown.Bins[0].Percentage, 0.01)
	assert.Equal(t, 0, breakdown.Excluded)
}

func TestRangeBreakdownLimiteSuperiorInclusivo(t *testing.T) {
	cfg := domain.BinConfig{
		Field:  domain.FieldTenure,
		Edges:  []float64{12, 24, 48},
		Labels: []string{"0-12", "13-24", "25-48", "49+"},
	}

	customers := []*domain.Customer{
		customer("c1", false, 12, 30),
		customer("c2", false, 13, 30),
	}

	breakdown := aggregating.RangeBreakdownFromCustomers(customers, cfg)

	assert.Equal(t, 1, breakdown.Bins[0].Count)
	assert.Equal(t, 1, breakdown.Bins[1].Count)
}

func TestFeatureImpactFromCustomers(t *testing.T) {
	withFeature := func(id string, churned bool, value string) *domain.Customer {
		c := customer(id, churned, 10, 50)
		c.Features = map[string]string{"OnlineSecurity": value}
		return c
	}

	// 4 com o serviço (1 churn => 25%) e 4 sem (2 churns => 50%)
	customers := []*domain.Customer{
		withFeature("c1", true, domain.FeatureYes),
		withFeature("c2", false, domain.FeatureYes),
		withFeature("c3", false, domain.FeatureYes),
		withFeature("c4", false, domain.FeatureYes),
		withFeature("c5", true, domain.FeatureNo),
		withFeature("c6", true, domain.FeatureNo),
		withFeature("c7", false, domain.FeatureNo),
		withFeature("c8", false, domain.FeatureNo),
		withFeature("c9", false, domain.NoInternetService), // fora das duas parcelas
	}

	summary := aggregating.FeatureImpactFromCustomers(customers)

	require.Len(t, summary.Impacts, 1)
	record := summary.Impacts[0]

	assert.Equal(t, "OnlineSecurity", record.Feature)
	assert.Equal(t, 4, record.PresentCount)
	assert.Equal(t, 4, record.AbsentCount)
	assert.Equal(t, 0.25, record.PresentRate)
	assert.Equal(t, 0.5, record.AbsentRate)
	assert.Equal(t, 0.25, record.ChurnReduction)

	require.NotNil(t, summary.Best)
	require.NotNil(t, summary.Worst)
	assert.Equal(t, "OnlineSecurity", summary.Best.Feature)
}

func TestRankFeatureImpactsDesempate(t *testing.T) {
	impacts := []domain.FeatureImpactRecord{
		{Feature: "StreamingTV", ChurnReduction: 0.1, PresentCount: 10, AbsentCount: 10},
		{Feature: "TechSupport", ChurnReduction: 0.2, PresentCount: 5, AbsentCount: 5},
		{Feature: "OnlineBackup", ChurnReduction: 0.1, PresentCount: 50, AbsentCount: 50},
	}

	ranked := aggregating.RankFeatureImpacts(impacts)

	assert.Equal(t, "TechSupport", ranked[0].Feature)
	// Empate em 0.1 resolvido pela quantidade combinada de amostras
	assert.Equal(t, "OnlineBackup", ranked[1].Feature)
	assert.Equal(t, "StreamingTV", ranked[2].Feature)
}

func TestServiceSegmentBreakdownDimensaoInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	service := aggregating.NewService(newTestConfig(), repo)

	_, err := service.SegmentBreakdown(context.Background(), "favorite_color", domain.CustomerFilter{})

	assert.ErrorIs(t, err, aggregating.ErrUnknownDimension)
}

func TestServiceRangeBreakdownCampoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	service := aggregating.NewService(newTestConfig(), repo)

	_, err := service.RangeBreakdown(context.Background(), "total_charges", domain.CustomerFilter{})

	assert.ErrorIs(t, err, aggregating.ErrUnknownField)
}

func TestServiceComputeKPIsComFiltro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	filter := domain.CustomerFilter{Contract: "Month-to-month"}

	repo.EXPECT().
		FetchCustomers(gomock.Any(), filter, nil).
		Return(&domain.CustomerBatch{
			Customers: []*domain.Customer{
				customer("c1", true, 6, 30),
				customer("c2", false, 18, 60),
			},
			Total: 2,
		}, nil)

	service := aggregating.NewService(newTestConfig(), repo)

	snapshot, err := service.ComputeKPIs(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.TotalCustomers)
	assert.Equal(t, 1, snapshot.ChurnedCustomers)
	assert.Equal(t, 0.5, snapshot.ChurnRate)
}
