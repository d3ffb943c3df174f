package training

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		Training: config.Training{
			TestRatio:    0.2,
			Seed:         42,
			Epochs:       200,
			LearningRate: 0.1,
			L2Penalty:    0.001,
			TopFeatures:  10,
		},
	}
}

// Dataset sintético separável: clientes que cancelam têm contrato mensal,
// pouco tempo de casa e mensalidade alta
func separableCustomers(n int) []*domain.Customer {
	customers := make([]*domain.Customer, 0, n)
	for i := 0; i < n; i++ {
		churned := i%2 == 0
		c := &domain.Customer{
			ID:            fmt.Sprintf("c%03d", i),
			Gender:        "Female",
			PaymentMethod: "Electronic check",
			Features:      map[string]string{"OnlineSecurity": domain.FeatureNo},
		}
		if churned {
			c.Churned = true
			c.Contract = "Month-to-month"
			c.Tenure = float64(1 + i%6)
			c.MonthlyCharges = 95 + float64(i%10)
		} else {
			c.Contract = "Two year"
			c.Tenure = float64(40 + i%30)
			c.MonthlyCharges = 30 + float64(i%10)
			c.Features["OnlineSecurity"] = domain.FeatureYes
		}
		c.TotalCharges = c.Tenure * c.MonthlyCharges
		customers = append(customers, c)
	}
	return customers
}

func TestTrainFromCustomersDadosInsuficientes(t *testing.T) {
	service := &Service{cfg: testConfig()}

	_, err := service.TrainFromCustomers(context.Background(), separableCustomers(5))

	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestTrainFromCustomersClasseUnica(t *testing.T) {
	service := &Service{cfg: testConfig()}

	customers := separableCustomers(40)
	for _, c := range customers {
		c.Churned = false
	}

	_, err := service.TrainFromCustomers(context.Background(), customers)

	assert.ErrorIs(t, err, ErrSingleClass)
}

func TestTrainFromCustomersArtefatoConsistente(t *testing.T) {
	service := &Service{cfg: testConfig()}
	customers := separableCustomers(100)

	artifact, err := service.TrainFromCustomers(context.Background(), customers)

	require.NoError(t, err)
	require.NotNil(t, artifact)

	assert.NotEmpty(t, artifact.Version)
	assert.Len(t, artifact.Coefficients, len(artifact.FeatureNames))
	assert.Len(t, artifact.FeatureMeans, len(artifact.FeatureNames))
	assert.Len(t, artifact.FeatureStdDev, len(artifact.FeatureNames))

	assert.Equal(t, 100, artifact.TotalSamples)
	assert.Equal(t, artifact.TotalSamples, artifact.TrainSamples+artifact.TestSamples)
	assert.InDelta(t, 0.5, artifact.PositiveRate, 0.01)

	assert.GreaterOrEqual(t, artifact.AUC, 0.0)
	assert.LessOrEqual(t, artifact.AUC, 1.0)
	// Dataset separável deve produzir um classificador muito acima do acaso
	assert.Greater(t, artifact.AUC, 0.9)

	require.NotEmpty(t, artifact.TopFeatures)
	assert.LessOrEqual(t, len(artifact.TopFeatures), 10)
}

func TestTrainFromCustomersDeterministico(t *testing.T) {
	service := &Service{cfg: testConfig()}
	customers := separableCustomers(60)

	first, err := service.TrainFromCustomers(context.Background(), customers)
	require.NoError(t, err)

	second, err := service.TrainFromCustomers(context.Background(), customers)
	require.NoError(t, err)

	// Mesma semente e mesmo dataset: só a versão e o timestamp mudam
	assert.Equal(t, first.FeatureNames, second.FeatureNames)
	assert.Equal(t, first.Coefficients, second.Coefficients)
	assert.Equal(t, first.Intercept, second.Intercept)
	assert.Equal(t, first.AUC, second.AUC)
	assert.Equal(t, first.TopFeatures, second.TopFeatures)
	assert.NotEqual(t, first.Version, second.Version)
}

func TestBuildDesignMatrixOrdenacaoDeterministica(t *testing.T) {
	customers := separableCustomers(10)

	matrix := buildDesignMatrix(customers)

	require.NotEmpty(t, matrix.names)

	// Colunas numéricas primeiro, na ordem fixa
	assert.Equal(t, "tenure", matrix.names[0])
	assert.Equal(t, "monthly_charges", matrix.names[1])
	assert.Equal(t, "total_charges", matrix.names[2])

	// One-hot descarta a primeira categoria ordenada: contract tem
	// {Month-to-month, Two year}, então só "Two year" vira coluna
	assert.Contains(t, matrix.names, "contract_Two year")
	assert.NotContains(t, matrix.names, "contract_Month-to-month")

	// Gender tem uma única categoria e não gera coluna
	for _, name := range matrix.names {
		assert.NotContains(t, name, "gender_")
	}

	for _, row := range matrix.rows {
		assert.Len(t, row, len(matrix.names))
	}
}

func TestStratifiedSplitPreservaProporcao(t *testing.T) {
	labels := make([]float64, 100)
	for i := 30; i < 100; i++ {
		labels[i] = 1
	}

	trainIdx, testIdx := stratifiedSplit(labels, 0.2, 42)

	assert.Len(t, testIdx, 20)
	assert.Len(t, trainIdx, 80)

	testPositives := 0
	for _, idx := range testIdx {
		if labels[idx] == 1 {
			testPositives++
		}
	}
	assert.Equal(t, 14, testPositives)

	// Nenhum índice aparece nas duas partições
	seen := make(map[int]bool)
	for _, idx := range trainIdx {
		seen[idx] = true
	}
	for _, idx := range testIdx {
		assert.False(t, seen[idx])
	}
}
