package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

func TestGenerateDeterministico(t *testing.T) {
	first := New(42).Generate(50)
	second := New(42).Generate(50)

	assert.Equal(t, first, second)

	other := New(7).Generate(50)
	assert.NotEqual(t, first, other)
}

func TestGenerateClientesValidos(t *testing.T) {
	customers := New(42).Generate(200)

	require.Len(t, customers, 200)

	ids := make(map[string]bool)
	for _, c := range customers {
		assert.NotEmpty(t, c.ID)
		assert.False(t, ids[c.ID], "id duplicado: %s", c.ID)
		ids[c.ID] = true

		assert.Contains(t, contracts, c.Contract)
		assert.Contains(t, paymentMethods, c.PaymentMethod)
		assert.GreaterOrEqual(t, c.Tenure, 1.0)
		assert.LessOrEqual(t, c.Tenure, 72.0)
		assert.Greater(t, c.MonthlyCharges, 0.0)
		assert.GreaterOrEqual(t, c.TotalCharges, c.MonthlyCharges)

		require.Len(t, c.Features, len(domain.ServiceFeatures))
		for _, feature := range domain.ServiceFeatures {
			value := c.Features[feature]
			assert.Contains(t, []string{
				domain.FeatureYes,
				domain.FeatureNo,
				domain.NoInternetService,
				domain.NoPhoneService,
			}, value)
		}
	}
}

func TestGenerateContemAsDuasClasses(t *testing.T) {
	customers := New(42).Generate(300)

	churned := 0
	for _, c := range customers {
		if c.Churned {
			churned++
		}
	}

	assert.Greater(t, churned, 0)
	assert.Less(t, churned, len(customers))
}
