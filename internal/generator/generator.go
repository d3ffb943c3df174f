// Package generator produz clientes sintéticos para seed e demonstração
package generator

import (
	"fmt"
	"math/rand"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/pkg/utils"
)

var (
	genders        = []string{"Female", "Male"}
	contracts      = []string{"Month-to-month", "One year", "Two year"}
	paymentMethods = []string{"Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"}
	internetTypes  = []string{"DSL", "Fiber optic", "No"}

	// Add-ons que dependem de internet; os demais dependem de linha telefônica
	internetAddons = map[string]bool{
		"OnlineSecurity":   true,
		"OnlineBackup":     true,
		"DeviceProtection": true,
		"TechSupport":      true,
		"StreamingTV":      true,
		"StreamingMovies":  true,
	}
)

// Generator produz clientes sintéticos reprodutíveis a partir de uma semente
type Generator interface {
	Generate(n int) []*domain.Customer
}

type randomGenerator struct {
	rng *rand.Rand
}

// New cria um gerador determinístico: a mesma semente produz o mesmo lote
func New(seed int64) Generator {
	return &randomGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate produz n clientes com correlações plausíveis: contrato mensal,
// pouco tempo de casa e mensalidade alta elevam a chance de churn, então o
// dataset gerado é aprendível pelo modelo baseline
func (g *randomGenerator) Generate(n int) []*domain.Customer {
	customers := make([]*domain.Customer, 0, n)

	for i := 0; i < n; i++ {
		contract := contracts[g.rng.Intn(len(contracts))]
		internet := internetTypes[g.rng.Intn(len(internetTypes))]
		hasPhone := g.rng.Float64() < 0.9

		tenure := float64(1 + g.rng.Intn(72))
		monthly := 20 + g.rng.Float64()*100
		if internet == "No" {
			monthly = 20 + g.rng.Float64()*20
		}

		features := make(map[string]string, len(domain.ServiceFeatures))
		for _, feature := range domain.ServiceFeatures {
			switch {
			case internetAddons[feature] && internet == "No":
				features[feature] = domain.NoInternetService
			case feature == "MultipleLines" && !hasPhone:
				features[feature] = domain.NoPhoneService
			case g.rng.Float64() < 0.45:
				features[feature] = domain.FeatureYes
			default:
				features[feature] = domain.FeatureNo
			}
		}

		customers = append(customers, &domain.Customer{
			ID:             fmt.Sprintf("%04d-%s", 1000+i, randomToken(g.rng)),
			Gender:         genders[g.rng.Intn(len(genders))],
			Contract:       contract,
			PaymentMethod:  paymentMethods[g.rng.Intn(len(paymentMethods))],
			Tenure:         tenure,
			MonthlyCharges: utils.RoundWithTwoDecimalPlace(monthly),
			TotalCharges:   utils.RoundWithTwoDecimalPlace(tenure * monthly),
			Churned:        g.rng.Float64() < churnProbability(contract, tenure, monthly),
			Features:       features,
		})
	}

	return customers
}

// churnProbability modela a propensão de churn do cliente sintético
func churnProbability(contract string, tenure, monthly float64) float64 {
	p := 0.12

	switch contract {
	case "Month-to-month":
		p += 0.25
	case "One year":
		p += 0.06
	}

	if tenure <= 12 {
		p += 0.18
	} else if tenure >= 48 {
		p -= 0.08
	}

	if monthly >= 80 {
		p += 0.10
	}

	if p < 0.02 {
		p = 0.02
	}
	if p > 0.85 {
		p = 0.85
	}

	return p
}

func randomToken(rng *rand.Rand) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	token := make([]byte, 5)
	for i := range token {
		token[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(token)
}
