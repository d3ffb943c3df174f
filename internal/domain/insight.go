package domain

import (
	"time"
)

// InsightPayload é a estrutura única enviada ao colaborador externo de
// geração de insights. Entradas opcionais ausentes viram coleções vazias;
// o payload nunca carrega ponteiros nulos obrigatórios.
type InsightPayload struct {
	OverallChurnRate      float64                          `json:"overall_churn_rate"`
	TotalCustomers        int                              `json:"total_customers"`
	ChurnedCustomers      int                              `json:"churned_customers"`
	AverageTenure         float64                          `json:"average_tenure"`
	AverageMonthlyCharges float64                          `json:"average_monthly_charges"`
	ChurnByContract       []SegmentBreakdownItem           `json:"churn_by_contract"`
	ChurnByPayment        []SegmentBreakdownItem           `json:"churn_by_payment"`
	TenureDistribution    []RangeBreakdownItem             `json:"tenure_distribution"`
	MonthlyDistribution   []RangeBreakdownItem             `json:"monthly_charges_distribution"`
	FeatureImpacts        []FeatureImpactRecord            `json:"feature_impacts"`
	ModelInsights         *ModelSummary                    `json:"model_insights,omitempty"`
}

// InsightResult é a forma consumida da resposta do colaborador de IA
type InsightResult struct {
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
	KeyFindings     []string `json:"key_findings"`
	Metadata        struct {
		GeneratedAt time.Time `json:"generated_at"`
		ModelUsed   string    `json:"model_used"`
	} `json:"metadata"`
}
