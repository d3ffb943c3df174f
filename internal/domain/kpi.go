package domain

// KpiSnapshot agrega os indicadores globais de churn de um conjunto de
// clientes. É recalculado a cada requisição e nunca persistido pelo core.
type KpiSnapshot struct {
	TotalCustomers    int     `json:"total_customers"`
	ChurnedCustomers  int     `json:"churned_customers"`
	ChurnRate         float64 `json:"churn_rate"`
	AvgTenure         float64 `json:"avg_tenure"`
	AvgMonthlyCharges float64 `json:"avg_monthly_charges"`
	AvgTotalCharges   float64 `json:"avg_total_charges"`
}
