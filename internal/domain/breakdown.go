package domain

// SegmentBreakdownItem é um item de breakdown por dimensão categórica.
// Invariante: os counts de um breakdown somam o tamanho do conjunto de
// entrada e os percentuais somam 100 dentro da tolerância de arredondamento.
type SegmentBreakdownItem struct {
	Key        string  `json:"key"`
	Count      int     `json:"n"`
	Percentage float64 `json:"pct"`
	ChurnRate  float64 `json:"churn_rate"`
}

// RangeBreakdownItem é um item de breakdown por faixa de um campo numérico
type RangeBreakdownItem struct {
	Range      string  `json:"range"`
	Count      int     `json:"n"`
	Percentage float64 `json:"pct"`
}

// RangeBreakdown carrega os bins completos na ordem fixa das faixas mais a
// contagem de valores não parseáveis excluídos do denominador
type RangeBreakdown struct {
	Field    string               `json:"field"`
	Bins     []RangeBreakdownItem `json:"bins"`
	Excluded int                  `json:"excluded,omitempty"`
}

// BinConfig define as bordas de um conjunto de faixas de um campo numérico.
// As bordas superiores são inclusivas; o último bin é aberto (N+).
type BinConfig struct {
	Field  string
	Edges  []float64 // bordas superiores de cada bin fechado
	Labels []string  // len(Edges)+1 rótulos, o último para o bin aberto
}

// FeatureImpactRecord compara a taxa de churn com e sem um add-on binário.
// ChurnReduction = taxa quando ausente - taxa quando presente: valor positivo
// indica que a presença do add-on está associada a menos churn.
type FeatureImpactRecord struct {
	Feature        string  `json:"feature"`
	PresentRate    float64 `json:"yes_churn_rate"`
	AbsentRate     float64 `json:"no_churn_rate"`
	PresentCount   int     `json:"yes_customers"`
	AbsentCount    int     `json:"no_customers"`
	ChurnReduction float64 `json:"churn_reduction"`
}

// FeatureImpactSummary ordena os impactos e destaca os extremos de retenção
type FeatureImpactSummary struct {
	Best    *FeatureImpactRecord  `json:"best_feature_for_retention,omitempty"`
	Worst   *FeatureImpactRecord  `json:"worst_feature_for_retention,omitempty"`
	Impacts []FeatureImpactRecord `json:"feature_impact_summary"`
}
