package domain

// Valores possíveis do rótulo de churn e das features binárias de serviço
const (
	ChurnYes = "Yes"
	ChurnNo  = "No"

	FeatureYes = "Yes"
	FeatureNo  = "No"

	// Sentinelas de "não se aplica" para add-ons quando o serviço pai está ausente
	NoInternetService = "No internet service"
	NoPhoneService    = "No phone service"

	// Bucket para valores categóricos ausentes ou não reconhecidos
	UnknownCategory = "Unknown"
)

// Dimensões categóricas suportadas pelos breakdowns por segmento
const (
	DimensionGender        = "gender"
	DimensionContract      = "contract"
	DimensionPaymentMethod = "payment_method"
)

// Campos numéricos suportados pelos breakdowns por faixa
const (
	FieldTenure         = "tenure"
	FieldMonthlyCharges = "monthly_charges"
)

// Features binárias de serviço analisáveis pelo impacto de churn
var ServiceFeatures = []string{
	"OnlineSecurity",
	"OnlineBackup",
	"DeviceProtection",
	"TechSupport",
	"StreamingTV",
	"StreamingMovies",
	"MultipleLines",
	"PaperlessBilling",
}

// Customer representa um registro de cliente validado no gateway de dados.
// O dono do registro é o datastore externo; o core lê apenas snapshots.
type Customer struct {
	ID             string  `json:"customer_id"`
	Gender         string  `json:"gender"`
	Contract       string  `json:"contract"`
	PaymentMethod  string  `json:"payment_method"`
	Tenure         float64 `json:"tenure"`
	MonthlyCharges float64 `json:"monthly_charges"`
	TotalCharges   float64 `json:"total_charges"`
	Churned        bool    `json:"churned"`

	// Add-ons de serviço: "Yes", "No" ou sentinela de não-aplicável
	Features map[string]string `json:"features"`
}

// FeatureValue retorna o valor de um add-on, tratando mapa nulo como Unknown
func (c *Customer) FeatureValue(name string) string {
	if c.Features == nil {
		return UnknownCategory
	}
	if v, ok := c.Features[name]; ok && v != "" {
		return v
	}
	return UnknownCategory
}

// NotApplicable indica se o valor é uma sentinela de "não se aplica"
func NotApplicable(value string) bool {
	return value == NoInternetService || value == NoPhoneService
}

// DimensionValue retorna o valor categórico do cliente para uma dimensão de
// segmento; dimensões desconhecidas caem no bucket Unknown em vez de sumir
func (c *Customer) DimensionValue(dimension string) string {
	var v string
	switch dimension {
	case DimensionGender:
		v = c.Gender
	case DimensionContract:
		v = c.Contract
	case DimensionPaymentMethod:
		v = c.PaymentMethod
	default:
		v = c.FeatureValue(dimension)
		return v
	}

	if v == "" {
		return UnknownCategory
	}
	return v
}

// CustomerFilter define o filtro de igualdade aceito pelo gateway de dados
type CustomerFilter struct {
	Churned       *bool
	Contract      string
	PaymentMethod string
	Feature       string // nome do add-on
	FeatureValue  string // valor exigido para o add-on
}

// Page define a paginação por offset/limit do gateway de dados
type Page struct {
	Offset int
	Limit  int
}

// RowAnomaly descreve uma linha malformada excluída de um lote; a linha é
// reportada, nunca abortando a computação do lote inteiro
type RowAnomaly struct {
	CustomerID string `json:"customer_id,omitempty"`
	Field      string `json:"field"`
	Reason     string `json:"reason"`
}

// CustomerBatch é o resultado validado de uma busca no datastore
type CustomerBatch struct {
	Customers []*Customer  `json:"customers"`
	Total     int          `json:"total"`
	Anomalies []RowAnomaly `json:"anomalies,omitempty"`
}
