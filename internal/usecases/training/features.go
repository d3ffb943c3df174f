package training

import (
	"fmt"
	"sort"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

// featureColumn é uma coluna categórica do dataset com seu extrator
type featureColumn struct {
	name    string
	extract func(*domain.Customer) string
}

// Colunas numéricas na ordem em que entram na matriz de features
var numericColumns = []string{
	domain.FieldTenure,
	domain.FieldMonthlyCharges,
	"total_charges",
}

func categoricalColumns() []featureColumn {
	columns := []featureColumn{
		{domain.DimensionGender, func(c *domain.Customer) string { return c.DimensionValue(domain.DimensionGender) }},
		{domain.DimensionContract, func(c *domain.Customer) string { return c.DimensionValue(domain.DimensionContract) }},
		{domain.DimensionPaymentMethod, func(c *domain.Customer) string { return c.DimensionValue(domain.DimensionPaymentMethod) }},
	}

	for _, feature := range domain.ServiceFeatures {
		name := feature
		columns = append(columns, featureColumn{
			name:    name,
			extract: func(c *domain.Customer) string { return c.FeatureValue(name) },
		})
	}

	return columns
}

// designMatrix é o dataset codificado pronto para o treinamento
type designMatrix struct {
	names  []string
	rows   [][]float64
	labels []float64
}

// buildDesignMatrix codifica os clientes: colunas numéricas em ordem fixa
// seguidas do one-hot das colunas categóricas com categorias ordenadas
// alfabeticamente e a primeira categoria de cada coluna descartada como
// referência. A ordem das colunas é determinística para o mesmo dataset.
func buildDesignMatrix(customers []*domain.Customer) *designMatrix {
	matrix := &designMatrix{
		names: append([]string{}, numericColumns...),
	}

	columns := categoricalColumns()

	// Categorias observadas por coluna, ordenadas, sem a primeira
	encoded := make([][]string, len(columns))
	for i, column := range columns {
		seen := make(map[string]struct{})
		for _, c := range customers {
			seen[column.extract(c)] = struct{}{}
		}

		categories := make([]string, 0, len(seen))
		for category := range seen {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		if len(categories) > 1 {
			categories = categories[1:]
		} else {
			categories = nil
		}
		encoded[i] = categories

		for _, category := range categories {
			matrix.names = append(matrix.names, fmt.Sprintf("%s_%s", column.name, category))
		}
	}

	matrix.rows = make([][]float64, len(customers))
	matrix.labels = make([]float64, len(customers))

	for rowIdx, c := range customers {
		row := make([]float64, 0, len(matrix.names))
		row = append(row, c.Tenure, c.MonthlyCharges, c.TotalCharges)

		for i, column := range columns {
			value := column.extract(c)
			for _, category := range encoded[i] {
				if value == category {
					row = append(row, 1)
				} else {
					row = append(row, 0)
				}
			}
		}

		matrix.rows[rowIdx] = row
		if c.Churned {
			matrix.labels[rowIdx] = 1
		}
	}

	return matrix
}
