package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/churn-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	customersTable = "customers c"
)

// customerRow é a linha crua do datastore, antes da validação numérica.
// Os campos numéricos chegam como texto porque a carga original preserva
// o formato da fonte (separadores de milhar, sufixo de porcentagem, vazios).
type customerRow struct {
	ID             string
	Gender         sql.NullString
	Contract       sql.NullString
	PaymentMethod  sql.NullString
	Tenure         sql.NullString
	MonthlyCharges sql.NullString
	TotalCharges   sql.NullString
	Churn          sql.NullString
	FeaturesJSON   []byte
}

type CustomerRepository interface {
	FetchCustomers(ctx context.Context, filter domain.CustomerFilter, page *domain.Page) (*domain.CustomerBatch, error)
	CountCustomers(ctx context.Context, filter domain.CustomerFilter) (int, error)
}

type customerRepository struct {
	conn postgres.Conn
}

func NewCustomerRepository(conn postgres.Conn) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// FetchCustomers busca clientes aplicando o filtro de igualdade e a paginação.
// Linhas malformadas são excluídas do lote e reportadas como anomalias, sem
// abortar a leitura das demais.
func (r *customerRepository) FetchCustomers(ctx context.Context, filter domain.CustomerFilter, page *domain.Page) (*domain.CustomerBatch, error) {
	total, err := r.CountCustomers(ctx, filter)
	if err != nil {
		return nil, err
	}

	builder := squirrel.
		Select("c.customer_id, c.gender, c.contract, c.payment_method, c.tenure, c.monthly_charges, c.total_charges, c.churn, c.features").
		From(customersTable).
		OrderBy("c.customer_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyCustomerFilter(builder, filter)

	if page != nil {
		if page.Offset > 0 {
			builder = builder.Offset(uint64(page.Offset))
		}
		if page.Limit > 0 {
			builder = builder.Limit(uint64(page.Limit))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao executar a query: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	batch := &domain.CustomerBatch{
		Customers: make([]*domain.Customer, 0),
		Total:     total,
	}

	for rows.Next() {
		raw := &customerRow{}
		err := rows.Scan(
			&raw.ID,
			&raw.Gender,
			&raw.Contract,
			&raw.PaymentMethod,
			&raw.Tenure,
			&raw.MonthlyCharges,
			&raw.TotalCharges,
			&raw.Churn,
			&raw.FeaturesJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		customer, anomalies := validateCustomerRow(raw)
		batch.Anomalies = append(batch.Anomalies, anomalies...)
		if customer != nil {
			batch.Customers = append(batch.Customers, customer)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batch, nil
}

func (r *customerRepository) CountCustomers(ctx context.Context, filter domain.CustomerFilter) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyCustomerFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: erro ao contar clientes: %v", ErrStoreUnavailable, err)
	}

	return total, nil
}

func applyCustomerFilter(builder squirrel.SelectBuilder, filter domain.CustomerFilter) squirrel.SelectBuilder {
	if filter.Churned != nil {
		churn := domain.ChurnNo
		if *filter.Churned {
			churn = domain.ChurnYes
		}
		builder = builder.Where(squirrel.Eq{"c.churn": churn})
	}
	if filter.Contract != "" {
		builder = builder.Where(squirrel.Eq{"c.contract": filter.Contract})
	}
	if filter.PaymentMethod != "" {
		builder = builder.Where(squirrel.Eq{"c.payment_method": filter.PaymentMethod})
	}
	if filter.Feature != "" && filter.FeatureValue != "" {
		builder = builder.Where(squirrel.Eq{"c.features ->> '" + sanitizeFeatureKey(filter.Feature) + "'": filter.FeatureValue})
	}
	return builder
}

// sanitizeFeatureKey restringe a chave do JSONB a caracteres alfanuméricos,
// já que o nome da feature entra na expressão e não como placeholder
func sanitizeFeatureKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, key)
}

// validateCustomerRow converte a linha crua em um Customer validado.
// Uma linha com número não interpretável ou negativo vira anomalia e é
// descartada; campos categóricos vazios caem no bucket Unknown.
func validateCustomerRow(raw *customerRow) (*domain.Customer, []domain.RowAnomaly) {
	anomalies := make([]domain.RowAnomaly, 0)

	if raw.ID == "" {
		anomalies = append(anomalies, domain.RowAnomaly{
			Field:  "customer_id",
			Reason: "identificador do cliente ausente",
		})
		return nil, anomalies
	}

	customer := &domain.Customer{
		ID:            raw.ID,
		Gender:        categoricalOrUnknown(raw.Gender),
		Contract:      categoricalOrUnknown(raw.Contract),
		PaymentMethod: categoricalOrUnknown(raw.PaymentMethod),
	}

	numericFields := []struct {
		name string
		raw  sql.NullString
		dst  *float64
	}{
		{"tenure", raw.Tenure, &customer.Tenure},
		{"monthly_charges", raw.MonthlyCharges, &customer.MonthlyCharges},
		{"total_charges", raw.TotalCharges, &customer.TotalCharges},
	}

	for _, field := range numericFields {
		if !field.raw.Valid || strings.TrimSpace(field.raw.String) == "" {
			anomalies = append(anomalies, domain.RowAnomaly{
				CustomerID: raw.ID,
				Field:      field.name,
				Reason:     "valor numérico ausente",
			})
			return nil, anomalies
		}

		value, err := utils.ParseFlexibleNumber(field.raw.String)
		if err != nil {
			anomalies = append(anomalies, domain.RowAnomaly{
				CustomerID: raw.ID,
				Field:      field.name,
				Reason:     fmt.Sprintf("valor não interpretável: %q", field.raw.String),
			})
			return nil, anomalies
		}
		if value < 0 {
			anomalies = append(anomalies, domain.RowAnomaly{
				CustomerID: raw.ID,
				Field:      field.name,
				Reason:     fmt.Sprintf("valor negativo: %v", value),
			})
			return nil, anomalies
		}

		*field.dst = value
	}

	switch strings.TrimSpace(raw.Churn.String) {
	case domain.ChurnYes:
		customer.Churned = true
	case domain.ChurnNo:
		customer.Churned = false
	default:
		anomalies = append(anomalies, domain.RowAnomaly{
			CustomerID: raw.ID,
			Field:      "churn",
			Reason:     fmt.Sprintf("rótulo de churn não reconhecido: %q", raw.Churn.String),
		})
		return nil, anomalies
	}

	if raw.FeaturesJSON != nil {
		features := make(map[string]string)
		if err := json.Unmarshal(raw.FeaturesJSON, &features); err != nil {
			anomalies = append(anomalies, domain.RowAnomaly{
				CustomerID: raw.ID,
				Field:      "features",
				Reason:     "JSON de features inválido",
			})
			return nil, anomalies
		}
		customer.Features = features
	}

	return customer, anomalies
}

func categoricalOrUnknown(value sql.NullString) string {
	trimmed := strings.TrimSpace(value.String)
	if !value.Valid || trimmed == "" {
		return domain.UnknownCategory
	}
	return trimmed
}
