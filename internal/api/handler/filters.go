package handler

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

var errInvalidFilter = errors.New("filtro de clientes inválido")

// parseCustomerFilter monta o filtro de igualdade a partir da query string.
// Filtros suportados: churned, contract, payment_method e feature=<add-on>
// com feature_value=Yes|No.
func parseCustomerFilter(r *http.Request) (domain.CustomerFilter, error) {
	filter := domain.CustomerFilter{}
	query := r.URL.Query()

	if raw := query.Get("churned"); raw != "" {
		churned, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: churned deve ser true ou false", errInvalidFilter)
		}
		filter.Churned = &churned
	}

	filter.Contract = query.Get("contract")
	filter.PaymentMethod = query.Get("payment_method")

	feature := query.Get("feature")
	featureValue := query.Get("feature_value")
	if feature != "" || featureValue != "" {
		if !slices.Contains(domain.ServiceFeatures, feature) {
			return filter, fmt.Errorf("%w: feature desconhecida %q", errInvalidFilter, feature)
		}
		if featureValue != domain.FeatureYes && featureValue != domain.FeatureNo {
			return filter, fmt.Errorf("%w: feature_value deve ser Yes ou No", errInvalidFilter)
		}
		filter.Feature = feature
		filter.FeatureValue = featureValue
	}

	return filter, nil
}
