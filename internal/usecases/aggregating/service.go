package aggregating

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/vfg2006/churn-analysis-api/infrastructure/repository"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
	"github.com/vfg2006/churn-analysis-api/pkg/utils"
)

// Service implementa a interface Aggregator sobre o repositório de clientes
type Service struct {
	cfg                *config.Config
	customerRepository repository.CustomerRepository
}

// NewService cria uma nova instância do serviço de agregação
func NewService(
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
) Aggregator {
	return &Service{
		cfg:                cfg,
		customerRepository: customerRepo,
	}
}

// ComputeKPIs calcula os indicadores globais do conjunto filtrado
func (s *Service) ComputeKPIs(ctx context.Context, filter domain.CustomerFilter) (*domain.KpiSnapshot, error) {
	batch, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	return KPIsFromCustomers(batch.Customers), nil
}

// SegmentBreakdown agrupa o conjunto filtrado por uma dimensão categórica
func (s *Service) SegmentBreakdown(ctx context.Context, dimension string, filter domain.CustomerFilter) ([]domain.SegmentBreakdownItem, error) {
	if !IsKnownDimension(dimension) {
		return nil, ErrUnknownDimension
	}

	batch, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	return SegmentBreakdownFromCustomers(batch.Customers, dimension), nil
}

// RangeBreakdown distribui o conjunto filtrado nas faixas de um campo numérico
func (s *Service) RangeBreakdown(ctx context.Context, field string, filter domain.CustomerFilter) (*domain.RangeBreakdown, error) {
	bins, err := s.binConfig(field)
	if err != nil {
		return nil, err
	}

	batch, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	return RangeBreakdownFromCustomers(batch.Customers, bins), nil
}

// FeatureImpact compara a taxa de churn com e sem cada add-on de serviço
func (s *Service) FeatureImpact(ctx context.Context, filter domain.CustomerFilter) (*domain.FeatureImpactSummary, error) {
	batch, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	return FeatureImpactFromCustomers(batch.Customers), nil
}

func (s *Service) fetch(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerBatch, error) {
	batch, err := s.customerRepository.FetchCustomers(ctx, filter, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes para agregação: %w", err)
	}

	if len(batch.Anomalies) > 0 {
		log.ForContext(ctx).WithField("anomalies", len(batch.Anomalies)).
			Warn("aggregation: malformed rows excluded from batch")
	}

	return batch, nil
}

func (s *Service) binConfig(field string) (domain.BinConfig, error) {
	switch field {
	case domain.FieldTenure:
		return domain.BinConfig{
			Field:  domain.FieldTenure,
			Edges:  s.cfg.Bins.TenureEdges,
			Labels: s.cfg.Bins.TenureLabels,
		}, nil
	case domain.FieldMonthlyCharges:
		return domain.BinConfig{
			Field:  domain.FieldMonthlyCharges,
			Edges:  s.cfg.Bins.MonthlyEdges,
			Labels: s.cfg.Bins.MonthlyLabels,
		}, nil
	}
	return domain.BinConfig{}, ErrUnknownField
}

// IsKnownDimension valida a dimensão contra o conjunto suportado: as três
// dimensões de perfil mais os add-ons de serviço
func IsKnownDimension(dimension string) bool {
	switch dimension {
	case domain.DimensionGender, domain.DimensionContract, domain.DimensionPaymentMethod:
		return true
	}
	return slices.Contains(domain.ServiceFeatures, dimension)
}

// KPIsFromCustomers calcula os indicadores globais de um conjunto já
// validado. Conjunto vazio produz um snapshot zerado, nunca erro.
func KPIsFromCustomers(customers []*domain.Customer) *domain.KpiSnapshot {
	snapshot := &domain.KpiSnapshot{
		TotalCustomers: len(customers),
	}

	if len(customers) == 0 {
		return snapshot
	}

	var sumTenure, sumMonthly, sumTotal float64
	for _, c := range customers {
		if c.Churned {
			snapshot.ChurnedCustomers++
		}
		sumTenure += c.Tenure
		sumMonthly += c.MonthlyCharges
		sumTotal += c.TotalCharges
	}

	total := float64(snapshot.TotalCustomers)
	snapshot.ChurnRate = utils.RoundWithFourDecimalPlace(utils.SafeDiv(float64(snapshot.ChurnedCustomers), total))
	snapshot.AvgTenure = utils.RoundWithOneDecimalPlace(utils.SafeDiv(sumTenure, total))
	snapshot.AvgMonthlyCharges = utils.RoundWithTwoDecimalPlace(utils.SafeDiv(sumMonthly, total))
	snapshot.AvgTotalCharges = utils.RoundWithTwoDecimalPlace(utils.SafeDiv(sumTotal, total))

	return snapshot
}

// SegmentBreakdownFromCustomers agrupa por dimensão categórica e ordena por
// taxa de churn decrescente; empates são resolvidos pelo tamanho do grupo e,
// por fim, pela chave, para manter a saída determinística
func SegmentBreakdownFromCustomers(customers []*domain.Customer, dimension string) []domain.SegmentBreakdownItem {
	type bucket struct {
		n       int
		churned int
	}

	buckets := make(map[string]*bucket)
	for _, c := range customers {
		key := c.DimensionValue(dimension)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.n++
		if c.Churned {
			b.churned++
		}
	}

	total := float64(len(customers))
	items := make([]domain.SegmentBreakdownItem, 0, len(buckets))
	for key, b := range buckets {
		items = append(items, domain.SegmentBreakdownItem{
			Key:        key,
			Count:      b.n,
			Percentage: utils.RoundWithTwoDecimalPlace(utils.SafeDiv(float64(b.n)*100, total)),
			ChurnRate:  utils.RoundWithFourDecimalPlace(utils.SafeDiv(float64(b.churned), float64(b.n))),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ChurnRate != items[j].ChurnRate {
			return items[i].ChurnRate > items[j].ChurnRate
		}
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Key < items[j].Key
	})

	return items
}

// RangeBreakdownFromCustomers distribui os valores do campo nas faixas
// configuradas. Todas as faixas aparecem na saída, na ordem configurada,
// mesmo quando vazias; o limite superior de cada faixa é inclusivo e valores
// negativos são excluídos do denominador e contados em Excluded.
func RangeBreakdownFromCustomers(customers []*domain.Customer, cfg domain.BinConfig) *domain.RangeBreakdown {
	counts := make([]int, len(cfg.Labels))
	excluded := 0
	included := 0

	for _, c := range customers {
		var value float64
		switch cfg.Field {
		case domain.FieldTenure:
			value = c.Tenure
		case domain.FieldMonthlyCharges:
			value = c.MonthlyCharges
		}

		if value < 0 {
			excluded++
			continue
		}

		counts[binIndex(value, cfg.Edges)]++
		included++
	}

	breakdown := &domain.RangeBreakdown{
		Field:    cfg.Field,
		Bins:     make([]domain.RangeBreakdownItem, len(cfg.Labels)),
		Excluded: excluded,
	}

	for i, label := range cfg.Labels {
		breakdown.Bins[i] = domain.RangeBreakdownItem{
			Range:      label,
			Count:      counts[i],
			Percentage: utils.RoundWithTwoDecimalPlace(utils.SafeDiv(float64(counts[i])*100, float64(included))),
		}
	}

	return breakdown
}

func binIndex(value float64, edges []float64) int {
	for i, edge := range edges {
		if value <= edge {
			return i
		}
	}
	return len(edges)
}

// FeatureImpactFromCustomers calcula, para cada add-on na ordem fixa de
// ServiceFeatures, a taxa de churn entre quem tem e quem não tem o serviço.
// Clientes com valor não aplicável ou desconhecido ficam fora das duas
// parcelas daquele add-on.
func FeatureImpactFromCustomers(customers []*domain.Customer) *domain.FeatureImpactSummary {
	impacts := make([]domain.FeatureImpactRecord, 0, len(domain.ServiceFeatures))

	for _, feature := range domain.ServiceFeatures {
		var yesTotal, yesChurned, noTotal, noChurned int

		for _, c := range customers {
			switch c.FeatureValue(feature) {
			case domain.FeatureYes:
				yesTotal++
				if c.Churned {
					yesChurned++
				}
			case domain.FeatureNo:
				noTotal++
				if c.Churned {
					noChurned++
				}
			}
		}

		if yesTotal == 0 && noTotal == 0 {
			continue
		}

		presentRate := utils.RoundWithFourDecimalPlace(utils.SafeDiv(float64(yesChurned), float64(yesTotal)))
		absentRate := utils.RoundWithFourDecimalPlace(utils.SafeDiv(float64(noChurned), float64(noTotal)))

		impacts = append(impacts, domain.FeatureImpactRecord{
			Feature:        feature,
			PresentRate:    presentRate,
			AbsentRate:     absentRate,
			PresentCount:   yesTotal,
			AbsentCount:    noTotal,
			ChurnReduction: utils.RoundWithFourDecimalPlace(absentRate - presentRate),
		})
	}

	summary := &domain.FeatureImpactSummary{
		Impacts: RankFeatureImpacts(impacts),
	}

	if len(summary.Impacts) > 0 {
		best := summary.Impacts[0]
		worst := summary.Impacts[len(summary.Impacts)-1]
		summary.Best = &best
		summary.Worst = &worst
	}

	return summary
}

// RankFeatureImpacts ordena por redução de churn decrescente; empates são
// resolvidos pela quantidade combinada de amostras e, por fim, pelo nome
func RankFeatureImpacts(impacts []domain.FeatureImpactRecord) []domain.FeatureImpactRecord {
	ranked := make([]domain.FeatureImpactRecord, len(impacts))
	copy(ranked, impacts)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ChurnReduction != ranked[j].ChurnReduction {
			return ranked[i].ChurnReduction > ranked[j].ChurnReduction
		}
		si := ranked[i].PresentCount + ranked[i].AbsentCount
		sj := ranked[j].PresentCount + ranked[j].AbsentCount
		if si != sj {
			return si > sj
		}
		return ranked[i].Feature < ranked[j].Feature
	})

	return ranked
}
