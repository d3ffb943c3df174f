package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

func GetChurnKPIs(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("kpis: computing churn KPI snapshot")

		filter, err := parseCustomerFilter(r)
		if err != nil {
			logger.WithError(err).Warn("kpis: invalid filter")
			writeDomainError(w, err)
			return
		}

		snapshot, err := service.ComputeKPIs(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("kpis: failed to compute snapshot")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("kpis: failed to encode response")
		}
	})
}

func GetSegmentBreakdown(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimension := httprouter.ParamsFromContext(r.Context()).ByName("dimension")
		logger.WithField("dimension", dimension).Info("segments: computing breakdown")

		filter, err := parseCustomerFilter(r)
		if err != nil {
			logger.WithError(err).Warn("segments: invalid filter")
			writeDomainError(w, err)
			return
		}

		items, err := service.SegmentBreakdown(r.Context(), dimension, filter)
		if err != nil {
			logger.WithFields(log.Fields{
				"dimension": dimension,
				"error":     err.Error(),
			}).Error("segments: failed to compute breakdown")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.WithError(err).Error("segments: failed to encode response")
		}
	})
}

func GetRangeBreakdown(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		field := httprouter.ParamsFromContext(r.Context()).ByName("field")
		logger.WithField("field", field).Info("bins: computing range breakdown")

		filter, err := parseCustomerFilter(r)
		if err != nil {
			logger.WithError(err).Warn("bins: invalid filter")
			writeDomainError(w, err)
			return
		}

		breakdown, err := service.RangeBreakdown(r.Context(), field, filter)
		if err != nil {
			logger.WithFields(log.Fields{
				"field": field,
				"error": err.Error(),
			}).Error("bins: failed to compute breakdown")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			logger.WithError(err).Error("bins: failed to encode response")
		}
	})
}

func GetFeatureImpact(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("features: computing churn impact per add-on")

		filter, err := parseCustomerFilter(r)
		if err != nil {
			logger.WithError(err).Warn("features: invalid filter")
			writeDomainError(w, err)
			return
		}

		summary, err := service.FeatureImpact(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("features: failed to compute impact")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("features: failed to encode response")
		}
	})
}
