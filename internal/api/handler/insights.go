package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/churn-analysis-api/internal/usecases/insighting"
	"github.com/vfg2006/churn-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

func GetInsightPayload(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: building aggregated payload")

		payload, err := service.BuildPayload(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: failed to build payload")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
		}
	})
}

func GenerateInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: generating AI insights")

		result, err := service.GenerateInsights(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: generation failed")
			// Falhas do colaborador externo viram erro de serviço externo;
			// os sentinelas de domínio mantêm o mapeamento próprio
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.WithField("model_used", result.Metadata.ModelUsed).
			Info("insights: generation completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
		}
	})
}
