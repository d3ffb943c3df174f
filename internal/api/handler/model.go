package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

func GetBaselineModel(service serving.ModelServer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("model: fetching baseline model summary")

		response, err := service.GetModel(r.Context())
		if err != nil {
			logger.WithError(err).Warn("model: no baseline model available")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("model: failed to encode response")
		}
	})
}

func RetrainBaselineModel(service serving.ModelServer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("model: retrain requested")

		artifact, err := service.RetrainModel(r.Context())
		if err != nil {
			logger.WithError(err).Error("model: retrain failed")
			writeDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"version": artifact.Version,
			"auc":     artifact.AUC,
		}).Info("model: retrain completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(artifact.Summary()); err != nil {
			logger.WithError(err).Error("model: failed to encode response")
		}
	})
}
