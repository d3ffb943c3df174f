package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/churn-analysis-api/internal/scheduler"
	"github.com/vfg2006/churn-analysis-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeModelRetrain = "model-retrain"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron executáveis manualmente
type CronJobServices struct {
	ModelRetrainSyncService *scheduler.ModelRetrainSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeModelRetrain, CronJobTypeAll:
			if services.ModelRetrainSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retreino do modelo não disponível", nil)
				return
			}
			services.ModelRetrainSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: model-retrain, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"model-retrain": services.ModelRetrainSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
