package handler

import (
	"net/http"

	"github.com/vfg2006/churn-analysis-api/internal/api/handler/router"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/insighting"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Churn(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/churn/kpis",
			Method:  http.MethodGet,
			Handler: GetChurnKPIs(service),
		},
		{
			Path:    "/v1/churn/segments/:dimension",
			Method:  http.MethodGet,
			Handler: GetSegmentBreakdown(service),
		},
		{
			Path:    "/v1/churn/bins/:field",
			Method:  http.MethodGet,
			Handler: GetRangeBreakdown(service),
		},
		{
			Path:    "/v1/churn/features/impact",
			Method:  http.MethodGet,
			Handler: GetFeatureImpact(service),
		},
	}
}

func Model(service serving.ModelServer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/model/baseline",
			Method:  http.MethodGet,
			Handler: GetBaselineModel(service),
		},
		{
			Path:    "/v1/model/baseline/retrain",
			Method:  http.MethodPost,
			Handler: RetrainBaselineModel(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/payload",
			Method:  http.MethodGet,
			Handler: GetInsightPayload(service),
		},
		{
			Path:    "/v1/insights/generate",
			Method:  http.MethodPost,
			Handler: GenerateInsights(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
