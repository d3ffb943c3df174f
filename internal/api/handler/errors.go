package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/churn-analysis-api/infrastructure/repository"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/training"
	"github.com/vfg2006/churn-analysis-api/pkg/apiErrors"
)

// writeDomainError traduz os erros sentinela dos usecases para o envelope
// de erro da API
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidFilter):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, aggregating.ErrUnknownDimension), errors.Is(err, aggregating.ErrUnknownField):
		apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, err.Error(), nil)
	case errors.Is(err, repository.ErrStoreUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, err.Error(), nil)
	case errors.Is(err, serving.ErrModelNotTrained):
		apiErrors.WriteError(w, apiErrors.ErrModelNotTrained, err.Error(), nil)
	case errors.Is(err, serving.ErrRetrainInProgress):
		apiErrors.WriteError(w, apiErrors.ErrRetrainConflict, err.Error(), nil)
	case errors.Is(err, repository.ErrArtifactPersistence):
		apiErrors.WriteError(w, apiErrors.ErrModelPersistence, err.Error(), nil)
	case errors.Is(err, training.ErrInsufficientData), errors.Is(err, training.ErrSingleClass):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
