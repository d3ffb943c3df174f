package training

import "github.com/pkg/errors"

var (
	// ErrInsufficientData indica que o datastore não tem registros suficientes
	// para treinar um modelo
	ErrInsufficientData = errors.New("dados insuficientes para treinar o modelo")

	// ErrSingleClass indica que todos os registros têm o mesmo rótulo de churn
	ErrSingleClass = errors.New("o conjunto de treino precisa conter as duas classes de churn")
)
