package serving

import "github.com/pkg/errors"

var (
	// ErrModelNotTrained indica que nenhum artefato foi treinado ou carregado
	ErrModelNotTrained = errors.New("nenhum modelo baseline treinado")

	// ErrRetrainInProgress indica retreino concorrente; a chamada é rejeitada,
	// nunca enfileirada
	ErrRetrainInProgress = errors.New("retreino já em andamento")
)
