package aggregating

import "github.com/pkg/errors"

var (
	// ErrUnknownDimension indica uma dimensão de segmento fora do conjunto suportado
	ErrUnknownDimension = errors.New("dimensão de segmento não suportada")

	// ErrUnknownField indica um campo numérico sem configuração de faixas
	ErrUnknownField = errors.New("campo numérico não suportado")
)
