package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnparsableNumber = errors.New("valor numérico não parseável")

// ParseFlexibleNumber converte valores numéricos vindos de fontes pouco
// confiáveis: aceita strings com sufixo de porcentagem ("12.5%"), separador
// de milhar ("1,234.56") e espaços ao redor. Valores não finitos ou vazios
// retornam ErrUnparsableNumber para serem contados como anomalia pelo
// chamador, nunca convertidos silenciosamente em zero.
func ParseFlexibleNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.Wrap(ErrUnparsableNumber, "valor vazio")
	}

	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	// Remove separador de milhar apenas quando há parte decimal com ponto,
	// evitando tratar "1,5" (vírgula decimal) como "15"
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUnparsableNumber, "%q", raw)
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.Wrapf(ErrUnparsableNumber, "%q não é finito", raw)
	}

	return f, nil
}
