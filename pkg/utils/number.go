package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace arredonda médias exibidas para uma casa decimal
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// RoundWithFourDecimalPlace arredonda taxas para quatro casas decimais
func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10000) / 10000
}

// SafeDiv divide com proteção contra divisor zero ou resultado não finito
func SafeDiv(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}

	result := numerator / denominator
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0
	}

	return result
}
