package util

import (
	"math"
)

// RoundFloat round val ke precision digit di belakang koma. inf/NaN dikembalikan apa adanya.
func RoundFloat(val float64, precision uint) float64 {
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return val
	}
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ReverseG reverse slice in place.
func ReverseG[T any](arr []T) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}
