package utils

import "math/rand"

// RandFloat64 返回 [0,1) 内的随机数，rng 为 nil 时使用全局随机源
func RandFloat64(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}

// RandIntn 返回 [0,n) 内的随机整数，rng 为 nil 时使用全局随机源
func RandIntn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	return rand.Intn(n)
}
