package evaluator

import "math"

func nan() float64 { return math.NaN() }

func mathPow(base, exp float64) float64 { return math.Pow(base, exp) }
