package pixel

import "math"

// SharpenKernel returns the fixed 3x3 sharpening kernel. The returned slice
// is a fresh copy; callers may modify it.
func SharpenKernel() []float64 {
	return []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}
}

// EdgeEnhanceKernel returns the fixed 3x3 edge enhancement kernel.
func EdgeEnhanceKernel() []float64 {
	return []float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}
}

// GaussianKernel1D generates a normalized 1-D Gaussian kernel of length
// 2*radius+1 with sigma = radius/3. The weights sum to 1. A radius <= 0
// returns the identity kernel [1].
func GaussianKernel1D(radius int) []float64 {
	if radius <= 0 {
		return []float64{1}
	}
	sigma := float64(radius) / 3
	kern := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-0.5 * float64(k*k) / (sigma * sigma))
		kern[k+radius] = v
		sum += v
	}
	for i := range kern {
		kern[i] /= sum
	}
	return kern
}
