package analysis

import (
	"math"
	"math/cmplx"
)

// FFT transforms data, zero-padded to the next power of two.
func FFT(data []float64) []complex128 {
	n := nextPow2(len(data))
	padded := make([]float64, n)
	copy(padded, data)
	return fft(padded)
}

func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns |X_k| for the non-negative frequency bins of the
// padded transform.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantPeriod finds the strongest non-zero frequency in samples taken dt
// apart and returns its period. The peak bin is refined by parabolic
// interpolation. It returns 0 when no peak exists.
func DominantPeriod(samples []float64, dt float64) float64 {
	if len(samples) < 4 || dt <= 0 {
		return 0
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	centred := make([]float64, len(samples))
	for i, v := range samples {
		centred[i] = v - mean
	}

	ps := PowerSpectrum(centred)
	best := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[best] || best == 0 {
			best = k
		}
	}
	if ps[best] == 0 {
		return 0
	}

	peak := float64(best)
	if best > 0 && best < len(ps)-1 {
		a, b, c := ps[best-1], ps[best], ps[best+1]
		if den := a - 2*b + c; den != 0 {
			peak += 0.5 * (a - c) / den
		}
	}

	n := float64(nextPow2(len(samples)))
	return n * dt / peak
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
