package hek

import "math"

const maxQuantizeSteps = 32

// Quantize strips precision from a float stored by an extract hidden save:
// the value is rounded to three decimal digits, its low eight mantissa bits
// are cleared and negative zero becomes zero. The step is repeated until
// the value no longer changes, so Quantize(Quantize(v)) == Quantize(v).
func Quantize(v float32) float32 {
	q := quantizeStep(v)
	for range maxQuantizeSteps {
		next := quantizeStep(q)
		if math.Float32bits(next) == math.Float32bits(q) {
			break
		}
		q = next
	}
	return q
}

func quantizeStep(v float32) float32 {
	r := float32(math.Round(float64(v)*1000) / 1000)
	bits := math.Float32bits(r) &^ 0xFF
	if bits == 0x80000000 {
		bits = 0
	}
	return math.Float32frombits(bits)
}
