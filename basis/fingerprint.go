package basis

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a hex BLAKE3 digest of what determines the values
// of a basis: its method, resolution, radial counts and Bessel zeros. Two
// bases with equal fingerprints produce the same coefficients up to
// rounding.
func Fingerprint(b Basis) string {
	h := blake3.New()

	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	_, _ = h.Write([]byte(b.Method()))
	putInt(b.Resolution())

	kMax := b.KMax()
	putInt(len(kMax))
	for _, k := range kMax {
		putInt(k)
	}

	if z, ok := b.(interface{ Zeros(ell int) []float64 }); ok {
		for ell := range kMax {
			for _, v := range z.Zeros(ell) {
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
				_, _ = h.Write(buf[:])
			}
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
