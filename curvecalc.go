// seehuhn.de/go/colorpipe - translate display color state to hardware color pipelines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorpipe

import "math"

// CurveCalculator computes distributed curve points for a transfer
// function descriptor. The stage builders hand it a descriptor whose Type
// and TF are already decided, plus an optional gamma buffer with the
// caller's samples.
//
// Both methods fill the per-channel point tables of tf and report whether
// the computation succeeded. A false return makes the enclosing stage
// build fail with [ErrAllocation].
type CurveCalculator interface {
	// CalculateRegamma computes output regamma points for tf, composing
	// the user ramp in gamma (if mapUserRamp) with the analytic base
	// curve. canROM hints that the hardware could use a ROM curve for
	// predefined descriptors.
	CalculateRegamma(tf *TransferFunc, gamma *Gamma, mapUserRamp, canROM bool) bool

	// CalculateDegamma computes linearizing curve points for tf. With a
	// custom gamma buffer the user samples define the curve directly;
	// this is also how shaper curves are computed, since there is no
	// separate shaper entry point.
	CalculateDegamma(tf *TransferFunc, gamma *Gamma, mapUserRamp bool) bool
}

// StdCurveCalculator is the built-in [CurveCalculator]. It evaluates the
// predefined transfer functions analytically over an evenly spaced ramp of
// [TransferFuncPoints] points.
type StdCurveCalculator struct{}

// CalculateRegamma implements [CurveCalculator].
func (StdCurveCalculator) CalculateRegamma(tf *TransferFunc, gamma *Gamma, mapUserRamp, canROM bool) bool {
	if tf == nil {
		return false
	}
	_ = canROM // ROM curves bypass point programming at a lower level

	fill(tf, func(x float64) (float64, float64, float64) {
		y := encodeTF(tf.TF, x)
		if gamma != nil && mapUserRamp {
			return gamma.sample(y)
		}
		return y, y, y
	})
	return true
}

// CalculateDegamma implements [CurveCalculator].
func (StdCurveCalculator) CalculateDegamma(tf *TransferFunc, gamma *Gamma, mapUserRamp bool) bool {
	if tf == nil {
		return false
	}

	fill(tf, func(x float64) (float64, float64, float64) {
		if gamma != nil && mapUserRamp {
			// custom curve: the user samples are the curve
			return gamma.sample(x)
		}
		y := decodeTF(tf.TF, x)
		return y, y, y
	})
	return true
}

func fill(tf *TransferFunc, eval func(x float64) (r, g, b float64)) {
	if len(tf.Red) != TransferFuncPoints {
		tf.Red = make([]Fixed, TransferFuncPoints)
		tf.Green = make([]Fixed, TransferFuncPoints)
		tf.Blue = make([]Fixed, TransferFuncPoints)
	}
	for i := 0; i < TransferFuncPoints; i++ {
		x := float64(i) / (TransferFuncPoints - 1)
		r, g, b := eval(x)
		tf.Red[i] = FixedFromFloat(r)
		tf.Green[i] = FixedFromFloat(g)
		tf.Blue[i] = FixedFromFloat(b)
	}
}

// sample evaluates the user ramp at x in [0, 1] per channel, with linear
// interpolation between samples. Legacy buffers hold de-normalized
// integer codes and are scaled back to [0, 1] here.
func (g *Gamma) sample(x float64) (float64, float64, float64) {
	n := g.NumEntries
	if n == 0 {
		return x, x, x
	}
	norm := 1.0
	if g.Type == GammaRGB256 {
		norm = MaxLUTValue
	}
	if n == 1 {
		return g.Red[0].Float() / norm,
			g.Green[0].Float() / norm,
			g.Blue[0].Float() / norm
	}

	pos := x * float64(n-1)
	idx := int(pos)
	if idx < 0 {
		idx = 0
	}
	if idx > n-2 {
		idx = n - 2
	}
	frac := pos - float64(idx)

	lerp := func(tab []Fixed) float64 {
		a := tab[idx].Float() / norm
		b := tab[idx+1].Float() / norm
		return a + (b-a)*frac
	}
	return lerp(g.Red), lerp(g.Green), lerp(g.Blue)
}

// ST.2084 (PQ) constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// HLG constants (ITU-R BT.2100).
const (
	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

// encodeTF applies the OETF of the given curve to a linear value in
// [0, 1], i.e. it converts linear light to the non-linear encoding.
func encodeTF(tf PredefinedTF, x float64) float64 {
	switch tf {
	case TFSRGB:
		if x <= 0.0031308 {
			return 12.92 * x
		}
		return 1.055*math.Pow(x, 1/2.4) - 0.055
	case TFBT709:
		if x < 0.018 {
			return 4.5 * x
		}
		return 1.099*math.Pow(x, 0.45) - 0.099
	case TFPQ:
		xp := math.Pow(x, pqM1)
		return math.Pow((pqC1+pqC2*xp)/(1+pqC3*xp), pqM2)
	case TFHLG:
		if x <= 1.0/12 {
			return math.Sqrt(3 * x)
		}
		return hlgA*math.Log(12*x-hlgB) + hlgC
	case TFGamma22:
		return gammaEncode(x, 2.2)
	case TFGamma24:
		return gammaEncode(x, 2.4)
	case TFGamma26:
		return gammaEncode(x, 2.6)
	default:
		// linear, unity
		return x
	}
}

// decodeTF applies the EOTF of the given curve to an encoded value in
// [0, 1], i.e. it converts the non-linear encoding back to linear light.
func decodeTF(tf PredefinedTF, x float64) float64 {
	switch tf {
	case TFSRGB:
		if x <= 0.04045 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	case TFBT709:
		if x < 0.081 {
			return x / 4.5
		}
		return math.Pow((x+0.099)/1.099, 1/0.45)
	case TFPQ:
		xp := math.Pow(x, 1/pqM2)
		num := xp - pqC1
		if num < 0 {
			num = 0
		}
		return math.Pow(num/(pqC2-pqC3*xp), 1/pqM1)
	case TFHLG:
		if x <= 0.5 {
			return x * x / 3
		}
		return (math.Exp((x-hlgC)/hlgA) + hlgB) / 12
	case TFGamma22:
		return math.Pow(x, 2.2)
	case TFGamma24:
		return math.Pow(x, 2.4)
	case TFGamma26:
		return math.Pow(x, 2.6)
	default:
		return x
	}
}

func gammaEncode(x, g float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, 1/g)
}
