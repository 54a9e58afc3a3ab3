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

// TransferFunction is the display-server-side transfer function selector,
// as attached to output and surface color state by the caller.
type TransferFunction int

const (
	// TransferFunctionDefault means the caller requested no particular
	// curve. It resolves to a linear hardware curve, but the surface
	// phase also uses it to tell "nothing requested" from an explicit
	// request.
	TransferFunctionDefault TransferFunction = iota
	TransferFunctionSRGB
	TransferFunctionBT709
	TransferFunctionPQ
	TransferFunctionLinear
	TransferFunctionUnity
	TransferFunctionHLG
	TransferFunctionGamma22
	TransferFunctionGamma24
	TransferFunctionGamma26
)

// PredefinedTF identifies an analytic transfer curve known to the
// hardware and the curve calculator.
type PredefinedTF int

const (
	TFLinear PredefinedTF = iota
	TFSRGB
	TFBT709
	TFPQ
	TFUnity
	TFHLG
	TFGamma22
	TFGamma24
	TFGamma26
)

// toPredefinedTF maps the display-server transfer function enumeration to
// the hardware curve identifier. Default and unrecognized values map to
// the linear curve.
func toPredefinedTF(tf TransferFunction) PredefinedTF {
	switch tf {
	case TransferFunctionSRGB:
		return TFSRGB
	case TransferFunctionBT709:
		return TFBT709
	case TransferFunctionPQ:
		return TFPQ
	case TransferFunctionUnity:
		return TFUnity
	case TransferFunctionHLG:
		return TFHLG
	case TransferFunctionGamma22:
		return TFGamma22
	case TransferFunctionGamma24:
		return TFGamma24
	case TransferFunctionGamma26:
		return TFGamma26
	default:
		return TFLinear
	}
}

func (tf PredefinedTF) String() string {
	switch tf {
	case TFLinear:
		return "linear"
	case TFSRGB:
		return "sRGB"
	case TFBT709:
		return "BT.709"
	case TFPQ:
		return "PQ"
	case TFUnity:
		return "unity"
	case TFHLG:
		return "HLG"
	case TFGamma22:
		return "gamma 2.2"
	case TFGamma24:
		return "gamma 2.4"
	case TFGamma26:
		return "gamma 2.6"
	default:
		return "unknown"
	}
}

// TFType says how a pipeline stage is driven.
type TFType int

const (
	// TFTypeBypass leaves the stage as identity.
	TFTypeBypass TFType = iota
	// TFTypePredefined drives the stage with a named analytic curve.
	TFTypePredefined
	// TFTypeDistributedPoints drives the stage with a sampled curve
	// table computed by the curve calculator.
	TFTypeDistributedPoints
)

func (t TFType) String() string {
	switch t {
	case TFTypeBypass:
		return "bypass"
	case TFTypePredefined:
		return "predefined"
	case TFTypeDistributedPoints:
		return "distributed points"
	default:
		return "unknown"
	}
}

// TransferFuncPoints is the number of distributed points the curve
// calculator produces per channel.
const TransferFuncPoints = 1025

// TransferFunc is the descriptor for one curve stage of the pipeline.
// Depending on Type the stage is bypassed, driven by the analytic curve
// named by TF, or programmed with the per-channel point tables.
type TransferFunc struct {
	Type TFType
	TF   PredefinedTF

	// Per-channel distributed points, in pipeline fixed point. Only
	// valid when Type is [TFTypeDistributedPoints]; filled by the curve
	// calculator.
	Red, Green, Blue []Fixed

	// SDRRefWhiteLevel is the reference white level in nits for
	// SDR-on-HDR mapping. Only meaningful on the output regamma stage.
	SDRRefWhiteLevel int
}

// reset puts the descriptor back to the bypass default without freeing the
// point tables, so a rebuilt stage can reuse them.
func (f *TransferFunc) reset() {
	f.Type = TFTypeBypass
	f.TF = TFLinear
	f.SDRRefWhiteLevel = 0
}
