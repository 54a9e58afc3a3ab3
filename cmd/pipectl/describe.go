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

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/colorpipe"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Resolve color state into pipeline stage decisions and print them",
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().String("degamma", "", "Output degamma LUT file (r,g,b per line)")
	describeCmd.Flags().String("regamma", "", "Output regamma LUT file")
	describeCmd.Flags().String("shaper", "", "Shaper LUT file")
	describeCmd.Flags().String("lut3d", "", "3D LUT file")
	describeCmd.Flags().String("ctm", "", "CTM: 9 comma-separated coefficients")
	describeCmd.Flags().String("regamma-tf", "default", "Output transfer function name")
	describeCmd.Flags().String("surface-tf", "default", "Surface transfer function name")
	describeCmd.Flags().Int("lut-size", colorpipe.DefaultLUTSize, "Full 1D LUT size of the hardware")
	describeCmd.Flags().Int("num-3dluts", 1, "Number of 3D LUT units of the hardware")
	describeCmd.Flags().Bool("rom", false, "Hardware has ROM curves")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	lutSize, _ := cmd.Flags().GetInt("lut-size")
	num3DLUTs, _ := cmd.Flags().GetInt("num-3dluts")
	hasROM, _ := cmd.Flags().GetBool("rom")

	tr := colorpipe.NewTranslator(colorpipe.Caps{
		LUTSize:   lutSize,
		Num3DLUTs: num3DLUTs,
		HasROM:    hasROM,
	}, nil)

	state := &colorpipe.OutputState{}

	for _, f := range []struct {
		flag string
		blob **colorpipe.PropertyBlob
	}{
		{"degamma", &state.DegammaLUT},
		{"regamma", &state.RegammaLUT},
		{"shaper", &state.ShaperLUT},
		{"lut3d", &state.LUT3D},
	} {
		fname, _ := cmd.Flags().GetString(f.flag)
		if fname == "" {
			continue
		}
		lut, err := readLUT(fname)
		if err != nil {
			return fmt.Errorf("%s: %w", f.flag, err)
		}
		*f.blob = colorpipe.NewPropertyBlob(lut)
	}

	if ctmStr, _ := cmd.Flags().GetString("ctm"); ctmStr != "" {
		ctm, err := parseCTM(ctmStr)
		if err != nil {
			return err
		}
		state.CTM = ctm
	}

	tfName, _ := cmd.Flags().GetString("regamma-tf")
	tf, err := lookupTF(tfName)
	if err != nil {
		return err
	}
	state.RegammaTF = tf

	var outPipe colorpipe.OutputPipeline
	if err := tr.UpdateOutput(state, &outPipe); err != nil {
		return err
	}

	surfTFName, _ := cmd.Flags().GetString("surface-tf")
	surfTF, err := lookupTF(surfTFName)
	if err != nil {
		return err
	}
	var surfPipe colorpipe.SurfacePipeline
	err = tr.UpdateSurface(&outPipe, &colorpipe.SurfaceState{DegammaTF: surfTF}, &surfPipe)
	if err != nil {
		return err
	}

	printStage := func(name string, tf *colorpipe.TransferFunc) {
		fmt.Printf("%-16s %s", name, tf.Type)
		if tf.Type != colorpipe.TFTypeBypass {
			fmt.Printf(" (%s)", tf.TF)
		}
		if tf.SDRRefWhiteLevel != 0 {
			fmt.Printf(" ref white %d nits", tf.SDRRefWhiteLevel)
		}
		fmt.Println()
	}

	printStage("input degamma", &surfPipe.In)
	if outPipe.GamutRemap.EnableRemap {
		fmt.Printf("%-16s enabled\n", "gamut remap")
		for row := 0; row < 3; row++ {
			fmt.Print("    ")
			for col := 0; col < 4; col++ {
				fmt.Printf("%12s", outPipe.GamutRemap.Matrix[row*4+col])
			}
			fmt.Println()
		}
	} else {
		fmt.Printf("%-16s bypass\n", "gamut remap")
	}
	if outPipe.Shaper != nil {
		printStage("shaper", outPipe.Shaper)
	} else {
		fmt.Printf("%-16s bypass\n", "shaper")
	}
	if outPipe.LUT3D != nil && outPipe.LUT3D.Initialized {
		fmt.Printf("%-16s tetrahedral 17, 12-bit\n", "3D LUT")
	} else {
		fmt.Printf("%-16s bypass\n", "3D LUT")
	}
	printStage("output regamma", &outPipe.Out)

	return nil
}

// readLUT reads a LUT file with one "r,g,b" sample per line. Blank lines
// and lines starting with '#' are skipped.
func readLUT(fname string) ([]colorpipe.LUTEntry, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lut []colorpipe.LUTEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s: expected 3 fields, got %d", fname, len(fields))
		}
		var e colorpipe.LUTEntry
		for i, dst := range []*uint16{&e.Red, &e.Green, &e.Blue} {
			v, err := strconv.ParseUint(strings.TrimSpace(fields[i]), 0, 16)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fname, err)
			}
			*dst = uint16(v)
		}
		lut = append(lut, e)
	}
	return lut, scanner.Err()
}

// parseCTM parses 9 comma-separated coefficients into a sign-magnitude
// fixed-point matrix.
func parseCTM(s string) (*colorpipe.ColorCTM, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 9 {
		return nil, fmt.Errorf("ctm: expected 9 coefficients, got %d", len(fields))
	}
	ctm := &colorpipe.ColorCTM{}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("ctm: %w", err)
		}
		neg := v < 0
		if neg {
			v = -v
		}
		mag := uint64(v * (1 << 32))
		if neg {
			mag |= 1 << 63
		}
		ctm.Matrix[i] = mag
	}
	return ctm, nil
}
