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
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"seehuhn.de/go/colorpipe"
)

var transferFunctions = map[string]colorpipe.TransferFunction{
	"default": colorpipe.TransferFunctionDefault,
	"srgb":    colorpipe.TransferFunctionSRGB,
	"bt709":   colorpipe.TransferFunctionBT709,
	"pq":      colorpipe.TransferFunctionPQ,
	"linear":  colorpipe.TransferFunctionLinear,
	"unity":   colorpipe.TransferFunctionUnity,
	"hlg":     colorpipe.TransferFunctionHLG,
	"gamma22": colorpipe.TransferFunctionGamma22,
	"gamma24": colorpipe.TransferFunctionGamma24,
	"gamma26": colorpipe.TransferFunctionGamma26,
}

func lookupTF(name string) (colorpipe.TransferFunction, error) {
	tf, ok := transferFunctions[name]
	if !ok {
		return 0, fmt.Errorf("unknown transfer function %q (try \"pipectl tfs\")", name)
	}
	return tf, nil
}

var tfsCmd = &cobra.Command{
	Use:   "tfs",
	Short: "List the transfer function names accepted by describe",
	Run: func(cmd *cobra.Command, args []string) {
		names := maps.Keys(transferFunctions)
		slices.Sort(names)
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(tfsCmd)
}
