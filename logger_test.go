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

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	tr := NewTranslator(testCaps(), nil)
	state := &OutputState{
		DegammaLUT: NewPropertyBlob(rampLUT(100)),
	}
	var pipe OutputPipeline
	if err := tr.UpdateOutput(state, &pipe); err == nil {
		t.Fatal("expected validation error")
	}

	if !strings.Contains(buf.String(), "invalid degamma LUT size") {
		t.Errorf("validation failure not logged: %q", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if logger() == nil {
		t.Fatal("nil logger installed")
	}
	// the default logger must discard records without formatting
	if logger().Enabled(nil, slog.LevelError) {
		t.Error("default logger enabled")
	}
}
