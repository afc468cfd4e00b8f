// seehuhn.de/go/shapes - parametric outlines for the drawing demos
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

package testcases

import (
	"regexp"
	"testing"

	"seehuhn.de/go/geom/path"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		if len(cases) == 0 {
			t.Errorf("category %q is empty", category)
		}
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			full := category + "_" + tc.Name
			if seen[full] {
				t.Errorf("duplicate test case %q", full)
			}
			seen[full] = true
		}
	}
}

func TestCasesAreComplete(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if tc.Shape == nil {
				t.Errorf("%s: missing shape", name)
				continue
			}
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: invalid canvas size %dx%d", name, tc.Width, tc.Height)
			}
			if tc.Op == nil {
				t.Errorf("%s: missing operation", name)
			}
			if s, ok := tc.Op.(Stroke); ok && s.Width <= 0 {
				t.Errorf("%s: invalid line width %g", name, s.Width)
			}
			if tc.Data() == nil {
				t.Errorf("%s: no path data", name)
			}
		}
	}
}

func TestAnimationFrames(t *testing.T) {
	var first, last []path.Command
	for _, tc := range animationCases {
		switch tc.Name {
		case "trapezoid_t000":
			first = tc.Data().Cmds
		case "trapezoid_t100":
			last = tc.Data().Cmds
		}
	}
	if first == nil || last == nil {
		t.Fatal("trapezoid frames not found")
	}
	if len(first) != len(last) {
		t.Errorf("frame structure changed: %d vs %d commands", len(first), len(last))
	}

	got := 0
	for _, tc := range animationCases {
		if tc.Shape.Kind().String() == "trapezoid" {
			got++
		}
	}
	if got != len(frameTimes) {
		t.Errorf("got %d trapezoid frames, want %d", got, len(frameTimes))
	}
}
