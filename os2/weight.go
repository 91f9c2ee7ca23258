// seehuhn.de/go/fontinfo - read metadata from TrueType and OpenType fonts
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

package os2

import "strconv"

// Weight represents the visual weight (degree of blackness or thickness of
// strokes) of the characters in a font.  Values are in the range 1 to
// 1000, with the multiples of 100 carrying conventional names.
type Weight uint16

// Pre-defined weight classes.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Rounded returns the named weight class closest to w.
// Values exactly half way between two classes are rounded down.
func (w Weight) Rounded() Weight {
	if w >= WeightBlack {
		return WeightBlack
	}
	r := (w + 49) / 100 * 100
	if r < WeightThin {
		return WeightThin
	}
	return r
}

func (w Weight) String() string {
	switch w.Rounded() {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "Extra Light"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "Semi Bold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "Extra Bold"
	default:
		return "Black"
	}
}

// SimpleString returns the name of the weight class without spaces,
// for example "ExtraLight".  Weights which are not a multiple of 100
// carry the numeric value in parentheses.
func (w Weight) SimpleString() string {
	var s string
	switch w.Rounded() {
	case WeightExtraLight:
		s = "ExtraLight"
	case WeightSemiBold:
		s = "SemiBold"
	case WeightExtraBold:
		s = "ExtraBold"
	default:
		s = w.String()
	}
	if w != w.Rounded() {
		s += "(" + strconv.Itoa(int(w)) + ")"
	}
	return s
}
