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

// Width indicates the aspect ratio (width to height ratio) as specified by
// a font designer for the glyphs in a font.
type Width uint16

// Valid width classes.
const (
	WidthUltraCondensed Width = 1 // 50% of normal
	WidthExtraCondensed Width = 2 // 62.5% of normal
	WidthCondensed      Width = 3 // 75% of normal
	WidthSemiCondensed  Width = 4 // 87.5% of normal
	WidthNormal         Width = 5
	WidthSemiExpanded   Width = 6 // 112.5% of normal
	WidthExpanded       Width = 7 // 125% of normal
	WidthExtraExpanded  Width = 8 // 150% of normal
	WidthUltraExpanded  Width = 9 // 200% of normal
)

// Rounded returns w if it is a valid width class, and [WidthNormal]
// otherwise.
func (w Width) Rounded() Width {
	if w < WidthUltraCondensed || w > WidthUltraExpanded {
		return WidthNormal
	}
	return w
}

func (w Width) String() string {
	switch w.Rounded() {
	case WidthUltraCondensed:
		return "Ultra Condensed"
	case WidthExtraCondensed:
		return "Extra Condensed"
	case WidthCondensed:
		return "Condensed"
	case WidthSemiCondensed:
		return "Semi Condensed"
	case WidthSemiExpanded:
		return "Semi Expanded"
	case WidthExpanded:
		return "Expanded"
	case WidthExtraExpanded:
		return "Extra Expanded"
	case WidthUltraExpanded:
		return "Ultra Expanded"
	default:
		return "Normal"
	}
}
