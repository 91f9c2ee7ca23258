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

// Package fontinfo extracts metadata from TrueType and OpenType fonts.
//
// The package reads the table directory of a font file, decodes the
// tables which carry descriptive information ("head", "hhea", "maxp",
// "name", "OS/2", "post") and collects the results into an [Info]
// structure.  Glyph outlines are not decoded.
//
// Font collections are supported; the face to analyse is selected using
// [Options].
package fontinfo

import (
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/cmap"
	"seehuhn.de/go/fontinfo/head"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/os2"
)

// Info contains the metadata of one font face.
//
// Optional values are represented by pointers, which are nil if the
// corresponding table is absent from the font.  Only some of the fields
// are included in the JSON representation.
type Info struct {
	FamilyNames    []string `json:"family_names"`
	PostScriptName *string  `json:"post_script_name"`

	UnitsPerEm uint16      `json:"units_per_em"`
	Ascender   funit.Int16 `json:"ascender"`
	Descender  funit.Int16 `json:"descender"` // negative
	LineGap    funit.Int16 `json:"line_gap"`

	// GlobalBBox is the union of all glyph bounding boxes.  If the glyph
	// data cannot be scanned, the box from the "head" table is used.
	GlobalBBox funit.Rect16 `json:"-"`

	NumGlyphs uint16 `json:"number_of_glyphs"`

	Underline *LineMetrics `json:"-"`
	XHeight   *funit.Int16 `json:"x_height"`

	Weight *os2.Weight `json:"-"`
	Width  *os2.Width  `json:"-"`

	IsRegular bool `json:"is_regular"`
	IsItalic  bool `json:"is_italic"`
	IsBold    bool `json:"is_bold"`
	IsOblique bool `json:"is_oblique"`

	Strikeout   *LineMetrics   `json:"-"`
	Subscript   *ScriptMetrics `json:"-"`
	Superscript *ScriptMetrics `json:"-"`
	Permissions *Permissions   `json:"-"`

	IsVariable bool `json:"is_variable"`

	Flavor       header.Flavor `json:"-"`
	NumFaces     int           `json:"-"`
	FontRevision head.Version  `json:"-"`
	Created      time.Time     `json:"-"`
	Modified     time.Time     `json:"-"`
	ItalicAngle  float64       `json:"-"` // degrees counterclockwise from vertical
	IsFixedPitch bool          `json:"-"`
	CapHeight    *funit.Int16  `json:"-"`
	Vendor       string        `json:"-"`
	FullName     string        `json:"-"`
	Copyright    string        `json:"-"`
	Trademark    string        `json:"-"`
	Version      string        `json:"-"`

	// CFFFontName is the font name from the "CFF " table, for fonts with
	// CFF outlines.
	CFFFontName string `json:"-"`

	// CMaps lists the subtables of the "cmap" table.
	CMaps []cmap.Encoding `json:"-"`
}

// LineMetrics describes the position of a horizontal line,
// like an underline or a strikeout line.
type LineMetrics struct {
	Position  funit.Int16
	Thickness funit.Int16
}

// ScriptMetrics describes the recommended size and position of subscripts
// or superscripts.
type ScriptMetrics struct {
	XSize   funit.Int16
	YSize   funit.Int16
	XOffset funit.Int16
	YOffset funit.Int16
}

// Permissions describes the embedding restrictions of the font.
type Permissions struct {
	Use          os2.Permissions
	NoSubsetting bool // the font may not be subsetted prior to embedding
	OnlyBitmap   bool // only bitmaps contained in the font may be embedded
}

// FontMatrix returns the matrix which maps font design units to text
// space units.
func (info *Info) FontMatrix() matrix.Matrix {
	if info.UnitsPerEm == 0 {
		return matrix.Identity
	}
	q := 1 / float64(info.UnitsPerEm)
	return matrix.Matrix{q, 0, 0, q, 0, 0}
}

// BBoxPDF returns the global bounding box in PDF glyph space units
// (1/1000th of a text space unit).
func (info *Info) BBoxPDF() rect.Rect {
	M := info.FontMatrix().Mul(matrix.Scale(1000, 1000))
	b := info.GlobalBBox
	llx, lly := M.Apply(float64(b.LLx), float64(b.LLy))
	urx, ury := M.Apply(float64(b.URx), float64(b.URy))
	return rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury}
}
