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

// Package afm reads and writes the global section of Adobe Font Metrics
// (AFM) files.
//
// All metrics are given in PDF glyph space units, i.e. in 1/1000th of a
// text space unit.  Character metrics and kerning pairs are not supported.
//
// https://adobe-type-tools.github.io/font-tech-notes/pdfs/5004.AFM_Spec.pdf
package afm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/fontinfo"
)

// Info contains the global font information of an AFM file.
type Info struct {
	// FontName is the fontname as used with the Postscript "findfont" command.
	FontName string

	FullName string
	Weight   string
	Version  string
	Notice   string

	ItalicAngle  float64
	IsFixedPitch bool
	FontBBox     rect.Rect

	UnderlinePosition  float64
	UnderlineThickness float64

	Ascender  float64
	Descender float64 // negative
	CapHeight float64 // 0 if unknown
	XHeight   float64 // 0 if unknown
}

// FromFont converts the metadata of an sfnt font to AFM global
// information.
func FromFont(font *fontinfo.Info) *Info {
	q := 1.0
	if font.UnitsPerEm != 0 {
		q = 1000 / float64(font.UnitsPerEm)
	}
	round := func(x float64) float64 {
		return math.Round(x*100) / 100
	}
	scale := func(x float64) float64 {
		return round(x * q)
	}
	bbox := font.BBoxPDF()

	res := &Info{
		FullName:     font.FullName,
		Version:      font.Version,
		Notice:       font.Trademark,
		ItalicAngle:  font.ItalicAngle,
		IsFixedPitch: font.IsFixedPitch,
		FontBBox: rect.Rect{
			LLx: round(bbox.LLx),
			LLy: round(bbox.LLy),
			URx: round(bbox.URx),
			URy: round(bbox.URy),
		},
		Ascender:  scale(float64(font.Ascender)),
		Descender: scale(float64(font.Descender)),
	}
	if font.PostScriptName != nil {
		res.FontName = *font.PostScriptName
	}

	switch {
	case font.Weight != nil:
		res.Weight = font.Weight.String()
	case font.IsBold:
		res.Weight = "Bold"
	default:
		res.Weight = "Regular"
	}

	if font.Underline != nil {
		res.UnderlinePosition = scale(float64(font.Underline.Position))
		res.UnderlineThickness = scale(float64(font.Underline.Thickness))
	}
	if font.CapHeight != nil {
		res.CapHeight = scale(float64(*font.CapHeight))
	}
	if font.XHeight != nil {
		res.XHeight = scale(float64(*font.XHeight))
	}
	return res
}

// Write writes the global section of an AFM file to w.
func (info *Info) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	num := func(x float64) string {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	fmt.Fprintln(bw, "StartFontMetrics 4.1")
	if info.FontName != "" {
		fmt.Fprintln(bw, "FontName", info.FontName)
	}
	if info.FullName != "" {
		fmt.Fprintln(bw, "FullName", info.FullName)
	}
	if info.Weight != "" {
		fmt.Fprintln(bw, "Weight", info.Weight)
	}
	if info.Version != "" {
		fmt.Fprintln(bw, "Version", info.Version)
	}
	if info.Notice != "" {
		fmt.Fprintln(bw, "Notice", info.Notice)
	}
	fmt.Fprintln(bw, "ItalicAngle", num(info.ItalicAngle))
	fmt.Fprintln(bw, "IsFixedPitch", info.IsFixedPitch)
	b := info.FontBBox
	fmt.Fprintln(bw, "FontBBox", num(b.LLx), num(b.LLy), num(b.URx), num(b.URy))
	fmt.Fprintln(bw, "UnderlinePosition", num(info.UnderlinePosition))
	fmt.Fprintln(bw, "UnderlineThickness", num(info.UnderlineThickness))
	if info.CapHeight != 0 {
		fmt.Fprintln(bw, "CapHeight", num(info.CapHeight))
	}
	if info.XHeight != 0 {
		fmt.Fprintln(bw, "XHeight", num(info.XHeight))
	}
	fmt.Fprintln(bw, "Ascender", num(info.Ascender))
	fmt.Fprintln(bw, "Descender", num(info.Descender))
	fmt.Fprintln(bw, "EndFontMetrics")

	return bw.Flush()
}

// Read reads the global section of an AFM file.  Unknown keys are
// ignored.
func Read(r io.Reader) (*Info, error) {
	res := &Info{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "StartCharMetrics" || fields[0] == "EndFontMetrics" {
			break
		}
		if len(fields) < 2 {
			continue
		}

		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		conv := func(in string) float64 {
			x, _ := strconv.ParseFloat(in, 64)
			return x
		}
		switch fields[0] {
		case "FontName":
			res.FontName = fields[1]
		case "FullName":
			res.FullName = rest
		case "Weight":
			res.Weight = rest
		case "Version":
			res.Version = rest
		case "Notice":
			res.Notice = rest
		case "ItalicAngle":
			res.ItalicAngle = conv(fields[1])
		case "IsFixedPitch":
			res.IsFixedPitch = fields[1] == "true"
		case "FontBBox":
			if len(fields) < 5 {
				return nil, fmt.Errorf("afm: malformed FontBBox %q", rest)
			}
			res.FontBBox = rect.Rect{
				LLx: conv(fields[1]),
				LLy: conv(fields[2]),
				URx: conv(fields[3]),
				URy: conv(fields[4]),
			}
		case "UnderlinePosition":
			res.UnderlinePosition = conv(fields[1])
		case "UnderlineThickness":
			res.UnderlineThickness = conv(fields[1])
		case "CapHeight":
			res.CapHeight = conv(fields[1])
		case "XHeight":
			res.XHeight = conv(fields[1])
		case "Ascender":
			res.Ascender = conv(fields[1])
		case "Descender":
			res.Descender = conv(fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
