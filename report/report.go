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

// Package report renders font metadata for display.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo"
)

// WriteText writes a human readable description of the font to w,
// one "Label: value" line per field.  Absent values are shown as "none".
func WriteText(w io.Writer, info *fontinfo.Info) error {
	p := &printer{w: w}

	p.line("Family names", quoteList(info.FamilyNames))
	if info.PostScriptName != nil {
		p.line("PostScript name", fmt.Sprintf("%q", *info.PostScriptName))
	} else {
		p.line("PostScript name", "none")
	}
	p.line("Units per EM", info.UnitsPerEm)
	p.line("Ascender", info.Ascender)
	p.line("Descender", info.Descender)
	p.line("Line gap", info.LineGap)
	p.line("Global bbox", formatRect(info.GlobalBBox))
	p.line("Number of glyphs", info.NumGlyphs)
	p.line("Underline", formatLine(info.Underline))
	p.line("X height", formatOptional(info.XHeight))
	if info.Weight != nil {
		p.line("Weight", fmt.Sprintf("%s (%d)", info.Weight, uint16(*info.Weight)))
	} else {
		p.line("Weight", "none")
	}
	if info.Width != nil {
		p.line("Width", fmt.Sprintf("%s (%d)", info.Width, uint16(*info.Width)))
	} else {
		p.line("Width", "none")
	}
	p.line("Regular", info.IsRegular)
	p.line("Italic", info.IsItalic)
	p.line("Bold", info.IsBold)
	p.line("Oblique", info.IsOblique)
	p.line("Strikeout", formatLine(info.Strikeout))
	p.line("Subscript", formatScript(info.Subscript))
	p.line("Superscript", formatScript(info.Superscript))
	p.line("Permissions", formatPermissions(info.Permissions))
	p.line("Variable", info.IsVariable)

	if info.Version != "" {
		p.line("Version", info.Version)
	}
	if info.Copyright != "" {
		p.line("Copyright", info.Copyright)
	}
	if info.Trademark != "" {
		p.line("Trademark", info.Trademark)
	}
	if info.CFFFontName != "" {
		p.line("CFF font name", info.CFFFontName)
	}
	if len(info.CMaps) > 0 {
		encodings := make([]string, len(info.CMaps))
		for i, e := range info.CMaps {
			encodings[i] = e.String()
		}
		p.line("Character maps", strings.Join(encodings, ", "))
	}

	return p.err
}

// WriteJSON writes the serializable fields of info to w, as indented JSON
// followed by a newline.
func WriteJSON(w io.Writer, info *fontinfo.Info) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(label string, value any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s: %v\n", label, value)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func formatOptional(x *funit.Int16) string {
	if x == nil {
		return "none"
	}
	return fmt.Sprint(*x)
}

func formatRect(r funit.Rect16) string {
	return fmt.Sprintf("xMin=%d yMin=%d xMax=%d yMax=%d", r.LLx, r.LLy, r.URx, r.URy)
}

func formatLine(m *fontinfo.LineMetrics) string {
	if m == nil {
		return "none"
	}
	return fmt.Sprintf("position=%d thickness=%d", m.Position, m.Thickness)
}

func formatScript(m *fontinfo.ScriptMetrics) string {
	if m == nil {
		return "none"
	}
	return fmt.Sprintf("size=%dx%d offset=%d,%d", m.XSize, m.YSize, m.XOffset, m.YOffset)
}

func formatPermissions(perm *fontinfo.Permissions) string {
	if perm == nil {
		return "none"
	}
	res := perm.Use.String()
	if perm.NoSubsetting {
		res += ", no subsetting"
	}
	if perm.OnlyBitmap {
		res += ", bitmap only"
	}
	return res
}
