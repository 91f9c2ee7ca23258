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

package fontinfo

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/cff"
	"seehuhn.de/go/fontinfo/cmap"
	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/glyf"
	"seehuhn.de/go/fontinfo/head"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/hhea"
	"seehuhn.de/go/fontinfo/maxp"
	"seehuhn.de/go/fontinfo/name"
	"seehuhn.de/go/fontinfo/os2"
	"seehuhn.de/go/fontinfo/post"
)

// Options can be used to control the analysis.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// FaceIndex selects the face within a font collection.
	FaceIndex int

	// VerifyChecksums enables the verification of the table checksums.
	VerifyChecksums bool

	// Logger receives debug messages about recoverable problems.
	// If this is nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

var mandatoryTables = []string{"head", "hhea", "maxp", "name"}

// ReadFile reads and analyses a font file.
func ReadFile(fileName string, opt *Options) (*Info, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("cannot read font: %w", err)
	}
	return Analyze(data, opt)
}

// Analyze extracts the metadata from the font data.
//
// Problems with the font data are reported as *[fonterror.Error].
// The returned Info does not share memory with data.
func Analyze(data []byte, opt *Options) (*Info, error) {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	toc, err := header.Parse(data, opt.FaceIndex)
	if err != nil {
		return nil, err
	}
	if toc.BadSearchRange {
		log.Debug("inconsistent binary search fields in table directory")
	}
	for _, tag := range mandatoryTables {
		if !toc.Has(tag) {
			return nil, &fonterror.Error{Kind: fonterror.MandatoryTableMissing, Table: tag}
		}
	}
	if opt.VerifyChecksums {
		err = toc.VerifyChecksums()
		if err != nil {
			return nil, err
		}
	}

	tableData := func(tag string) []byte {
		data, _ := toc.TableBytes(tag)
		return data
	}

	headInfo, err := head.Read(tableData("head"))
	if err != nil {
		return nil, err
	}
	hheaInfo, err := hhea.Read(tableData("hhea"))
	if err != nil {
		return nil, err
	}
	maxpInfo, err := maxp.Read(tableData("maxp"))
	if err != nil {
		return nil, err
	}
	names, err := name.Decode(tableData("name"))
	if err != nil {
		return nil, err
	}
	if names.Skipped > 0 {
		log.WithField("table", "name").Debugf("skipped %d records with invalid bounds", names.Skipped)
	}

	info := &Info{
		FamilyNames:  names.FullNames(),
		UnitsPerEm:   headInfo.UnitsPerEm,
		Ascender:     hheaInfo.Ascent,
		Descender:    hheaInfo.Descent,
		LineGap:      hheaInfo.LineGap,
		NumGlyphs:    uint16(maxpInfo.NumGlyphs),
		IsVariable:   toc.Has("fvar"),
		Flavor:       toc.Flavor,
		NumFaces:     toc.NumFaces,
		FontRevision: headInfo.FontRevision,
		Created:      headInfo.Created,
		Modified:     headInfo.Modified,
	}
	if info.FamilyNames == nil {
		info.FamilyNames = []string{}
	}
	if psName, ok := names.PostScriptName(); ok {
		info.PostScriptName = &psName
	}
	info.FullName, _ = names.Lookup(name.FullName, language.AmericanEnglish)
	info.Copyright, _ = names.Lookup(name.Copyright, language.AmericanEnglish)
	info.Trademark, _ = names.Lookup(name.Trademark, language.AmericanEnglish)
	info.Version, _ = names.Lookup(name.Version, language.AmericanEnglish)

	info.GlobalBBox = globalBBox(toc, headInfo, maxpInfo.NumGlyphs, log)

	if toc.Has("OS/2") {
		os2Info, err := os2.Read(tableData("OS/2"))
		if err != nil {
			return nil, err
		}
		setOS2(info, os2Info)
	} else {
		log.WithField("table", "OS/2").Debug("table not present")
		info.IsBold = headInfo.IsBold
		info.IsItalic = headInfo.IsItalic
		info.IsRegular = !info.IsBold && !info.IsItalic
	}

	if toc.Has("post") {
		postInfo, err := post.Read(tableData("post"))
		if err != nil {
			return nil, err
		}
		info.Underline = &LineMetrics{
			Position:  postInfo.UnderlinePosition,
			Thickness: postInfo.UnderlineThickness,
		}
		info.ItalicAngle = postInfo.ItalicAngle
		info.IsFixedPitch = postInfo.IsFixedPitch
	} else {
		log.WithField("table", "post").Debug("table not present")
	}

	if toc.Has("CFF ") {
		info.CFFFontName, err = cff.FontName(tableData("CFF "))
		if err != nil {
			log.WithField("table", "CFF ").Debugf("ignoring font name: %v", err)
		}
	}

	if toc.Has("cmap") {
		info.CMaps, err = cmap.Decode(tableData("cmap"))
		if err != nil {
			log.WithField("table", "cmap").Debugf("ignoring character maps: %v", err)
			info.CMaps = nil
		}
	}

	return info, nil
}

// setOS2 copies the information from the "OS/2" table into info.
// The style flags in the "OS/2" table take precedence over the ones
// in the "head" table.
func setOS2(info *Info, os2Info *os2.Info) {
	weight := os2Info.WeightClass.Rounded()
	width := os2Info.WidthClass.Rounded()
	info.Weight = &weight
	info.Width = &width

	info.IsBold = os2Info.IsBold
	info.IsItalic = os2Info.IsItalic
	info.IsRegular = os2Info.IsRegular
	info.IsOblique = os2Info.IsOblique

	info.Strikeout = &LineMetrics{
		Position:  os2Info.StrikeoutPosition,
		Thickness: os2Info.StrikeoutSize,
	}
	info.Subscript = &ScriptMetrics{
		XSize:   os2Info.SubscriptXSize,
		YSize:   os2Info.SubscriptYSize,
		XOffset: os2Info.SubscriptXOffset,
		YOffset: os2Info.SubscriptYOffset,
	}
	info.Superscript = &ScriptMetrics{
		XSize:   os2Info.SuperscriptXSize,
		YSize:   os2Info.SuperscriptYSize,
		XOffset: os2Info.SuperscriptXOffset,
		YOffset: os2Info.SuperscriptYOffset,
	}
	if os2Info.HasPermissions {
		info.Permissions = &Permissions{
			Use:          os2Info.PermUse,
			NoSubsetting: os2Info.PermNoSubsetting,
			OnlyBitmap:   os2Info.PermOnlyBitmap,
		}
	}

	if os2Info.XHeight != nil {
		xHeight := *os2Info.XHeight
		info.XHeight = &xHeight
	}
	if os2Info.CapHeight != nil {
		capHeight := *os2Info.CapHeight
		info.CapHeight = &capHeight
	}
	info.Vendor = os2Info.Vendor
}

// globalBBox scans the glyph headers for the font bounding box.  If this
// is not possible, the bounding box from the "head" table is returned.
func globalBBox(toc *header.Info, headInfo *head.Info, numGlyphs int, log logrus.FieldLogger) funit.Rect16 {
	if !toc.Has("glyf", "loca") {
		return headInfo.FontBBox
	}

	glyfData, _ := toc.TableBytes("glyf")
	locaData, _ := toc.TableBytes("loca")
	bbox, err := glyf.BBox(glyfData, locaData, headInfo.LocaFormat, numGlyphs)
	if err != nil {
		log.WithField("table", "glyf").Debugf("using head bounding box: %v", err)
		return headInfo.FontBBox
	}
	if bbox.IsZero() {
		log.WithField("table", "glyf").Debug("no glyph outlines, using head bounding box")
		return headInfo.FontBBox
	}
	return bbox
}
