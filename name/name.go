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

// Package name reads OpenType "name" tables.
// These tables contain localized strings associated with a font.
//
// Records are kept in the order in which they appear in the table.
// Strings are decoded on demand, using UTF-16BE for Unicode and Windows
// records and Mac Roman for Macintosh records.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"seehuhn.de/go/fontinfo/fonterror"
)

// ID is the name ID of a name table record.
type ID uint16

// Name IDs with a meaning defined by the OpenType specification.
const (
	Copyright            ID = 0
	Family               ID = 1
	Subfamily            ID = 2
	UniqueID             ID = 3
	FullName             ID = 4
	Version              ID = 5
	PostScriptName       ID = 6
	Trademark            ID = 7
	Manufacturer         ID = 8
	Designer             ID = 9
	Description          ID = 10
	VendorURL            ID = 11
	DesignerURL          ID = 12
	License              ID = 13
	LicenseURL           ID = 14
	TypographicFamily    ID = 16
	TypographicSubfamily ID = 17
	SampleText           ID = 19
)

// PlatformID identifies the platform a name record is intended for.
type PlatformID uint16

// These are the platform IDs used in name tables.
const (
	PlatformUnicode   PlatformID = 0
	PlatformMacintosh PlatformID = 1
	PlatformISO       PlatformID = 2 // deprecated
	PlatformWindows   PlatformID = 3
)

// Table contains the information from a "name" table.
type Table struct {
	Version uint16

	// Records lists the name records in table order.
	Records []Record

	// LangTags contains the language tags of a version 1 table.
	LangTags []string

	// Skipped counts the records which were dropped, because their
	// string data was outside the table.
	Skipped int
}

// Record is a single entry of a name table.
type Record struct {
	PlatformID PlatformID
	EncodingID uint16
	LanguageID uint16
	NameID     ID

	// Data is the raw string data.  It shares memory with the table data.
	Data []byte

	// LangTag is the language tag for language IDs 0x8000 and above in
	// version 1 tables.
	LangTag string
}

// Decode reads a "name" table.  Both version 0 and version 1 tables are
// supported.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, fonterror.TooShort("name")
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	if version > 1 {
		return nil, fonterror.Invalid("name", fmt.Sprintf("unsupported version %d", version))
	}

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, fonterror.TooShort("name")
	}

	numLang := 0
	langBase := endOfHeader
	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, fonterror.TooShort("name")
		}
		numLang = int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		langBase = endOfHeader + 2
		endOfHeader = langBase + numLang*4
		if endOfHeader > len(data) {
			return nil, fonterror.TooShort("name")
		}
	}
	if storageOffset < endOfHeader {
		return nil, fonterror.Invalid("name", "string storage overlaps the header")
	} else if storageOffset > len(data) {
		return nil, fonterror.TooShort("name")
	}
	storage := data[storageOffset:]

	t := &Table{
		Version: version,
		Records: make([]Record, 0, numRec),
	}

	if numLang > 0 {
		t.LangTags = make([]string, numLang)
		for i := range t.LangTags {
			pos := langBase + 4*i
			tagLen := int(data[pos])<<8 | int(data[pos+1])
			tagOffset := int(data[pos+2])<<8 | int(data[pos+3])
			if tagOffset+tagLen > len(storage) {
				continue
			}
			t.LangTags[i], _ = decodeUTF16(storage[tagOffset : tagOffset+tagLen])
		}
	}

	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])
		if nameOffset+nameLen > len(storage) {
			t.Skipped++
			continue
		}
		start := nameOffset
		end := nameOffset + nameLen

		rec := Record{
			PlatformID: PlatformID(data[pos])<<8 | PlatformID(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     ID(data[pos+6])<<8 | ID(data[pos+7]),
			Data:       storage[start:end:end],
		}
		if k := int(rec.LanguageID) - 0x8000; k >= 0 && k < len(t.LangTags) {
			rec.LangTag = t.LangTags[k]
		}
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// IsUnicode reports whether the record uses a Unicode encoding.
// This is the case for all records on the Unicode platform and for
// records on the Windows platform with the symbol, Unicode BMP and
// Unicode full repertoire encodings.
func (r Record) IsUnicode() bool {
	switch r.PlatformID {
	case PlatformUnicode:
		return true
	case PlatformWindows:
		return r.EncodingID == 0 || r.EncodingID == 1 || r.EncodingID == 10
	default:
		return false
	}
}

// Decode returns the record's string.  The second return value is false
// if the record uses an encoding which cannot be decoded.
func (r Record) Decode() (string, bool) {
	switch {
	case r.PlatformID == PlatformMacintosh && r.EncodingID == 0:
		b, err := charmap.Macintosh.NewDecoder().Bytes(r.Data)
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return decodeUTF16(r.Data)
	}
}

func decodeUTF16(data []byte) (string, bool) {
	if len(data)%2 != 0 || !validUTF16(data) {
		return "", false
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	b, err := dec.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// validUTF16 reports whether every surrogate in the big-endian UTF-16
// data is part of a high/low pair.
func validUTF16(data []byte) bool {
	for i := 0; i+1 < len(data); i += 2 {
		c := uint16(data[i])<<8 | uint16(data[i+1])
		switch {
		case c >= 0xD800 && c < 0xDC00:
			if i+3 >= len(data) {
				return false
			}
			next := uint16(data[i+2])<<8 | uint16(data[i+3])
			if next < 0xDC00 || next >= 0xE000 {
				return false
			}
			i += 2
		case c >= 0xDC00 && c < 0xE000:
			return false
		}
	}
	return true
}

// Language returns the language of the record.
// The result is [language.Und] if the language is not known.
func (r Record) Language() language.Tag {
	if r.LanguageID >= 0x8000 {
		if r.LangTag == "" {
			return language.Und
		}
		return language.Make(r.LangTag)
	}

	switch r.PlatformID {
	case PlatformWindows:
		if loc, ok := windowsLanguage[r.LanguageID]; ok {
			return language.Make(loc.tag)
		}
	case PlatformMacintosh:
		if tag, ok := macLanguage[r.LanguageID]; ok {
			return language.Make(tag)
		}
	}
	return language.Und
}

// LanguageName returns English names for the language and region of the
// record.  Windows records use the names from the Windows language ID
// list.  Unknown values are reported as "Unknown".
func (r Record) LanguageName() (primary, region string) {
	const unknown = "Unknown"

	if r.PlatformID == PlatformWindows && r.LanguageID < 0x8000 {
		if loc, ok := windowsLanguage[r.LanguageID]; ok {
			return loc.language, loc.region
		}
		return unknown, unknown
	}
	if r.PlatformID == PlatformMacintosh && r.LanguageID == 0 {
		return "English", "United States"
	}

	tag := r.Language()
	if tag == language.Und {
		return unknown, unknown
	}

	primary = unknown
	if base, conf := tag.Base(); conf != language.No {
		if s := display.English.Languages().Name(base); s != "" {
			primary = s
		}
	}
	region = unknown
	if reg, conf := tag.Region(); conf == language.Exact {
		if s := display.English.Regions().Name(reg); s != "" {
			region = s
		}
	}
	return primary, region
}

// FullNames returns all decodable Unicode full names (name ID 4), in
// table order.  Each name is followed by the language and region of the
// record, in the form "Name (Language, Region)".
func (t *Table) FullNames() []string {
	var res []string
	for _, rec := range t.Records {
		if rec.NameID != FullName || !rec.IsUnicode() {
			continue
		}
		val, ok := rec.Decode()
		if !ok {
			continue
		}
		primary, region := rec.LanguageName()
		res = append(res, fmt.Sprintf("%s (%s, %s)", val, primary, region))
	}
	return res
}

// PostScriptName returns the first decodable Unicode PostScript name
// (name ID 6).
func (t *Table) PostScriptName() (string, bool) {
	for _, rec := range t.Records {
		if rec.NameID != PostScriptName || !rec.IsUnicode() {
			continue
		}
		if val, ok := rec.Decode(); ok {
			return val, true
		}
	}
	return "", false
}

// Lookup returns the string for the given name ID which best matches the
// language preferences.  Unicode records are preferred over Macintosh
// records.  If no preferences are given, the first Unicode record is
// used.
func (t *Table) Lookup(id ID, prefs ...language.Tag) (string, bool) {
	var candidates []string
	var tags []language.Tag
	for pass := 0; pass < 2; pass++ {
		for _, rec := range t.Records {
			if rec.NameID != id || rec.IsUnicode() != (pass == 0) {
				continue
			}
			val, ok := rec.Decode()
			if !ok {
				continue
			}
			candidates = append(candidates, val)
			tags = append(tags, rec.Language())
		}
	}

	if len(candidates) == 0 {
		return "", false
	}
	if len(prefs) == 0 {
		return candidates[0], true
	}
	_, idx, _ := language.NewMatcher(tags).Match(prefs...)
	return candidates[idx], true
}
