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

package name

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"

	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/internal/debug"
)

func TestLanguageTags(t *testing.T) {
	for code, tag := range macLanguage {
		if _, err := language.Parse(tag); err != nil {
			t.Errorf("Macintosh language %d: %v", code, err)
		}
	}
	for code, loc := range windowsLanguage {
		if _, err := language.Parse(loc.tag); err != nil {
			t.Errorf("Windows language 0x%04x: %v", code, err)
		}
		if loc.language == "" || loc.region == "" {
			t.Errorf("Windows language 0x%04x: missing names", code)
		}
	}
}

func TestFullNames(t *testing.T) {
	data := debug.EncodeNames([]debug.NameRecord{
		debug.Mac(0, 4, "VITRO CORE TTF"),
		debug.Windows(0x0409, 4, "VITRO CORE TTF"),
		debug.Windows(0x0412, 4, "비트로 코어 TTF"),
		debug.Windows(0x0409, 6, "VITRO-CORE-TTF"),
		debug.Windows(0x0412, 6, "VITRO-CORE-TTF-KO"),
	})
	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"VITRO CORE TTF (English, United States)",
		"비트로 코어 TTF (Korean, Korea)",
	}
	if d := cmp.Diff(table.FullNames(), want); d != "" {
		t.Errorf("wrong full names (-got +want)\n%s", d)
	}

	psName, ok := table.PostScriptName()
	if !ok || psName != "VITRO-CORE-TTF" {
		t.Errorf("wrong PostScript name %q", psName)
	}
}

func TestTableOrder(t *testing.T) {
	data := debug.EncodeNames([]debug.NameRecord{
		debug.Windows(0x0412, 4, "B"),
		debug.Windows(0x0409, 4, "A"),
		debug.Windows(0x0412, 4, "B"),
	})
	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"B (Korean, Korea)",
		"A (English, United States)",
		"B (Korean, Korea)",
	}
	if d := cmp.Diff(table.FullNames(), want); d != "" {
		t.Errorf("records were reordered (-got +want)\n%s", d)
	}
}

func TestDecodeRecord(t *testing.T) {
	cases := []struct {
		rec  Record
		text string
		ok   bool
	}{
		{Record{PlatformID: PlatformMacintosh, Data: []byte{'C', 'a', 'f', 0x8E}}, "Café", true},
		{Record{PlatformID: PlatformWindows, EncodingID: 1, Data: []byte{0, 'A', 0xAC, 0x00}}, "A가", true},
		{Record{PlatformID: PlatformUnicode, EncodingID: 3, Data: []byte{0xD8, 0x3D, 0xDE, 0x00}}, "😀", true},
		{Record{PlatformID: PlatformWindows, EncodingID: 1, Data: []byte{0, 'A', 0}}, "", false},
		{Record{PlatformID: PlatformISO, Data: []byte{0, 'x'}}, "x", true},
		{Record{PlatformID: PlatformISO, Data: []byte{'x'}}, "", false},
		{Record{PlatformID: PlatformWindows, EncodingID: 1, Data: []byte{}}, "", true},
		{Record{PlatformID: PlatformWindows, EncodingID: 1, Data: []byte{0, 'A', 0xD8, 0x00, 0, 'B'}}, "", false},
		{Record{PlatformID: PlatformWindows, EncodingID: 1, Data: []byte{0, 'A', 0xD8, 0x00}}, "", false},
		{Record{PlatformID: PlatformWindows, EncodingID: 1, Data: []byte{0xDE, 0x00, 0, 'A'}}, "", false},
		{Record{PlatformID: PlatformWindows, EncodingID: 10, Data: []byte{0xD8, 0x3D, 0xD8, 0x3D}}, "", false},
	}
	for i, c := range cases {
		text, ok := c.rec.Decode()
		if text != c.text || ok != c.ok {
			t.Errorf("%d: got %q %t, want %q %t", i, text, ok, c.text, c.ok)
		}
	}
}

func TestIsUnicode(t *testing.T) {
	cases := []struct {
		platform PlatformID
		encoding uint16
		want     bool
	}{
		{PlatformUnicode, 3, true},
		{PlatformUnicode, 4, true},
		{PlatformMacintosh, 0, false},
		{PlatformISO, 1, false},
		{PlatformWindows, 0, true},
		{PlatformWindows, 1, true},
		{PlatformWindows, 2, false},
		{PlatformWindows, 10, true},
	}
	for _, c := range cases {
		rec := Record{PlatformID: c.platform, EncodingID: c.encoding}
		if got := rec.IsUnicode(); got != c.want {
			t.Errorf("platform %d, encoding %d: got %t", c.platform, c.encoding, got)
		}
	}
}

func TestUnicodeOnly(t *testing.T) {
	// Macintosh and odd-length records must not appear in the list
	data := debug.EncodeNames([]debug.NameRecord{
		debug.Mac(0, 4, "Mac Name"),
		{PlatformID: 0, EncodingID: 3, LanguageID: 0, NameID: 4, Text: "Unicode Name"},
	})
	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Unicode Name (Unknown, Unknown)"}
	if d := cmp.Diff(table.FullNames(), want); d != "" {
		t.Errorf("(-got +want)\n%s", d)
	}

	// make the Unicode record odd-length
	binary.BigEndian.PutUint16(data[6+12+8:], 3)
	table, err = Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if names := table.FullNames(); len(names) != 0 {
		t.Errorf("undecodable record included: %q", names)
	}
}

func TestOutOfBounds(t *testing.T) {
	data := debug.EncodeNames([]debug.NameRecord{
		debug.Windows(0x0409, 4, "First"),
		debug.Windows(0x0409, 4, "Second"),
	})
	binary.BigEndian.PutUint16(data[6+10:], 1000) // offset of the first record

	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if table.Skipped != 1 || len(table.Records) != 1 {
		t.Errorf("got %d records, %d skipped", len(table.Records), table.Skipped)
	}
	want := []string{"Second (English, United States)"}
	if d := cmp.Diff(table.FullNames(), want); d != "" {
		t.Errorf("(-got +want)\n%s", d)
	}
}

func TestMalformed(t *testing.T) {
	good := debug.EncodeNames([]debug.NameRecord{
		debug.Windows(0x0409, 4, "Name"),
	})

	cases := []struct {
		data []byte
		kind fonterror.Kind
	}{
		{good[:5], fonterror.TableTooShort},
		{good[:10], fonterror.TableTooShort},
		{[]byte{0, 2, 0, 0, 0, 6}, fonterror.InvalidTable},
		{[]byte{0, 0, 0, 0, 0, 2}, fonterror.InvalidTable},
		{[]byte{0, 0, 0, 0, 0, 7}, fonterror.TableTooShort},
		{[]byte{0, 1, 0, 0, 0, 8}, fonterror.TableTooShort},
	}
	for i, c := range cases {
		_, err := Decode(c.data)
		if fonterror.KindOf(err) != c.kind {
			t.Errorf("%d: expected %s, got %v", i, c.kind, err)
		}
	}

	_, err := Decode([]byte{0, 0, 0, 0, 0, 6})
	if err != nil {
		t.Errorf("empty table: %v", err)
	}
	if errors.Is(err, fonterror.ErrTableTooShort) {
		t.Error("empty table reported as too short")
	}
}

// makeVersion1 returns a version 1 name table with a single family name
// record which refers to the language tag "de-CH".
func makeVersion1() []byte {
	tag := []byte{0, 'd', 0, 'e', 0, '-', 0, 'C', 0, 'H'}
	text := []byte{0, 'N', 0, 'a', 0, 'm', 0, 'e'}

	var res []byte
	u16 := func(v uint16) { res = binary.BigEndian.AppendUint16(res, v) }
	u16(1)              // version
	u16(1)              // count
	u16(6 + 12 + 2 + 4) // storageOffset
	u16(3)              // platformID
	u16(1)              // encodingID
	u16(0x8000)         // languageID
	u16(4)              // nameID
	u16(uint16(len(text)))
	u16(uint16(len(tag)))
	u16(1) // langTagCount
	u16(uint16(len(tag)))
	u16(0)
	res = append(res, tag...)
	res = append(res, text...)
	return res
}

func TestVersion1(t *testing.T) {
	table, err := Decode(makeVersion1())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(table.LangTags, []string{"de-CH"}); d != "" {
		t.Errorf("wrong language tags (-got +want)\n%s", d)
	}
	rec := table.Records[0]
	if rec.Language() != language.MustParse("de-CH") {
		t.Errorf("wrong language %s", rec.Language())
	}
	want := []string{"Name (German, Switzerland)"}
	if d := cmp.Diff(table.FullNames(), want); d != "" {
		t.Errorf("(-got +want)\n%s", d)
	}
}

func TestLanguage(t *testing.T) {
	cases := []struct {
		rec     Record
		tag     string
		primary string
		region  string
	}{
		{Record{PlatformID: PlatformWindows, LanguageID: 0x0409}, "en-US", "English", "United States"},
		{Record{PlatformID: PlatformWindows, LanguageID: 0x0412}, "ko-KR", "Korean", "Korea"},
		{Record{PlatformID: PlatformWindows, LanguageID: 0x0407}, "de-DE", "German", "Germany"},
		{Record{PlatformID: PlatformMacintosh, LanguageID: 0}, "en", "English", "United States"},
		{Record{PlatformID: PlatformMacintosh, LanguageID: 2}, "de", "German", "Unknown"},
		{Record{PlatformID: PlatformUnicode, LanguageID: 0}, "und", "Unknown", "Unknown"},
		{Record{PlatformID: PlatformWindows, LanguageID: 0x7FFF}, "und", "Unknown", "Unknown"},
	}
	for _, c := range cases {
		if got := c.rec.Language(); got != language.MustParse(c.tag) {
			t.Errorf("%d/0x%04x: got tag %s, want %s", c.rec.PlatformID, c.rec.LanguageID, got, c.tag)
		}
		primary, region := c.rec.LanguageName()
		if primary != c.primary || region != c.region {
			t.Errorf("%d/0x%04x: got (%s, %s), want (%s, %s)", c.rec.PlatformID, c.rec.LanguageID,
				primary, region, c.primary, c.region)
		}
	}
}

func TestLookup(t *testing.T) {
	data := debug.EncodeNames([]debug.NameRecord{
		debug.Mac(0, 0, "Mac Copyright"),
		debug.Windows(0x0407, 0, "Urheberrecht"),
		debug.Windows(0x0409, 0, "Copyright"),
	})
	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if s, _ := table.Lookup(Copyright); s != "Urheberrecht" {
		t.Errorf("no preference: got %q", s)
	}
	if s, _ := table.Lookup(Copyright, language.AmericanEnglish); s != "Copyright" {
		t.Errorf("English: got %q", s)
	}
	if s, _ := table.Lookup(Copyright, language.German); s != "Urheberrecht" {
		t.Errorf("German: got %q", s)
	}
	if _, ok := table.Lookup(Trademark); ok {
		t.Error("found non-existent trademark")
	}
}

func TestGoRegular(t *testing.T) {
	hdr, err := header.Parse(goregular.TTF, 0)
	if err != nil {
		t.Fatal(err)
	}
	body, err := hdr.TableBytes("name")
	if err != nil {
		t.Fatal(err)
	}
	table, err := Decode(body)
	if err != nil {
		t.Fatal(err)
	}

	oracle, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	want, err := oracle.Name(nil, sfnt.NameIDPostScript)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := table.PostScriptName()
	if !ok || got != want {
		t.Errorf("PostScript name: got %q, want %q", got, want)
	}
	if len(table.FullNames()) == 0 {
		t.Error("no full names found")
	}
}

func FuzzName(f *testing.F) {
	f.Add(debug.EncodeNames(debug.Default().Names))
	f.Add(makeVersion1())
	f.Fuzz(func(t *testing.T, data []byte) {
		t1, err := Decode(data)
		if err != nil {
			return
		}
		n1 := t1.FullNames()
		t2, err := Decode(data)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(n1, t2.FullNames()); d != "" {
			t.Fatalf("decoding is not deterministic (-first +second)\n%s", d)
		}
		t1.PostScriptName()
		for _, rec := range t1.Records {
			rec.Decode()
			rec.LanguageName()
		}
	})
}
