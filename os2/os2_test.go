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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/postscript/funit"
)

// makeTable returns a complete OS/2 table of the given version.
func makeTable(v0 *v0Data, xHeight funit.Int16) []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, v0)
	_ = binary.Write(buf, binary.BigEndian, &v0MsData{
		TypoAscender:  800,
		TypoDescender: -200,
		TypoLineGap:   90,
		WinAscent:     900,
		WinDescent:    300,
	})
	if v0.Version >= 1 {
		buf.Write([]byte{0, 0, 0, 1, 0x80, 0, 0, 0})
	}
	if v0.Version >= 2 {
		_ = binary.Write(buf, binary.BigEndian, &v2Data{
			XHeight:   xHeight,
			CapHeight: 700,
		})
	}
	if v0.Version >= 5 {
		buf.Write([]byte{0, 0, 0xFF, 0xFF})
	}
	return buf.Bytes()
}

func TestVersions(t *testing.T) {
	for version := uint16(0); version <= 6; version++ {
		data := makeTable(&v0Data{
			Version:     version,
			WeightClass: 400,
			WidthClass:  5,
			VendID:      [4]byte{'T', 'E', 'S', 'T'},
			Selection:   0x0040,
		}, 500)

		info, err := Read(data)
		if err != nil {
			t.Fatalf("version %d: %v", version, err)
		}
		if info.Version != version || !info.IsRegular || info.Vendor != "TEST" {
			t.Errorf("version %d: wrong basic fields", version)
		}
		if !info.HasTypoMetrics || info.Ascent != 800 || info.Descent != -200 {
			t.Errorf("version %d: wrong typo metrics", version)
		}

		if version >= 1 {
			if !info.CodePageRange.Has(CP1252) || !info.CodePageRange.Has(CP437) {
				t.Errorf("version %d: wrong code page range %016x", version, info.CodePageRange)
			}
		}

		if version < 2 {
			if info.XHeight != nil || info.CapHeight != nil {
				t.Errorf("version %d: unexpected x-height", version)
			}
		} else {
			if info.XHeight == nil || *info.XHeight != 500 {
				t.Errorf("version %d: wrong x-height %v", version, info.XHeight)
			}
			if info.CapHeight == nil || *info.CapHeight != 700 {
				t.Errorf("version %d: wrong cap height %v", version, info.CapHeight)
			}
		}
	}
}

func TestZeroXHeight(t *testing.T) {
	data := makeTable(&v0Data{Version: 2}, 0)
	info, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.XHeight == nil || *info.XHeight != 0 {
		t.Errorf("x-height should be present and zero, got %v", info.XHeight)
	}
}

func TestShortVersion0(t *testing.T) {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, &v0Data{Version: 0, WeightClass: 700})
	info, err := Read(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if info.HasTypoMetrics {
		t.Error("68-byte table reported typo metrics")
	}
}

func TestTooShort(t *testing.T) {
	full := makeTable(&v0Data{Version: 4}, 500)
	for _, n := range []int{0, 1, 67, 68, 77, 78, 85, 86, 95} {
		_, err := Read(full[:n])
		if !errors.Is(err, fonterror.ErrTableTooShort) {
			t.Errorf("%d bytes: expected TableTooShort, got %v", n, err)
		}
	}
	if _, err := Read(full); err != nil {
		t.Errorf("full table: %v", err)
	}
}

func TestSelection(t *testing.T) {
	type flags struct {
		Bold, Italic, Regular, Oblique bool
	}
	cases := []struct {
		version uint16
		sel     uint16
		want    flags
	}{
		{4, 0x0001, flags{Italic: true}},
		{4, 0x0020, flags{Bold: true}},
		{4, 0x0021, flags{Bold: true, Italic: true}},
		{4, 0x0040, flags{Regular: true}},
		{4, 0x0200, flags{Oblique: true}},
		{3, 0x0200, flags{}}, // bit 9 is ignored before version 4
		{3, 0xFF80, flags{}},
		{4, 0x0201, flags{Italic: true}}, // italic excludes oblique
	}
	for _, c := range cases {
		info, err := Read(makeTable(&v0Data{Version: c.version, Selection: c.sel}, 0))
		if err != nil {
			t.Fatal(err)
		}
		got := flags{info.IsBold, info.IsItalic, info.IsRegular, info.IsOblique}
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("version %d, fsSelection 0x%04x (-got +want)\n%s", c.version, c.sel, d)
		}
	}
}

func TestPermissions(t *testing.T) {
	cases := []struct {
		version      uint16
		fsType       uint16
		valid        bool
		use          Permissions
		noSubsetting bool
		onlyBitmap   bool
	}{
		{4, 0x0000, true, PermInstall, false, false},
		{4, 0x0002, true, PermRestricted, false, false},
		{4, 0x0004, true, PermView, false, false},
		{4, 0x0008, true, PermEdit, false, false},
		{4, 0x0100, true, PermInstall, true, false},
		{4, 0x0204, true, PermView, false, true},
		{4, 0x000C, false, PermInstall, false, false},
		{4, 0x0006, false, PermInstall, false, false},
		{3, 0x0001, false, PermInstall, false, false},
		{2, 0x000C, true, PermEdit, false, false}, // least restrictive bit wins
		{2, 0x0006, true, PermView, false, false},
		{2, 0x0001, true, PermRestricted, false, false},
		{2, 0x0300, true, PermInstall, false, false}, // only bits 0-3 before version 3
	}
	for _, c := range cases {
		info, err := Read(makeTable(&v0Data{Version: c.version, Type: c.fsType}, 0))
		if err != nil {
			t.Fatal(err)
		}
		if info.HasPermissions != c.valid {
			t.Errorf("version %d, fsType 0x%04x: HasPermissions = %t", c.version, c.fsType, info.HasPermissions)
			continue
		}
		if !c.valid {
			continue
		}
		if info.PermUse != c.use || info.PermNoSubsetting != c.noSubsetting || info.PermOnlyBitmap != c.onlyBitmap {
			t.Errorf("version %d, fsType 0x%04x: got %s %t %t", c.version, c.fsType,
				info.PermUse, info.PermNoSubsetting, info.PermOnlyBitmap)
		}
	}
}

func TestWeight(t *testing.T) {
	cases := []struct {
		in   Weight
		want Weight
	}{
		{0, WeightThin},
		{1, WeightThin},
		{100, WeightThin},
		{149, WeightThin},
		{150, WeightThin},
		{151, WeightExtraLight},
		{400, WeightNormal},
		{450, WeightNormal},
		{451, WeightMedium},
		{700, WeightBold},
		{900, WeightBlack},
		{950, WeightBlack},
		{1000, WeightBlack},
		{65535, WeightBlack},
	}
	for _, c := range cases {
		if got := c.in.Rounded(); got != c.want {
			t.Errorf("Weight(%d).Rounded() = %d, want %d", c.in, got, c.want)
		}
	}

	if s := WeightBlack.String(); s != "Black" {
		t.Errorf("wrong name %q", s)
	}
	if s := Weight(1).String(); s != "Thin" {
		t.Errorf("wrong name %q", s)
	}
	if s := WeightSemiBold.SimpleString(); s != "SemiBold" {
		t.Errorf("wrong simple name %q", s)
	}
	if s := Weight(350).SimpleString(); s != "Light(350)" {
		t.Errorf("wrong simple name %q", s)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		in   Width
		want Width
	}{
		{0, WidthNormal},
		{1, WidthUltraCondensed},
		{5, WidthNormal},
		{9, WidthUltraExpanded},
		{10, WidthNormal},
		{1000, WidthNormal},
	}
	for _, c := range cases {
		if got := c.in.Rounded(); got != c.want {
			t.Errorf("Width(%d).Rounded() = %d, want %d", c.in, got, c.want)
		}
	}
	if s := WidthSemiExpanded.String(); s != "Semi Expanded" {
		t.Errorf("wrong name %q", s)
	}
}

func readGoFont(t *testing.T, data []byte) *Info {
	t.Helper()
	hdr, err := header.Parse(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	body, err := hdr.TableBytes("OS/2")
	if err != nil {
		t.Fatal(err)
	}
	info, err := Read(body)
	if err != nil {
		t.Fatal(err)
	}
	return info
}

func TestGoFonts(t *testing.T) {
	regular := readGoFont(t, goregular.TTF)
	if regular.WeightClass.Rounded() != WeightNormal {
		t.Errorf("Go Regular: wrong weight %d", regular.WeightClass)
	}
	if !regular.IsRegular || regular.IsBold || regular.IsItalic {
		t.Error("Go Regular: wrong style flags")
	}

	boldItalic := readGoFont(t, gobolditalic.TTF)
	if boldItalic.WeightClass.Rounded() != WeightBold {
		t.Errorf("Go Bold Italic: wrong weight %d", boldItalic.WeightClass)
	}
	if !boldItalic.IsBold || !boldItalic.IsItalic {
		t.Error("Go Bold Italic: wrong style flags")
	}
}

func FuzzOS2(f *testing.F) {
	f.Add(makeTable(&v0Data{Version: 4, WeightClass: 400, Selection: 0x40}, 500))
	f.Add(makeTable(&v0Data{Version: 1}, 0))
	hdr, err := header.Parse(goregular.TTF, 0)
	if err == nil {
		if body, err := hdr.TableBytes("OS/2"); err == nil {
			f.Add(body)
		}
	}

	f.Fuzz(func(t *testing.T, in []byte) {
		i1, err := Read(in)
		if err != nil {
			if fonterror.KindOf(err) != fonterror.TableTooShort {
				t.Fatalf("unexpected error %v", err)
			}
			return
		}
		i2, err := Read(in)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(i1, i2); d != "" {
			t.Fatalf("decoding is not deterministic (-first +second)\n%s", d)
		}
	})
}
