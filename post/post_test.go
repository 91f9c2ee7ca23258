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

package post

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/header"
)

func encode(enc *postEnc) []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	for _, version := range []uint32{0x00010000, 0x00020000, 0x00025000, 0x00030000, 0x00040000, 0x12345678} {
		data := encode(&postEnc{
			Version:            version,
			ItalicAngle:        -12 << 16,
			UnderlinePosition:  -150,
			UnderlineThickness: 50,
			IsFixedPitch:       1,
		})
		info, err := Read(data)
		if err != nil {
			t.Fatalf("version %08x: %v", version, err)
		}
		want := &Info{
			Version:            version,
			ItalicAngle:        -12,
			UnderlinePosition:  -150,
			UnderlineThickness: 50,
			IsFixedPitch:       true,
		}
		if d := cmp.Diff(info, want); d != "" {
			t.Errorf("version %08x (-got +want)\n%s", version, d)
		}
	}
}

func TestTooShort(t *testing.T) {
	data := encode(&postEnc{Version: 0x00030000})
	for _, n := range []int{0, 4, 31} {
		_, err := Read(data[:n])
		if !errors.Is(err, fonterror.ErrTableTooShort) {
			t.Errorf("%d bytes: expected TableTooShort, got %v", n, err)
		}
	}
}

func readGoFont(t *testing.T, data []byte) *Info {
	t.Helper()
	hdr, err := header.Parse(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	body, err := hdr.TableBytes("post")
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
	if regular.IsFixedPitch {
		t.Error("Go Regular is not fixed pitch")
	}
	if regular.UnderlineThickness <= 0 {
		t.Errorf("implausible underline thickness %d", regular.UnderlineThickness)
	}

	mono := readGoFont(t, gomono.TTF)
	if !mono.IsFixedPitch {
		t.Error("Go Mono is fixed pitch")
	}
}
