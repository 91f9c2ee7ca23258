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

package parser

import (
	"errors"
	"testing"

	"seehuhn.de/go/fontinfo/fonterror"
)

func TestRead(t *testing.T) {
	data := []byte{0x01, 0x02, 0xFF, 0xFE, 0x00, 0x01, 0x80, 0x00, 0x7F}
	p := New("test", data)

	u16, err := p.ReadUint16()
	if err != nil || u16 != 0x0102 {
		t.Fatalf("ReadUint16: %d %v", u16, err)
	}
	i16, err := p.ReadInt16()
	if err != nil || i16 != -2 {
		t.Fatalf("ReadInt16: %d %v", i16, err)
	}
	fixed, err := p.ReadFixed()
	if err != nil || fixed != 1.5 {
		t.Fatalf("ReadFixed: %g %v", fixed, err)
	}
	b, err := p.ReadUint8()
	if err != nil || b != 0x7F {
		t.Fatalf("ReadUint8: %d %v", b, err)
	}
	if p.Remaining() != 0 {
		t.Errorf("wrong remaining count %d", p.Remaining())
	}

	_, err = p.ReadUint8()
	if !errors.Is(err, fonterror.ErrTableTooShort) {
		t.Errorf("expected TableTooShort, got %v", err)
	}
	var e *fonterror.Error
	if !errors.As(err, &e) || e.Table != "test" {
		t.Errorf("error does not name the table: %v", err)
	}
}

func TestBounds(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	p := New("test", data[:4])

	if _, err := p.ReadUint32(); err != nil {
		t.Fatal(err)
	}
	if p.SeekPos(4) != nil {
		t.Error("seeking to end of table failed")
	}
	if p.SeekPos(5) == nil {
		t.Error("seeking beyond the table succeeded")
	}

	// reads must never reach the bytes which follow the table
	p.SeekPos(2)
	if _, err := p.ReadUint32(); err == nil {
		t.Error("read past end of table succeeded")
	}
	if _, err := p.ReadBytes(-1); err == nil {
		t.Error("negative read succeeded")
	}

	p.SeekPos(0)
	buf, err := p.ReadBytes(2)
	if err != nil {
		t.Fatal(err)
	}
	if cap(buf) != 2 {
		t.Errorf("capacity not clipped: %d", cap(buf))
	}
	buf = append(buf, 99)
	if data[2] != 3 {
		t.Error("append modified the table data")
	}
}
