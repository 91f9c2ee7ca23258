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

package header

import (
	"encoding/binary"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/fontinfo/fonterror"
)

// Checksum computes the checksum of an sfnt table.  The data is treated as
// a sequence of big-endian uint32 values, padded with zeros to a multiple
// of four bytes.
func Checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var last [4]byte
		copy(last[:], data)
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}

// headChecksum computes the checksum of a "head" table, where the
// checkSumAdjustment field at offset 8 is taken to be zero.
func headChecksum(data []byte) uint32 {
	sum := Checksum(data)
	if len(data) >= 12 {
		sum -= binary.BigEndian.Uint32(data[8:])
	} else if len(data) > 8 {
		var adj [4]byte
		copy(adj[:], data[8:])
		sum -= binary.BigEndian.Uint32(adj[:])
	}
	return sum
}

// VerifyChecksums compares the stored checksum of every table with the
// table contents.  If a mismatch is found, a ChecksumMismatch error for
// the first affected table (in tag order) is returned.
func (info *Info) VerifyChecksums() error {
	names := make([]string, 0, len(info.Toc))
	for name := range info.Toc {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if !info.ChecksumOK(name) {
			return &fonterror.Error{Kind: fonterror.ChecksumMismatch, Table: name}
		}
	}
	return nil
}

// ChecksumOK reports whether the stored checksum of the given table
// matches the table contents.  The result is false for missing tables.
func (info *Info) ChecksumOK(tableName string) bool {
	rec, ok := info.Toc[tableName]
	if !ok {
		return false
	}
	data := info.data[rec.Offset : rec.Offset+rec.Length]
	var sum uint32
	if tableName == "head" {
		sum = headChecksum(data)
	} else {
		sum = Checksum(data)
	}
	return sum == rec.Checksum
}
