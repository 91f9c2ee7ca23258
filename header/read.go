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

// Package header reads the file header and table directory of sfnt font
// files.
//
// Plain TrueType and OpenType files, Apple "true" fonts and TrueType
// collections ("ttcf") are supported.  For collections, one face is
// selected and the directory of this face is returned.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff
package header

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/fontinfo/fonterror"
)

// The scaler types recognised by [Parse].
const (
	ScalerTypeTrueType   = 0x00010000
	ScalerTypeCFF        = 0x4F54544F // "OTTO"
	ScalerTypeApple      = 0x74727565 // "true"
	ScalerTypeCollection = 0x74746366 // "ttcf"
)

// Flavor describes the kind of outlines a font face uses.
type Flavor int

// These are the supported font flavors.
const (
	FlavorTrueType Flavor = iota + 1
	FlavorCFF
	FlavorApple
)

func (f Flavor) String() string {
	switch f {
	case FlavorTrueType:
		return "TrueType"
	case FlavorCFF:
		return "CFF"
	case FlavorApple:
		return "TrueType (Apple)"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Info describes the table directory of one font face.
type Info struct {
	Flavor     Flavor
	ScalerType uint32
	Toc        map[string]Record

	// NumFaces is the number of faces in the file.  This is 1 unless the
	// file is a font collection.
	NumFaces int

	// FaceOffset is the position of the face's table directory within the
	// file.
	FaceOffset uint32

	// BadSearchRange is set if the searchRange, entrySelector or
	// rangeShift fields disagree with the number of tables.  These fields
	// are advisory and are otherwise ignored.
	BadSearchRange bool

	data []byte
}

// Record contains the directory entry of a single table.
type Record struct {
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Parse reads the table directory of the font face with the given index.
// Index 0 must be used for files which are not font collections.
//
// The returned Info refers to data, which must not be modified while the
// Info is in use.
func Parse(data []byte, faceIndex int) (*Info, error) {
	if len(data) < 12 {
		return nil, fonterror.Malformed("file too short")
	}

	numFaces := 1
	faceOffset := uint32(0)
	scalerType := binary.BigEndian.Uint32(data)
	if scalerType == ScalerTypeCollection {
		// majorVersion, minorVersion, numFonts, offsets[numFonts]
		n := binary.BigEndian.Uint32(data[8:])
		if n == 0 || uint64(n) > uint64(len(data)-12)/4 {
			return nil, fonterror.Malformed("invalid number of collection faces")
		}
		numFaces = int(n)
		if faceIndex < 0 || faceIndex >= numFaces {
			return nil, fonterror.Malformed(
				fmt.Sprintf("face index %d out of range (%d faces)", faceIndex, numFaces))
		}
		faceOffset = binary.BigEndian.Uint32(data[12+4*faceIndex:])
		if uint64(faceOffset)+12 > uint64(len(data)) {
			return nil, fonterror.Malformed("face directory beyond end of file")
		}
		scalerType = binary.BigEndian.Uint32(data[faceOffset:])
	} else if faceIndex != 0 {
		return nil, fonterror.Malformed(
			fmt.Sprintf("face index %d out of range (1 face)", faceIndex))
	}

	var flavor Flavor
	switch scalerType {
	case ScalerTypeTrueType:
		flavor = FlavorTrueType
	case ScalerTypeCFF:
		flavor = FlavorCFF
	case ScalerTypeApple:
		flavor = FlavorApple
	default:
		return nil, fonterror.Malformed(fmt.Sprintf("unknown scaler type 0x%08x", scalerType))
	}

	dir := data[faceOffset:]
	numTables := int(binary.BigEndian.Uint16(dir[4:]))
	if numTables == 0 {
		return nil, fonterror.Malformed("no tables")
	}
	dirEnd := 12 + 16*numTables
	if dirEnd > len(dir) {
		return nil, fonterror.Malformed("table directory extends beyond end of file")
	}

	info := &Info{
		Flavor:     flavor,
		ScalerType: scalerType,
		Toc:        make(map[string]Record, numTables),
		NumFaces:   numFaces,
		FaceOffset: faceOffset,
		data:       data,
	}

	searchRange := binary.BigEndian.Uint16(dir[6:])
	entrySelector := binary.BigEndian.Uint16(dir[8:])
	rangeShift := binary.BigEndian.Uint16(dir[10:])
	sel := bits.Len(uint(numTables)) - 1
	if int(searchRange) != 16<<sel ||
		int(entrySelector) != sel ||
		int(rangeShift) != 16*numTables-16<<sel {
		info.BadSearchRange = true
	}

	headerStart := uint64(faceOffset)
	headerEnd := headerStart + uint64(dirEnd)
	for i := 0; i < numTables; i++ {
		rec := dir[12+16*i : 28+16*i]
		name := string(rec[:4])
		r := Record{
			Checksum: binary.BigEndian.Uint32(rec[4:]),
			Offset:   binary.BigEndian.Uint32(rec[8:]),
			Length:   binary.BigEndian.Uint32(rec[12:]),
		}

		if _, seen := info.Toc[name]; seen {
			return nil, fonterror.Malformed(fmt.Sprintf("duplicate table %q", name))
		}
		start := uint64(r.Offset)
		end := start + uint64(r.Length)
		if end > 1<<32-1 || end > uint64(len(data)) {
			return nil, fonterror.Malformed(fmt.Sprintf("table %q extends beyond end of file", name))
		}
		if r.Length > 0 && start < headerEnd && end > headerStart {
			return nil, fonterror.Malformed(fmt.Sprintf("table %q overlaps the table directory", name))
		}
		info.Toc[name] = r
	}

	return info, nil
}

// Has returns true if all the given tables are present in the font.
func (info *Info) Has(tableNames ...string) bool {
	for _, name := range tableNames {
		if _, ok := info.Toc[name]; !ok {
			return false
		}
	}
	return true
}

// Find returns the directory entry for the given table.
func (info *Info) Find(tableName string) (Record, error) {
	rec, ok := info.Toc[tableName]
	if !ok {
		return rec, &fonterror.Error{Kind: fonterror.TableMissing, Table: tableName}
	}
	return rec, nil
}

// TableBytes returns the contents of the given table.
// The returned slice shares memory with the font data.  Its capacity is
// clipped to the table length, so that the data following the table
// cannot be reached through it.
func (info *Info) TableBytes(tableName string) ([]byte, error) {
	rec, err := info.Find(tableName)
	if err != nil {
		return nil, err
	}
	start := rec.Offset
	end := rec.Offset + rec.Length
	return info.data[start:end:end], nil
}

// Tags returns the names of all tables, ordered by their position in the
// file.
func (info *Info) Tags() []string {
	names := make([]string, 0, len(info.Toc))
	for name := range info.Toc {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		ra, rb := info.Toc[a], info.Toc[b]
		if ra.Offset != rb.Offset {
			if ra.Offset < rb.Offset {
				return -1
			}
			return 1
		}
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	})
	return names
}
