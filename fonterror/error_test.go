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

package fonterror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Malformed("numTables is zero"), "sfnt: malformed container: numTables is zero"},
		{TooShort("OS/2"), "sfnt/OS/2: table too short"},
		{&Error{Kind: MandatoryTableMissing, Table: "hhea"}, "sfnt/hhea: mandatory table missing"},
		{&Error{Kind: InvalidUnitsPerEm, Table: "head", Reason: "15"}, "sfnt/head: invalid unitsPerEm: 15"},
	}
	for i, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("reading font: %w", &Error{Kind: ChecksumMismatch, Table: "name"})
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Error("wrapped checksum error not recognised")
	}
	if errors.Is(err, ErrTableTooShort) {
		t.Error("error kinds confused")
	}
	if KindOf(err) != ChecksumMismatch {
		t.Errorf("KindOf: got %s", KindOf(err))
	}
	if KindOf(errors.New("other")) != 0 {
		t.Error("KindOf should return 0 for foreign errors")
	}
}

func TestIsMissing(t *testing.T) {
	if !IsMissing(&Error{Kind: TableMissing, Table: "OS/2"}) {
		t.Error("TableMissing not recognised")
	}
	if !IsMissing(&Error{Kind: MandatoryTableMissing, Table: "maxp"}) {
		t.Error("MandatoryTableMissing not recognised")
	}
	if IsMissing(TooShort("post")) || IsMissing(nil) {
		t.Error("false positive")
	}
}
