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

// Package fonterror implements the errors reported when a font file
// cannot be analysed.
//
// All format problems are reported as a *[Error].  The Kind field
// classifies the problem, and the Table field names the affected
// table, if any.  Errors can be matched by kind using [errors.Is]
// together with the sentinel values defined in this package:
//
//	if errors.Is(err, fonterror.ErrTableTooShort) { ... }
package fonterror

import (
	"errors"
	"strconv"
)

// Kind classifies the ways in which a font file can be rejected.
type Kind int

// These are the supported error kinds.
const (
	// MalformedContainer means that the file header or the table
	// directory is damaged.
	MalformedContainer Kind = iota + 1

	// MandatoryTableMissing means that a table which is required for
	// the analysis is not present in the font.
	MandatoryTableMissing

	// TableMissing means that a table was requested which is not present
	// in the font.
	TableMissing

	// InvalidUnitsPerEm means that the unitsPerEm value in the "head"
	// table is outside the range 16 to 16384.
	InvalidUnitsPerEm

	// ChecksumMismatch means that the stored checksum of a table does not
	// match its contents.
	ChecksumMismatch

	// TableTooShort means that a table ended before all required fields
	// could be read.
	TableTooShort

	// InvalidTable means that a table contains values which make it
	// impossible to interpret.
	InvalidTable
)

func (k Kind) String() string {
	switch k {
	case MalformedContainer:
		return "malformed container"
	case MandatoryTableMissing:
		return "mandatory table missing"
	case TableMissing:
		return "table missing"
	case InvalidUnitsPerEm:
		return "invalid unitsPerEm"
	case ChecksumMismatch:
		return "checksum mismatch"
	case TableTooShort:
		return "table too short"
	case InvalidTable:
		return "invalid table"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the error type for all problems with the font data.
type Error struct {
	Kind   Kind
	Table  string // table tag, empty if the problem is not table specific
	Reason string // optional details
}

func (err *Error) Error() string {
	msg := "sfnt"
	if err.Table != "" {
		msg += "/" + err.Table
	}
	msg += ": " + err.Kind.String()
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	return msg
}

// Is reports whether target is an *Error of the same kind.
// The table tag and the reason are ignored.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// Sentinel values for use with [errors.Is].
var (
	ErrMalformedContainer    = &Error{Kind: MalformedContainer}
	ErrMandatoryTableMissing = &Error{Kind: MandatoryTableMissing}
	ErrTableMissing          = &Error{Kind: TableMissing}
	ErrInvalidUnitsPerEm     = &Error{Kind: InvalidUnitsPerEm}
	ErrChecksumMismatch      = &Error{Kind: ChecksumMismatch}
	ErrTableTooShort         = &Error{Kind: TableTooShort}
	ErrInvalidTable          = &Error{Kind: InvalidTable}
)

// Malformed returns a MalformedContainer error.
func Malformed(reason string) error {
	return &Error{Kind: MalformedContainer, Reason: reason}
}

// TooShort returns a TableTooShort error for the given table.
func TooShort(table string) error {
	return &Error{Kind: TableTooShort, Table: table}
}

// Invalid returns an InvalidTable error for the given table.
func Invalid(table, reason string) error {
	return &Error{Kind: InvalidTable, Table: table, Reason: reason}
}

// KindOf returns the kind of err, or 0 if err is not (and does not wrap)
// an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsMissing returns true if err indicates a missing table.
func IsMissing(err error) bool {
	k := KindOf(err)
	return k == TableMissing || k == MandatoryTableMissing
}
