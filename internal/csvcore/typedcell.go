package csvcore

// TypedCell is the uniform interpretation surface (§4.4) every column
// consumer — sort, aggregate, render — goes through. Each recognizer is
// idempotent and memoized on first call (§3, "Typed cell").

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// foldCase does Unicode case folding for null/boolean token matching
// (§3: "case-insensitively matches a null token"), grounded on
// golang.org/x/text/cases rather than strings.ToLower's ASCII-biased fold.
var foldCase = cases.Fold()

var booleanTrue = map[string]bool{"true": true, "yes": true, "t": true, "y": true, "1": true}
var booleanFalse = map[string]bool{"false": true, "no": true, "f": true, "n": true, "0": true}

// TypedCell pairs a tokenized field with the run Context needed to
// interpret it, caching each accessor's result after first use.
type TypedCell struct {
	field Field
	ctx   *Context

	trimmedLower string

	nullChecked bool
	null        bool

	boolChecked bool
	isBool      bool
	boolVal     bool

	numChecked bool
	isNumber   bool
	num        ParsedNumber

	dateChecked bool
	isDate      bool
	dateVal     time.Time

	datetimeChecked bool
	isDatetime      bool
	datetimeVal     time.Time

	timedeltaChecked bool
	isTimedelta      bool
	timedeltaVal     Timedelta
}

// NewTypedCell builds a TypedCell over field under ctx.
func NewTypedCell(field Field, ctx *Context) *TypedCell {
	return &TypedCell{field: field, ctx: ctx, trimmedLower: foldCase.String(strings.TrimSpace(field.Value))}
}

// IsNull reports whether the cell is a configured null token. Quoted cells
// are never null (§3, invariant 2).
func (c *TypedCell) IsNull() bool {
	if c.nullChecked {
		return c.null
	}
	c.nullChecked = true
	if c.field.Quoted {
		return false
	}
	c.null = c.ctx.isNullToken(c.trimmedLower)
	return c.null
}

// IsBoolean reports whether the cell is a recognized boolean literal.
// Quoted cells are never boolean (§3, invariant 2).
func (c *TypedCell) IsBoolean() bool {
	if c.boolChecked {
		return c.isBool
	}
	c.boolChecked = true
	if c.field.Quoted || c.IsNull() {
		return false
	}
	if booleanTrue[c.trimmedLower] {
		c.isBool, c.boolVal = true, true
	} else if booleanFalse[c.trimmedLower] {
		c.isBool, c.boolVal = true, false
	}
	return c.isBool
}

// Bool returns the cell's boolean value. Call only when IsBoolean is true.
func (c *TypedCell) Bool() bool { c.IsBoolean(); return c.boolVal }

// IsNum reports whether the cell is a locale-recognized number. Quoted
// cells are never numeric (§3, invariant 2), except that '0'/'1' are
// numeric by the boolean/numeric dual-classification rule.
func (c *TypedCell) IsNum() bool {
	if c.numChecked {
		return c.isNumber
	}
	c.numChecked = true
	if c.IsNull() {
		return false
	}
	if c.field.Quoted {
		if c.trimmedLower == "0" || c.trimmedLower == "1" {
			n, ok := ParseNumber(c.trimmedLower, c.ctx.Locale, c.ctx.NoLeadingZeroes)
			if ok {
				c.isNumber, c.num = true, n
			}
		}
		return c.isNumber
	}
	n, ok := ParseNumber(c.field.Value, c.ctx.Locale, c.ctx.NoLeadingZeroes)
	if ok {
		c.isNumber, c.num = true, n
	}
	return c.isNumber
}

// Num returns the cell's parsed number. Call only when IsNum is true.
func (c *TypedCell) Num() ParsedNumber { c.IsNum(); return c.num }

// Precision returns digits after the decimal point in the source text, or
// 0 for a non-numeric cell (§3, invariant 3).
func (c *TypedCell) Precision() int {
	if !c.IsNum() {
		return 0
	}
	return c.num.Precision
}

// IsStr is the fallback classification: always true.
func (c *TypedCell) IsStr() bool { return true }

// FieldValue returns the cell's raw, already-trimmed-and-unescaped text.
func (c *TypedCell) FieldValue() string { return c.field.Value }

// Date attempts to parse the cell as a date. Quoted cells are never dates
// (§3, invariant 2).
func (c *TypedCell) Date() (time.Time, bool) {
	if c.dateChecked {
		return c.dateVal, c.isDate
	}
	c.dateChecked = true
	if c.field.Quoted || c.IsNull() {
		return time.Time{}, false
	}
	c.dateVal, c.isDate = ParseDate(c.field.Value, *c.ctx)
	return c.dateVal, c.isDate
}

// DateTime attempts to parse the cell as a datetime. Quoted cells are
// never datetimes (§3, invariant 2).
func (c *TypedCell) DateTime() (time.Time, bool) {
	if c.datetimeChecked {
		return c.datetimeVal, c.isDatetime
	}
	c.datetimeChecked = true
	if c.field.Quoted || c.IsNull() {
		return time.Time{}, false
	}
	c.datetimeVal, c.isDatetime = ParseDateTime(c.field.Value, *c.ctx)
	return c.datetimeVal, c.isDatetime
}

// TimedeltaTuple attempts to parse the cell as a timedelta. Quoted cells
// are never timedeltas (§3, invariant 2).
func (c *TypedCell) TimedeltaTuple() (Timedelta, bool) {
	if c.timedeltaChecked {
		return c.timedeltaVal, c.isTimedelta
	}
	c.timedeltaChecked = true
	if c.field.Quoted || c.IsNull() {
		return Timedelta{}, false
	}
	c.timedeltaVal, c.isTimedelta = ParseTimedelta(c.field.Value)
	return c.timedeltaVal, c.isTimedelta
}
