package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidOffset is wrapped by every offset, unit and direction parse failure.
var ErrInvalidOffset = errors.New("invalid offset")

// Unit is the granularity of an Offset.
type Unit int

const (
	Day Unit = iota
	Hour
	Minute
	Second
)

// Millis returns the fixed number of milliseconds in one unit.
func (u Unit) Millis() int64 {
	switch u {
	case Hour:
		return 3_600_000
	case Minute:
		return 60_000
	case Second:
		return 1_000
	default:
		return 86_400_000
	}
}

// Duration returns one unit as a time.Duration.
func (u Unit) Duration() time.Duration {
	return time.Duration(u.Millis()) * time.Millisecond
}

func (u Unit) String() string {
	switch u {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	default:
		return "day"
	}
}

// Set parses s into u. Together with String and Type it lets a *Unit be
// used directly as a command-line flag value.
func (u *Unit) Set(s string) error {
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Type names the flag value type.
func (u *Unit) Type() string { return "unit" }

var unitNames = map[string]Unit{
	"d": Day, "day": Day, "days": Day,
	"h": Hour, "hr": Hour, "hrs": Hour, "hour": Hour, "hours": Hour,
	"m": Minute, "min": Minute, "mins": Minute, "minute": Minute, "minutes": Minute,
	"s": Second, "sec": Second, "secs": Second, "second": Second, "seconds": Second,
}

// ParseUnit accepts singular, plural and abbreviated unit names.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Day, fmt.Errorf("%w: unknown unit %q (use day, hour, minute or second)", ErrInvalidOffset, s)
	}
	return u, nil
}

// Direction is the sign of an Offset.
type Direction int

const (
	Earlier Direction = -1
	Later   Direction = 1
)

// Sign returns -1 for Earlier and +1 otherwise.
func (d Direction) Sign() int64 {
	if d == Earlier {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Earlier {
		return "earlier"
	}
	return "later"
}

// Set parses s into d.
func (d *Direction) Set(s string) error {
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Type names the flag value type.
func (d *Direction) Type() string { return "direction" }

var directionNames = map[string]Direction{
	"earlier": Earlier, "ago": Earlier, "before": Earlier, "back": Earlier,
	"later": Later, "after": Later, "more": Later, "ahead": Later,
}

// ParseDirection accepts earlier/ago/before/back and later/after/more/ahead.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Later, fmt.Errorf("%w: unknown direction %q (use earlier or later)", ErrInvalidOffset, s)
	}
	return d, nil
}

// Offset is a signed amount of fixed-length units.
type Offset struct {
	Magnitude int64
	Unit      Unit
	Direction Direction
}

// DeltaMillis is the signed shift in milliseconds. It stays exact far beyond
// the ~292 year range of a time.Duration.
func (o Offset) DeltaMillis() int64 {
	return o.Magnitude * o.Unit.Millis() * o.Direction.Sign()
}

// From applies the offset to base.
func (o Offset) From(base time.Time) time.Time {
	return ApplyOffset(base, o.Magnitude, o.Unit, o.Direction)
}

func (o Offset) String() string {
	unit := o.Unit.String()
	if o.Magnitude != 1 && o.Magnitude != -1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s %s", o.Magnitude, unit, o.Direction)
}

// ApplyOffset moves base by magnitude units in direction. The shift is plain
// millisecond arithmetic: a day is always 86,400,000ms regardless of DST.
// A zero magnitude returns base unchanged; a negative magnitude flips the
// effective direction.
func ApplyOffset(base time.Time, magnitude int64, unit Unit, dir Direction) time.Time {
	if magnitude == 0 {
		return base
	}
	delta := Offset{Magnitude: magnitude, Unit: unit, Direction: dir}.DeltaMillis()
	subMilli := time.Duration(base.Nanosecond() % int(time.Millisecond))
	return time.UnixMilli(base.UnixMilli() + delta).Add(subMilli).In(base.Location())
}

// Yesterday is one day earlier than now.
func Yesterday(now time.Time) time.Time {
	return ApplyOffset(now, 1, Day, Earlier)
}

// Tomorrow is one day later than now.
func Tomorrow(now time.Time) time.Time {
	return ApplyOffset(now, 1, Day, Later)
}

var magnitudeWords = map[string]int64{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// ParseOffset parses phrases like "3 days earlier", "one hour later" or
// "90 seconds ago". A trailing "from ..." clause is ignored.
func ParseOffset(s string) (Offset, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, f := range fields {
		if f == "from" {
			fields = fields[:i]
			break
		}
	}
	if len(fields) != 3 {
		return Offset{}, fmt.Errorf("%w: %q (want \"<n> <unit> <earlier|later>\")", ErrInvalidOffset, s)
	}

	magnitude, ok := magnitudeWords[fields[0]]
	if !ok {
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return Offset{}, fmt.Errorf("%w: bad magnitude %q", ErrInvalidOffset, fields[0])
		}
		magnitude = n
	}

	unit, err := ParseUnit(fields[1])
	if err != nil {
		return Offset{}, err
	}
	dir, err := ParseDirection(fields[2])
	if err != nil {
		return Offset{}, err
	}

	return Offset{Magnitude: magnitude, Unit: unit, Direction: dir}, nil
}
