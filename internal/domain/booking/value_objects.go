package booking

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the calendar-date layout used for check-in/check-out values,
// both on the wire and in the persisted collection.
const DateFormat = "2006-01-02"

var ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")

// NightsBetween computes the whole-day span between two instants, rounding
// fractional days up. It deliberately returns the absolute magnitude and does
// not validate ordering; ordering is enforced once, by NewStay.
func NightsBetween(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// Stay is a validated check-in/check-out date range.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if !checkOut.After(checkIn) {
		return Stay{}, ErrCheckOutNotAfterCheckIn
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return NightsBetween(s.checkIn, s.checkOut)
}

// Money is an amount in whole rupiah. The catalog only deals in whole
// currency units, so there is no fractional handling.
type Money int64

// Format renders the amount with dot-grouped thousands and the Rp marker,
// e.g. Money(1500000).Format() == "Rp 1.500.000".
func (m Money) Format() string {
	n := int64(m)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return "Rp " + sign + b.String()
}
