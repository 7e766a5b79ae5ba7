package date

import "time"

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// AddDays shifts t by n calendar days, honoring DST transitions the way
// time.AddDate does.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts t by n calendar months, clamping to the last day of the
// target month instead of overflowing: January 31 plus one month is
// February 28 (or 29), not March 3.
func AddMonths(t time.Time, n int) time.Time {
	shifted := t.AddDate(0, n, 0)
	// AddDate normalizes an overflowed day into the next month.
	want := ((int(t.Month())-1+n)%12+12)%12 + 1
	if int(shifted.Month()) != want {
		shifted = shifted.AddDate(0, 0, -shifted.Day())
	}
	return shifted
}

// IsSameDay reports whether a and b fall on the same calendar day in their
// respective locations.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	sign := 1
	if b.Before(a) {
		a, b = b, a
		sign = -1
	}
	days := 0
	for cur := StartOfDay(a); cur.Before(StartOfDay(b)); cur = cur.AddDate(0, 0, 1) {
		days++
	}
	return sign * days
}

// IsBetween reports whether t lies in the inclusive range [from, to].
func IsBetween(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// Age returns full years elapsed from birthday to now.
func Age(birthday, now time.Time) int {
	years := now.Year() - birthday.Year()
	anniversary := birthday.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
