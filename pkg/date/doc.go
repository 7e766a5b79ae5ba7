// Package date provides calendar-field helpers over time.Time: day and
// month boundaries, calendar arithmetic and comparisons.
//
// All helpers respect the location of their argument and never mutate it.
// AddMonths differs from time.Time.AddDate in one deliberate way: adding a
// month to a day the target month does not have clamps to that month's last
// day instead of rolling over into the following month.
package date
