package repository

import "time"

// dayBounds returns the half-open [start, next) date strings covering one
// calendar day. Range comparison matches rows on every dialect the tests
// run against, whether the column stores a bare date or a midnight datetime.
func dayBounds(date time.Time) (string, string) {
	return date.Format("2006-01-02"), date.AddDate(0, 0, 1).Format("2006-01-02")
}
