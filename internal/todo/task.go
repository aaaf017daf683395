// Package todo holds the task record, the in-memory store and the board that
// turns store contents into display rows.
package todo

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout due dates are entered in.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

type Task struct {
	ID            int64
	Title         string
	DueDate       string
	DaysRemaining Days
}

// Days is a whole number of days until a due date. It is invalid when the due
// date could not be parsed.
type Days struct {
	N     int
	Valid bool
}

func (d Days) String() string {
	if !d.Valid {
		return "NaN"
	}
	return strconv.Itoa(d.N)
}

func (d Days) Expired() bool {
	return d.Valid && d.N < 0
}

func (d Days) Unexpired() bool {
	return d.Valid && d.N >= 0
}

// DaysUntil returns ceil((due - now) / 24h). The due date is read as midnight UTC.
func DaysUntil(due string, now time.Time) Days {
	t, err := time.Parse(DateLayout, strings.TrimSpace(due))
	if err != nil {
		return Days{}
	}
	n := math.Ceil(float64(t.Sub(now)) / float64(day))
	return Days{N: int(n), Valid: true}
}
