package settings

import (
	"strings"
	"time"
)

// WeekdayName is the lower-case English name used as the key of weekly hours.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

func ParseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if WeekdayName(day) == name {
			return day, true
		}
	}
	return 0, false
}
