package helper

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// method to convert from seconds to minutes:seconds.milliseconds
func SecondsToMinutes(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	minutes := int(seconds / 60)
	seconds = seconds - float64(minutes*60)
	milliseconds := int((seconds-float64(int(seconds)))*1000 + 0.5)
	if milliseconds >= 1000 {
		milliseconds -= 1000
		seconds += 1
	}
	return fmt.Sprintf("%d:%02d.%03d", minutes, int(seconds), milliseconds)
}

func SecondsToDiff(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("+%.3fs", seconds)
}

// method to convert to seconds and 3 milliseconds
func ToSectorTime(t float64) string {
	if t <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", t)
}

// convert name to a hash with a limit of 15 characters
func ToID(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprint(h.Sum32())
}

// MetersToKm renders a distance along the lap for axis labels.
func MetersToKm(meters float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", meters/1000.0), "0"), ".")
}
