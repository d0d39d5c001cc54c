// internal/extract/duration.go
package extract

import (
	"regexp"
	"strconv"
)

// durationPattern matches the ISO-8601 duration subset the site emits in
// meta[itemprop=duration] content values: PT[nH][nM][nS].
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts a PT#H#M#S duration string to total seconds.
// Absent components count as zero; an unparsable string yields 0, never
// an error.
func ParseDuration(duration string) int64 {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}

	hours := parseComponent(match[1])
	minutes := parseComponent(match[2])
	seconds := parseComponent(match[3])

	return hours*3600 + minutes*60 + seconds
}

func parseComponent(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
