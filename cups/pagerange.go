package cups

import (
	"sort"
	"strconv"
	"strings"

	"github.com/printkit/ipp"
)

// ParsePageRanges parses a comma-separated page-range string such as
// "1-3,5,8,10-13" into ascending, disjoint rangeOfInteger values. A
// malformed range (non-numeric, or lower > upper) is reported as an
// InvalidArgumentError.
func ParsePageRanges(s string) ([]ipp.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var ranges []ipp.Range
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		r, err := parsePageRange(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Lower < ranges[j].Lower })
	merged := ranges[:0]
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.Lower <= merged[n-1].Upper {
			if r.Upper > merged[n-1].Upper {
				merged[n-1].Upper = r.Upper
			}
			continue
		}
		merged = append(merged, r)
	}

	return merged, nil
}

func parsePageRange(part string) (ipp.Range, error) {
	if !strings.Contains(part, "-") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return ipp.Range{}, &InvalidArgumentError{Detail: "page range: " + part}
		}
		return ipp.Range{Lower: n, Upper: n}, nil
	}

	fields := strings.SplitN(part, "-", 2)
	lower, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
	upper, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err1 != nil || err2 != nil {
		return ipp.Range{}, &InvalidArgumentError{Detail: "page range: " + part}
	}
	if lower > upper {
		return ipp.Range{}, &InvalidArgumentError{Detail: "page range: " + part}
	}

	return ipp.Range{Lower: lower, Upper: upper}, nil
}
