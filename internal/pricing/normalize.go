// Package pricing turns the heterogeneous price values the upstream APIs
// return into comparable integers.
package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Sentinel is the normalized value for missing or unparseable prices.
// It is larger than any realistic price so such items sort last and
// never win the cheapest flag.
const Sentinel int64 = 1_000_000_000_000

// Normalize converts a raw price into an integer comparison key.
// Providers may send prices as JSON numbers, decorated strings like
// "1,980円", or omit them entirely. Anything that cannot be parsed
// degrades to Sentinel; Normalize never fails.
func Normalize(price any) int64 {
	switch v := price.(type) {
	case nil:
		return Sentinel
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Sentinel
		}
		return int64(f)
	case string:
		s := strings.ReplaceAll(v, ",", "")
		s = strings.ReplaceAll(s, "円", "")
		s = strings.TrimSpace(s)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Sentinel
		}
		return int64(f)
	default:
		return Sentinel
	}
}
