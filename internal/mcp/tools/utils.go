package tools

import (
	"encoding/json"
	"strings"
	"time"
)

// Test seam for date defaults computed relative to "now".
var timeNow = time.Now

const dateLayout = "2006-01-02"

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		if int(v) > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return fallback
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func today() string {
	return timeNow().Format(dateLayout)
}

func daysAgo(n int) string {
	return timeNow().AddDate(0, 0, -n).Format(dateLayout)
}
