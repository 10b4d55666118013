package querycache

import (
	"fmt"
	"strconv"
	"strings"
)

// keySep separates tuple parts in a rendered key. Unit separator keeps keys
// unambiguous for any printable part
const keySep = "\x1f"

// Key renders an ordered tuple of primitives into a canonical cache key,
// e.g. Key("repos", "octocat") or Key("search", "rob pike", 5).
// Callers fold parts that are case-insensitive in the domain before keying
func Key(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(keySep)
		}
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(strconv.Itoa(v))
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		case bool:
			b.WriteString(strconv.FormatBool(v))
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}
