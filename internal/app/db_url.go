package app

import (
	"net/url"
	"strings"

	"github.com/lib/pq"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// databaseDSN appends disable_prepared_binary_result=yes to URL-style DSNs
// unless the URL already carries the parameter. Key=value DSNs pass through.
func databaseDSN(raw string, disablePreparedBinary bool) string {
	raw = strings.TrimSpace(raw)
	if !disablePreparedBinary || !isURLDSN(raw) {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if query.Has(preparedBinaryParam) {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL reads the database name used as the db.name span attribute.
func dbNameFromURL(raw string) string {
	conn := strings.TrimSpace(raw)
	if isURLDSN(conn) {
		converted, err := pq.ParseURL(conn)
		if err != nil {
			return ""
		}
		conn = converted
	}

	for _, field := range strings.Fields(conn) {
		key, value, ok := strings.Cut(field, "=")
		if ok && key == "dbname" {
			return strings.Trim(value, `"'`)
		}
	}
	return ""
}

func isURLDSN(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}
