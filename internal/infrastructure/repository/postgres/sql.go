package postgres

import "database/sql"

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// The statistics tables store absent counting stats as NULL. Everything
// downstream of the repositories works with zero-coalesced values, so
// the helpers below are the single place where NULL becomes 0.

func nullInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

func nullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return v.Float64
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// nullIntPtr preserves absence, for fields where NULL is meaningful
// (birth/death years, hall-of-fame year).
func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
