package postgres

import (
	"database/sql"
	"testing"
)

func TestNullCoalescing(t *testing.T) {
	if got := nullInt(sql.NullInt64{}); got != 0 {
		t.Fatalf("null int should coalesce to 0, got %d", got)
	}
	if got := nullInt(sql.NullInt64{Int64: 7, Valid: true}); got != 7 {
		t.Fatalf("unexpected int: %d", got)
	}

	if got := nullFloat(sql.NullFloat64{}); got != 0 {
		t.Fatalf("null float should coalesce to 0, got %v", got)
	}
	if got := nullFloat(sql.NullFloat64{Float64: 2.5, Valid: true}); got != 2.5 {
		t.Fatalf("unexpected float: %v", got)
	}

	if got := nullString(sql.NullString{}); got != "" {
		t.Fatalf("null string should coalesce to empty, got %q", got)
	}
}

func TestNullIntPtrPreservesAbsence(t *testing.T) {
	if got := nullIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for NULL, got %v", *got)
	}

	got := nullIntPtr(sql.NullInt64{Int64: 1939, Valid: true})
	if got == nil || *got != 1939 {
		t.Fatalf("unexpected value: %v", got)
	}
}
