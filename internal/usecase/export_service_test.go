package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestExportService_BuildCSV(t *testing.T) {
	t.Parallel()

	service := NewExportService()

	export, err := service.BuildCSV(
		context.Background(),
		"Boston Red Sox",
		"1918",
		"batting",
		[]string{"Player", "AB", "H"},
		[][]string{
			{"Babe Ruth", "317", "95"},
			{"Harry Hooper", "474", "137"},
		},
	)
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}

	if export.Filename != "Boston_Red_Sox_1918_batting.csv" {
		t.Fatalf("unexpected filename: %s", export.Filename)
	}
	want := "Player,AB,H\nBabe Ruth,317,95\nHarry Hooper,474,137\n"
	if string(export.Content) != want {
		t.Fatalf("unexpected csv:\n%s", export.Content)
	}
}

func TestExportService_BuildCSV_NoLabel(t *testing.T) {
	t.Parallel()

	service := NewExportService()

	export, err := service.BuildCSV(
		context.Background(),
		"ruthba01",
		"",
		"career pitching",
		[]string{"Year"},
		[][]string{{"1935"}},
	)
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}
	if export.Filename != "ruthba01_career_pitching.csv" {
		t.Fatalf("unexpected filename: %s", export.Filename)
	}
}

func TestExportService_BuildCSV_Validation(t *testing.T) {
	t.Parallel()

	service := NewExportService()
	ctx := context.Background()

	cases := []struct {
		name    string
		context string
		table   string
		headers []string
		rows    [][]string
	}{
		{"missing context", "", "batting", []string{"a"}, [][]string{{"1"}}},
		{"missing table type", "Red Sox", "", []string{"a"}, [][]string{{"1"}}},
		{"no headers", "Red Sox", "batting", nil, [][]string{{"1"}}},
		{"no rows", "Red Sox", "batting", []string{"a"}, nil},
		{"ragged row", "Red Sox", "batting", []string{"a", "b"}, [][]string{{"1"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.BuildCSV(ctx, tc.context, "1918", tc.table, tc.headers, tc.rows)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestExportService_BuildCSV_QuotesCells(t *testing.T) {
	t.Parallel()

	service := NewExportService()

	export, err := service.BuildCSV(
		context.Background(),
		"team",
		"1900",
		"batting",
		[]string{"Name"},
		[][]string{{`O'Neill, Tip`}},
	)
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}
	if string(export.Content) != "Name\n\"O'Neill, Tip\"\n" {
		t.Fatalf("unexpected csv:\n%s", export.Content)
	}
}
