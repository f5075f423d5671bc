package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateParam(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"valid", "20200115", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"trimmed", " 20200115 ", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"garbage falls back to today", "notadate", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"empty falls back to today", "", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"wrong length falls back", "202001", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDateParam(tt.input, now))
		})
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"0", 0},
		{"-3", -3},
		{"abc", -1},
		{"", -1},
		{"4.5", -1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIntParam(tt.input))
		})
	}
}

func TestParseDaysParam(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"30", 30},
		{" 7 ", 7},
		{"0", 0},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDaysParam(tt.input))
		})
	}
}

func TestParseDecimalParam(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"8.5", 8.5},
		{"9", 9},
		{" 7.25 ", 7.25},
		{"abc", -1},
		{"", -1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDecimalParam(tt.input))
		})
	}
}
