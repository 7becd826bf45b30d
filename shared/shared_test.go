package shared_test

import (
	"deskbooker/shared"
	"deskbooker/shared/dto"
	"reflect"
	"testing"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "maybe",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 10, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "with remainder", total: 21, limit: 10, expected: 3},
		{name: "total less than limit", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.CalculateTotalPage(tt.total, tt.limit); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(5, "id", "desk_bookings")

	where, args := result.GetWhereClause()

	if where != "(desk_bookings.id = :id)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["id"] != 5 {
		t.Errorf("expected id arg to be 5, got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("desk:get", 7); key != "desk:get:7" {
		t.Errorf("expected desk:get:7, got %s", key)
	}

	if key := shared.BuildCacheKey("limiter"); key != "limiter" {
		t.Errorf("expected limiter, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	first := dto.NewFilterGroup(dto.FilterGroupOperatorAnd)
	first.AddIfPresent("desks", "location", "north")

	second := dto.NewFilterGroup(dto.FilterGroupOperatorAnd)
	second.AddIfPresent("desks", "location", "north")

	other := dto.NewFilterGroup(dto.FilterGroupOperatorAnd)
	other.AddIfPresent("desks", "location", "south")

	keyFirst := shared.BuildCacheKeyWithQuery("desk:gets", params, first)
	keySecond := shared.BuildCacheKeyWithQuery("desk:gets", params, second)
	keyOther := shared.BuildCacheKeyWithQuery("desk:gets", params, other)

	if keyFirst != keySecond {
		t.Errorf("expected equal queries to share a key, got %s and %s", keyFirst, keySecond)
	}

	if keyFirst == keyOther {
		t.Errorf("expected different filters to produce different keys, got %s", keyFirst)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
