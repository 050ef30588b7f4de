package models

import (
	"testing"

	"verse-journal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryList_Value(t *testing.T) {
	v, err := CategoryList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = CategoryList{{Type: domain.CategoryMood, Value: "anxious"}}.Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"mood","value":"anxious"}]`, v)
}

func TestCategoryList_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  CategoryList
	}{
		{"nil", nil, CategoryList{}},
		{"empty string", "", CategoryList{}},
		{"json null", []byte("null"), CategoryList{}},
		{"string", `[{"type":"season","value":"advent"}]`, CategoryList{{Type: domain.CategorySeason, Value: "advent"}}},
		{"bytes", []byte(`[{"type":"topic","value":"grace"}]`), CategoryList{{Type: domain.CategoryTopic, Value: "grace"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CategoryList
			require.NoError(t, c.Scan(tt.input))
			assert.Equal(t, tt.want, c)
		})
	}

	var c CategoryList
	assert.Error(t, c.Scan(42))
	assert.Error(t, c.Scan("{not json"))
}
