package pagination

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		defLimit int
		maxLimit int
		want     Params
	}{
		{name: "defaults", defLimit: 10, want: Params{Page: 1, Limit: 10}},
		{name: "galeri default", defLimit: DefaultGaleriLimit, want: Params{Page: 1, Limit: 12}},
		{name: "explicit", page: "3", limit: "5", defLimit: 10, want: Params{Page: 3, Limit: 5}},
		{name: "garbage", page: "abc", limit: "x", defLimit: 10, want: Params{Page: 1, Limit: 10}},
		{name: "non positive", page: "0", limit: "-4", defLimit: 10, want: Params{Page: 1, Limit: 10}},
		{name: "capped", limit: "500", defLimit: 10, maxLimit: AdminMaxLimit, want: Params{Page: 1, Limit: 100}},
		{name: "uncapped", limit: "500", defLimit: 10, want: Params{Page: 1, Limit: 500}},
		{name: "huge page clamped", page: strconv.Itoa(math.MaxInt), limit: "20", defLimit: 10, want: Params{Page: math.MaxInt/20 + 1, Limit: 20}},
		{name: "huge page single item", page: strconv.Itoa(math.MaxInt), limit: "1", defLimit: 10, want: Params{Page: math.MaxInt, Limit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.page, tt.limit, tt.defLimit, tt.maxLimit))
		})
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(2, 10, 25)

	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	last := NewMeta(3, 10, 25)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewMeta(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)

	exact := NewMeta(1, 10, 20)
	assert.Equal(t, 2, exact.TotalPages)
}

func TestParse_OffsetFits(t *testing.T) {
	for _, limit := range []string{"1", "7", "20", strconv.Itoa(math.MaxInt)} {
		p := Parse(strconv.Itoa(math.MaxInt), limit, 10, 0)

		offset := (p.Page - 1) * p.Limit
		assert.GreaterOrEqual(t, offset, 0, "limit %s", limit)
		assert.Equal(t, p.Page-1, offset/p.Limit, "limit %s", limit)
	}
}
