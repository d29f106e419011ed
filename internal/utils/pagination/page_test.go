package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	page, limit := Normalize(0, 0, 10, 50)
	assert.Equal(t, 1, page, "page below 1 should clamp to 1")
	assert.Equal(t, 10, limit, "zero limit should take the default")

	page, limit = Normalize(3, 500, 10, 50)
	assert.Equal(t, 3, page, "valid page should pass through")
	assert.Equal(t, 50, limit, "oversized limit should clamp to the max")

	page, limit = Normalize(-5, -1, 10, 50)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestBuild(t *testing.T) {
	meta := Build(1, 10, 21)
	assert.Equal(t, 3, meta.TotalPages, "21 rows at 10 per page is 3 pages")
	assert.True(t, meta.HasMore)

	meta = Build(3, 10, 21)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.False(t, meta.HasMore, "last page has no more")

	meta = Build(1, 10, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasMore)
	assert.Equal(t, int64(0), meta.Total)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 90, Offset(10, 10))
}
