package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPages(t *testing.T) {
	assert.Equal(t, 1, NumPages(0, 4))
	assert.Equal(t, 1, NumPages(1, 4))
	assert.Equal(t, 1, NumPages(4, 4))
	assert.Equal(t, 2, NumPages(5, 4))
	assert.Equal(t, 3, NumPages(9, 4))
	assert.Equal(t, 1, NumPages(10, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 1, Clamp(-5, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 3, Clamp(3, 3))
	assert.Equal(t, 3, Clamp(99, 3))
	assert.Equal(t, 1, Clamp(7, 1))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), Offset(1, 4))
	assert.Equal(t, int64(4), Offset(2, 4))
	assert.Equal(t, int64(0), Offset(0, 4))
}

// Concatenating every page must cover the whole set exactly once.
func TestPagesCoverTotal(t *testing.T) {
	const pageSize = 4
	for total := int64(0); total <= 25; total++ {
		numPages := NumPages(total, pageSize)
		var covered int64
		for page := 1; page <= numPages; page++ {
			start := Offset(page, pageSize)
			end := start + pageSize
			if end > total {
				end = total
			}
			if start > total {
				start = total
			}
			covered += end - start
		}
		assert.Equal(t, total, covered, "total=%d", total)
	}
}
