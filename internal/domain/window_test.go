package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowContains(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 23, 59, 59, 999999000, time.UTC)

	exclusive := Window{Start: start, End: end}
	assert.False(t, exclusive.Contains(start))
	assert.True(t, exclusive.Contains(start.Add(time.Microsecond)))
	assert.True(t, exclusive.Contains(end))
	assert.False(t, exclusive.Contains(end.Add(time.Microsecond)))

	inclusive := Window{Start: start, StartInclusive: true, End: end}
	assert.True(t, inclusive.Contains(start))
	assert.False(t, inclusive.Contains(start.Add(-time.Microsecond)))

	open := Window{Start: start}
	assert.True(t, open.Contains(start.AddDate(10, 0, 0)))
}
