package changes

import (
	"encoding/json"
	"testing"
	"time"

	apperrors "task-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 3, 4, 10, 15, 30, 123456000, time.UTC)

	tests := []struct {
		name string
		in   string
	}{
		{"rfc3339 nano", "2025-03-04T10:15:30.123456Z"},
		{"rfc3339 offset", "2025-03-04T12:15:30.123456+02:00"},
		{"sql with fraction", "2025-03-04 10:15:30.123456"},
		{"rfc3339 offset with decoded plus", "2025-03-04T12:15:30.123456 02:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	t.Run("sql without fraction is UTC", func(t *testing.T) {
		got, err := ParseTimestamp("2025-03-04 10:15:30")
		require.NoError(t, err)
		assert.True(t, time.Date(2025, 3, 4, 10, 15, 30, 0, time.UTC).Equal(got))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimestamp("yesterday")
		assert.Error(t, err)
	})
}

func TestParseWatermark(t *testing.T) {
	w, err := ParseWatermark("")
	require.NoError(t, err)
	assert.Nil(t, w)

	_, err = ParseWatermark("not a date")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = ParseCount("7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *n)

	_, err = ParseCount("-1")
	assert.True(t, apperrors.IsValidation(err))
	_, err = ParseCount("seven")
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompareTimestamp(t *testing.T) {
	current := ts("2025-03-04T10:15:30.5Z")

	t.Run("first call never signals", func(t *testing.T) {
		res := CompareTimestamp(current, nil)
		assert.False(t, res.HasUpdate)
		require.NotNil(t, res.LastUpdate)
		assert.Equal(t, "2025-03-04T10:15:30.5Z", *res.LastUpdate)
	})

	t.Run("equal watermark", func(t *testing.T) {
		assert.False(t, CompareTimestamp(current, ts("2025-03-04T10:15:30.5Z")).HasUpdate)
	})

	t.Run("equal instant in another zone", func(t *testing.T) {
		assert.False(t, CompareTimestamp(current, ts("2025-03-04T11:15:30.5+01:00")).HasUpdate)
	})

	t.Run("older watermark", func(t *testing.T) {
		assert.True(t, CompareTimestamp(current, ts("2025-03-04T10:15:30Z")).HasUpdate)
	})

	t.Run("newer watermark", func(t *testing.T) {
		assert.False(t, CompareTimestamp(current, ts("2025-03-05T00:00:00Z")).HasUpdate)
	})

	t.Run("scope emptied since last poll", func(t *testing.T) {
		res := CompareTimestamp(nil, ts("2025-03-05T00:00:00Z"))
		assert.True(t, res.HasUpdate)
		assert.Nil(t, res.LastUpdate)
	})

	t.Run("empty scope on first call", func(t *testing.T) {
		res := CompareTimestamp(nil, nil)
		assert.False(t, res.HasUpdate)
		assert.Nil(t, res.LastUpdate)
	})

	t.Run("echoed value compares equal", func(t *testing.T) {
		micro := time.Date(2025, 3, 4, 10, 15, 30, 123456000, time.FixedZone("x", 3600))
		first := CompareTimestamp(&micro, nil)
		known, err := ParseWatermark(*first.LastUpdate)
		require.NoError(t, err)
		assert.False(t, CompareTimestamp(&micro, known).HasUpdate)
	})
}

func TestCompareCount(t *testing.T) {
	two := int64(2)
	three := int64(3)

	assert.False(t, CompareCount(3, nil).HasUpdate)
	assert.False(t, CompareCount(3, &three).HasUpdate)
	assert.True(t, CompareCount(3, &two).HasUpdate)
	assert.True(t, CompareCount(2, &three).HasUpdate, "a drop is also a change")
}

func TestResultJSON(t *testing.T) {
	b, err := json.Marshal(NoUpdate())
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_update":null,"has_update":false}`, string(b))

	b, err = json.Marshal(CompareCount(0, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"has_update":false}`, string(b))
}
