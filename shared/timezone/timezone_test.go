package timezone_test

import (
	"deskbooker/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestParseDate(t *testing.T) {
	day, err := timezone.ParseDate("2020-01-28")
	require.NoError(t, err)

	assert.Equal(t, 2020, day.Year())
	assert.Equal(t, time.January, day.Month())
	assert.Equal(t, 28, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, timezone.GetLocation(), day.Location())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := timezone.ParseDate("28/01/2020")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	withClock := time.Date(2020, 1, 28, 17, 45, 12, 0, timezone.GetLocation())

	day := timezone.Date(withClock)

	assert.Equal(t, time.Date(2020, 1, 28, 0, 0, 0, 0, timezone.GetLocation()), day)
	assert.Equal(t, "2020-01-28", timezone.FormatDate(day))
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))
}
