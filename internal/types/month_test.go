package types_test

import (
	"testing"
	"time"

	"github.com/findash/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2025-03", types.NewMonth(2025, time.March).String())
}

func TestMonthPrevious(t *testing.T) {
	assert.True(t, types.NewMonth(2025, time.February).Equal(types.NewMonth(2025, time.March).Previous()))

	// January wraps into December of the previous year
	assert.True(t, types.NewMonth(2024, time.December).Equal(types.NewMonth(2025, time.January).Previous()))
}

func TestMonthContains(t *testing.T) {
	month := types.NewMonth(2025, time.March)

	assert.True(t, month.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, month.Contains(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonth(t *testing.T) {
	month, err := types.ParseMonth("2023-11")
	assert.Nil(t, err)
	assert.True(t, types.NewMonth(2023, time.November).Equal(month))

	_, err = types.ParseMonth("not-a-month")
	assert.NotNil(t, err)
}

func TestMonthUnmarshalJSON(t *testing.T) {
	tests := []string{
		`"2022-07"`,
		`"2022-07-15"`,
		`"2022-07-15T12:30:00Z"`,
	}

	for _, data := range tests {
		var month types.Month
		err := month.UnmarshalJSON([]byte(data))
		assert.Nil(t, err, "unmarshaling %s failed", data)
		assert.True(t, types.NewMonth(2022, time.July).Equal(month), "wrong month for %s: %s", data, month)
	}

	var month types.Month
	assert.NotNil(t, month.UnmarshalJSON([]byte(`"July 2022"`)))
}
