package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 28)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-08-28"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDate_ScanDropsTimeOfDay(t *testing.T) {
	var d Date
	err := d.Scan(time.Date(2026, time.August, 28, 17, 45, 12, 0, time.UTC))

	assert.NoError(t, err)
	assert.True(t, d.Equal(NewDate(2026, time.August, 28)))
}

func TestDate_Ordering(t *testing.T) {
	earlier := NewDate(2026, time.August, 27)
	later := NewDate(2026, time.August, 28)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, later.After(later))
}
