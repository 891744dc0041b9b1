package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid", input: "10:00", want: "10:00"},
		{name: "with seconds", input: "10:00:00", want: "10:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "bad hour", input: "25:00", wantErr: true},
		{name: "bad minute", input: "10:75", wantErr: true},
		{name: "garbage", input: "half past ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 12, 20, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan("12:45:00"))
	assert.Equal(t, TimeString("12:45"), ts)

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("not a time").Value()
	assert.Error(t, err)
}
