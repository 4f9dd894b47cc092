package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "09:00:59", want: "09:00"},
		{in: " 23:59 ", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "9h", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date Date `json:"fecha"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"fecha":"2024-03-04"}`), &payload))
	assert.Equal(t, NewDate(2024, 3, 4), payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"2024-03-04"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"fecha":null}`), &payload))
	assert.True(t, payload.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"fecha":"04/03/2024"}`), &payload))
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2024, 3, 4)
	tests := []struct {
		name string
		src  interface{}
	}{
		{name: "time", src: time.Date(2024, 3, 4, 15, 30, 0, 0, time.FixedZone("COT", -5*3600))},
		{name: "bytes", src: []byte("2024-03-04")},
		{name: "datetime text", src: "2024-03-04 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, want, d)
		})
	}

	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, 12, 31).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", v)
}

func TestReservationKind_Status(t *testing.T) {
	status, ok := ReservationKindPast.Status()
	assert.True(t, ok)
	assert.Equal(t, ReservationStatusPast, status)

	_, ok = ReservationKind("Todas").Status()
	assert.False(t, ok)
}
