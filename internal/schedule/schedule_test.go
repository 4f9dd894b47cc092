package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWithinWindow(t *testing.T) {
	const weekdays = "Lunes a Viernes 07:00-19:00"

	tests := []struct {
		name      string
		schedule  string
		requested string
		want      bool
	}{
		{name: "inside", schedule: weekdays, requested: "12:00", want: true},
		{name: "after end", schedule: weekdays, requested: "20:00", want: false},
		{name: "before start", schedule: weekdays, requested: "06:59", want: false},
		{name: "start bound", schedule: weekdays, requested: "07:00", want: true},
		{name: "end bound", schedule: weekdays, requested: "19:00", want: true},
		{name: "seconds ignored", schedule: weekdays, requested: "10:30:00", want: true},
		{name: "single day", schedule: "Sábado 08:00-12:00", requested: "09:15", want: true},
		{name: "no range", schedule: "no time here", requested: "12:00", want: false},
		{name: "empty schedule", schedule: "", requested: "12:00", want: false},
		{name: "unpadded request", schedule: weekdays, requested: "9:00", want: false},
		{name: "first range wins", schedule: "Lunes 08:00-09:00, Martes 10:00-11:00", requested: "10:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinWindow(tt.schedule, tt.requested))
		})
	}
}

func TestExpandToDailyWindows(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		want     []DailyWindow
	}{
		{
			name:     "range",
			schedule: "Lunes a Miércoles 08:00-10:00",
			want: []DailyWindow{
				{Day: "Lunes", Window: "08:00-10:00"},
				{Day: "Martes", Window: "08:00-10:00"},
				{Day: "Miércoles", Window: "08:00-10:00"},
			},
		},
		{
			name:     "whole week",
			schedule: "Lunes a Domingo 00:00-23:59",
			want: []DailyWindow{
				{Day: "Lunes", Window: "00:00-23:59"},
				{Day: "Martes", Window: "00:00-23:59"},
				{Day: "Miércoles", Window: "00:00-23:59"},
				{Day: "Jueves", Window: "00:00-23:59"},
				{Day: "Viernes", Window: "00:00-23:59"},
				{Day: "Sábado", Window: "00:00-23:59"},
				{Day: "Domingo", Window: "00:00-23:59"},
			},
		},
		{
			name:     "single day",
			schedule: "Sábado 08:00-12:00",
			want:     []DailyWindow{{Day: "Sábado", Window: "08:00-12:00"}},
		},
		{name: "reversed range", schedule: "Viernes a Lunes 08:00-10:00", want: []DailyWindow{}},
		{name: "unknown day", schedule: "Funday a Viernes 08:00-10:00", want: []DailyWindow{}},
		{name: "accent sensitive", schedule: "Lunes a Miercoles 08:00-10:00", want: []DailyWindow{}},
		{name: "case sensitive", schedule: "lunes 08:00-10:00", want: []DailyWindow{}},
		{name: "garbage", schedule: "siempre", want: []DailyWindow{}},
		{name: "empty", schedule: "", want: []DailyWindow{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandToDailyWindows(tt.schedule))
		})
	}
}

func TestDailyWindow_String(t *testing.T) {
	assert.Equal(t, "Martes 08:00-10:00", DailyWindow{Day: "Martes", Window: "08:00-10:00"}.String())
}
