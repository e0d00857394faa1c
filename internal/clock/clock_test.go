package clock

import (
	"testing"

	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/Flyrell/timepattern/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(n int) *int { return &n }

func period(p pattern.DayPeriod) *pattern.DayPeriod { return &p }

func TestFromResult(t *testing.T) {
	tests := []struct {
		name    string
		input   pattern.Result
		want    TimeOfDay
		wantErr bool
	}{
		// 12-hour
		{name: "9:30 am", input: pattern.Result{Hour: num(9), Minute: num(30), Period: period(pattern.BeforeMidday)}, want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "9:30 pm", input: pattern.Result{Hour: num(9), Minute: num(30), Period: period(pattern.AfterMidday)}, want: TimeOfDay{Hour: 21, Minute: 30}},
		{name: "12 am", input: pattern.Result{Hour: num(12), Period: period(pattern.BeforeMidday)}, want: TimeOfDay{Hour: 0}},
		{name: "12 pm", input: pattern.Result{Hour: num(12), Period: period(pattern.AfterMidday)}, want: TimeOfDay{Hour: 12}},
		{name: "12:30:15 pm", input: pattern.Result{Hour: num(12), Minute: num(30), Second: num(15), Period: period(pattern.AfterMidday)}, want: TimeOfDay{Hour: 12, Minute: 30, Second: 15}},

		// 24-hour
		{name: "14:00", input: pattern.Result{Hour: num(14), Minute: num(0)}, want: TimeOfDay{Hour: 14}},
		{name: "00:00:00", input: pattern.Result{Hour: num(0), Minute: num(0), Second: num(0)}, want: TimeOfDay{}},
		{name: "23:59:59", input: pattern.Result{Hour: num(23), Minute: num(59), Second: num(59)}, want: TimeOfDay{Hour: 23, Minute: 59, Second: 59}},
		{name: "minutes only", input: pattern.Result{Minute: num(45)}, want: TimeOfDay{Minute: 45}},
		{name: "empty", input: pattern.Result{}, want: TimeOfDay{}},

		// Errors
		{name: "hour 25", input: pattern.Result{Hour: num(25)}, wantErr: true},
		{name: "hour 13 pm", input: pattern.Result{Hour: num(13), Period: period(pattern.AfterMidday)}, wantErr: true},
		{name: "hour 0 am", input: pattern.Result{Hour: num(0), Period: period(pattern.BeforeMidday)}, wantErr: true},
		{name: "minute 60", input: pattern.Result{Hour: num(9), Minute: num(60)}, wantErr: true},
		{name: "second 99", input: pattern.Result{Second: num(99)}, wantErr: true},
		{name: "period without hour", input: pattern.Result{Minute: num(5), Period: period(pattern.AfterMidday)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromResult(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeOfDay
		want bool
	}{
		{"earlier hour", TimeOfDay{8, 0, 0}, TimeOfDay{9, 0, 0}, true},
		{"later hour", TimeOfDay{10, 0, 0}, TimeOfDay{9, 0, 0}, false},
		{"same hour earlier minute", TimeOfDay{9, 0, 0}, TimeOfDay{9, 30, 0}, true},
		{"same minute earlier second", TimeOfDay{9, 30, 1}, TimeOfDay{9, 30, 2}, true},
		{"equal", TimeOfDay{9, 0, 0}, TimeOfDay{9, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00:00", TimeOfDay{Hour: 9}.String())
	assert.Equal(t, "17:30:05", TimeOfDay{Hour: 17, Minute: 30, Second: 5}.String())
}

func TestFromExtractedResult(t *testing.T) {
	m, err := pattern.Compile("h:mm a", "en", locale.Builtin())
	require.NoError(t, err)

	res, ok := m.Extract("9:05 PM")
	require.True(t, ok)

	got, err := FromResult(res)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 21, Minute: 5}, got)
}
