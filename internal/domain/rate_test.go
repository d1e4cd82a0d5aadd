package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRateRecord_RatePerPoun(t *testing.T) {
	r := RateRecord{RatePerGram: decimal.RequireFromString("6123.45")}
	require.True(t, r.RatePerPoun().Equal(decimal.RequireFromString("48987.6")))
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "13:00", want: TimeOfDay{Hour: 13}},
		{in: "00:00", want: TimeOfDay{}},
		{in: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{in: "09:05", want: TimeOfDay{Hour: 9, Minute: 5}},
		{in: "9:05", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1300", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.in, got.String())
		})
	}
}

func TestInstrument_String(t *testing.T) {
	require.Equal(t, "gold/22k", Instrument{Metal: MetalGold, Karat: Karat22}.String())
}
