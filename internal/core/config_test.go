package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigNormalize(t *testing.T) {
	got := RuntimeConfig{Seed: 9, TickRate: -1}.Normalize()
	want := RuntimeConfig{ScreenW: DefaultScreenW, ScreenH: DefaultScreenH, TickRate: DefaultTickRate, Seed: 9}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}

	kept := RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30}.Normalize()
	if kept.ScreenW != 100 || kept.ScreenH != 30 || kept.TickRate != 30 {
		t.Errorf("Normalize() changed valid fields: %+v", kept)
	}
}

func TestRuntimeConfigTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / DefaultTickRate},
	}
	for _, tt := range tests {
		if got := (RuntimeConfig{TickRate: tt.rate}).TickInterval(); got != tt.want {
			t.Errorf("TickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
