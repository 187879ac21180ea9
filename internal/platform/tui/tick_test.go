package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

func TestTickCmdWaitsForPeriod(t *testing.T) {
	clock := clockwork.NewFakeClock()
	period := 100 * time.Millisecond

	done := make(chan tea.Msg, 1)
	go func() { done <- tickCmd(clock, period)() }()

	clock.BlockUntil(1)

	clock.Advance(period / 2)
	select {
	case <-done:
		t.Fatal("tick fired before the period elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(period / 2)
	select {
	case msg := <-done:
		tick, ok := msg.(TickMsg)
		if !ok {
			t.Fatalf("expected TickMsg, got %T", msg)
		}
		if !time.Time(tick).Equal(clock.Now()) {
			t.Errorf("tick time = %v, expected %v", time.Time(tick), clock.Now())
		}
	case <-time.After(time.Second):
		t.Fatal("tick did not fire after the period elapsed")
	}
}
