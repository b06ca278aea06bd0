package ui

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"minic/internal/diag"
	"minic/internal/driver"
)

func feed(m *progressModel, evs ...driver.PhaseEvent) {
	for _, ev := range evs {
		m.Update(eventMsg(ev))
	}
}

func TestProgressStatuses(t *testing.T) {
	m := NewProgressModel("check", []string{"a.mc", "b.mc", "c.mc"}, nil).(*progressModel)
	feed(m,
		driver.PhaseEvent{Path: "a.mc", Name: "load", Status: driver.PhaseStart},
		driver.PhaseEvent{Path: "b.mc", Name: "load", Status: driver.PhaseStart},
		driver.PhaseEvent{Path: "b.mc", Name: "check", Status: driver.PhaseStart},
	)
	be.Equal(t, m.items[0].status, statusLoading)
	be.Equal(t, m.items[1].status, statusChecking)
	be.Equal(t, m.items[2].status, statusQueued)

	feed(m,
		driver.PhaseEvent{Path: "b.mc", Name: "check", Status: driver.PhaseEnd,
			Err: diag.New(diag.ErrUndeclared, "x")},
		driver.PhaseEvent{Path: "a.mc", Name: "check", Status: driver.PhaseEnd},
		driver.PhaseEvent{Path: "a.mc", Name: "free", Status: driver.PhaseStart},
		driver.PhaseEvent{Path: "unknown.mc", Name: "load", Status: driver.PhaseStart},
	)
	be.Equal(t, m.items[0].status, statusDone)
	be.Equal(t, m.items[1].status, statusError)
	be.Equal(t, m.items[1].note, "DCL0010")
	be.Equal(t, m.failed, 1)
	be.Equal(t, m.finished(), 2)
	be.True(t, m.percent() > 0.66 && m.percent() < 0.67)
}

func TestProgressView(t *testing.T) {
	m := NewProgressModel("check", []string{"a.mc"}, nil).(*progressModel)
	be.True(t, strings.Contains(m.View(), "check 0/1"))

	feed(m, driver.PhaseEvent{Path: "a.mc", Name: "load", Status: driver.PhaseEnd,
		Err: diag.New(diag.ErrUsage, "missing")})
	_, cmd := m.Update(doneMsg{})
	be.True(t, cmd != nil)
	view := m.View()
	be.True(t, strings.Contains(view, "done: check 1/1, 1 failed"))
	be.True(t, strings.Contains(view, "a.mc SYN0001"))
}

func TestProgressQuitsWhenEventsClose(t *testing.T) {
	events := make(chan driver.PhaseEvent)
	close(events)
	m := NewProgressModel("check", nil, events).(*progressModel)
	msg := m.listenForEvent()()
	_, ok := msg.(doneMsg)
	be.True(t, ok)
	be.Equal(t, m.View(), "")
}

func TestTruncate(t *testing.T) {
	be.Equal(t, truncate("short.mc", 20), "short.mc")
	be.Equal(t, truncate("a/very/long/path.mc", 10), "a/ve...")
	be.Equal(t, truncate("abcdef", 2), "ab")
	be.Equal(t, truncate("abc", 0), "abc")
}
