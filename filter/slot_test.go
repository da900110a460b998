package filter

import (
	"errors"
	"testing"
	"time"
)

// doubleOnUpdate is a mock OnUpdatedFilter: it doubles the raw value and
// records the last arguments it was called with.
type doubleOnUpdate struct {
	arg1, arg2 int
	lastRaw    int
	lastTime   time.Time
}

func (f *doubleOnUpdate) Update(raw int, t time.Time) (int, error) {
	f.lastRaw = raw
	f.lastTime = t
	return raw * 2, nil
}

// flakyOnUpdate succeeds until failAfter calls, then always errors.
type flakyOnUpdate struct {
	calls     int
	failAfter int
}

func (f *flakyOnUpdate) Update(raw int, t time.Time) (int, error) {
	f.calls++
	if f.calls > f.failAfter {
		return 0, errors.New("boom")
	}
	return raw * 2, nil
}

type recordingManual struct {
	caps Capabilities[int]
}

func (m *recordingManual) Bind(c Capabilities[int]) {
	m.caps = c
}

func TestSlot_PlainPassthrough(t *testing.T) {
	s := NewSlot[int]()

	if _, ok := s.Value(); ok {
		t.Fatal("new slot should be absent")
	}

	raw := 42
	if err := s.Apply(&raw, time.Time{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	v, ok := s.Value()
	if !ok || v != 42 {
		t.Errorf("Value() = (%v,%v), want (42,true)", v, ok)
	}

	if err := s.Apply(nil, time.Time{}); err != nil {
		t.Fatalf("Apply(nil): %v", err)
	}
	if _, ok := s.Value(); ok {
		t.Error("Value() should be absent once raw candidate disappears")
	}
}

func TestSlot_OnUpdatedFilter(t *testing.T) {
	s := NewSlot[int]()
	f := &doubleOnUpdate{}
	h := s.InstallOnUpdated(f)

	if h.Expired() {
		t.Fatal("freshly installed handle reports expired")
	}

	at := time.Unix(2, 0)
	raw := 5
	if err := s.Apply(&raw, at); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if f.lastRaw != 5 || !f.lastTime.Equal(at) {
		t.Errorf("filter saw (%v,%v), want (5,%v)", f.lastRaw, f.lastTime, at)
	}
	v, ok := s.Value()
	if !ok || v != 10 {
		t.Errorf("Value() = (%v,%v), want (10,true)", v, ok)
	}
}

func TestSlot_OnUpdatedFilterError_PreservesLastGood(t *testing.T) {
	s := NewSlot[int]()
	s.InstallOnUpdated(&flakyOnUpdate{failAfter: 1})

	raw := 5
	if err := s.Apply(&raw, time.Time{}); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	v, ok := s.Value()
	if !ok || v != 10 {
		t.Fatalf("Value() after first Apply = (%v,%v), want (10,true)", v, ok)
	}

	raw2 := 6
	if err := s.Apply(&raw2, time.Time{}); err == nil {
		t.Fatal("expected error from second Apply")
	}
	v, ok = s.Value()
	if !ok || v != 10 {
		t.Errorf("Value() after failing Apply = (%v,%v), want (10,true) — last good preserved", v, ok)
	}
}

func TestSlot_ManualFilter(t *testing.T) {
	s := NewSlot[int]()
	m := &recordingManual{}
	s.InstallManual(m)

	if _, ok := s.Value(); ok {
		t.Fatal("manual filter with no write yet should be absent")
	}

	raw := 10
	s.Apply(&raw, time.Time{})

	lv, ok := m.caps.LastValue()
	if !ok || lv != 10 {
		t.Errorf("LastValue() = (%v,%v), want (10,true)", lv, ok)
	}
	if _, ok := s.Value(); ok {
		t.Error("Apply alone must not populate Value for a manual filter")
	}

	written := 99
	m.caps.Write(&written)
	v, ok := s.Value()
	if !ok || v != 99 {
		t.Errorf("Value() after Write = (%v,%v), want (99,true)", v, ok)
	}

	m.caps.Write(nil)
	if _, ok := s.Value(); ok {
		t.Error("Write(nil) should clear the exposed value")
	}

	s.Apply(nil, time.Time{})
	if _, ok := m.caps.LastValue(); ok {
		t.Error("LastValue() should report absent once the candidate set empties")
	}
}

func TestSlot_InstallExpiresPriorHandle(t *testing.T) {
	s := NewSlot[int]()
	h1 := s.InstallOnUpdated(&doubleOnUpdate{})
	h2 := s.InstallOnUpdated(&doubleOnUpdate{})

	if !h1.Expired() {
		t.Error("h1 should be expired after a replacement filter is installed")
	}
	if h2.Expired() {
		t.Error("h2 should not be expired immediately after install")
	}

	s.Clear()
	if !h2.Expired() {
		t.Error("h2 should be expired after Clear")
	}
}

func TestSlot_ClearRevertsToPassthrough(t *testing.T) {
	s := NewSlot[int]()
	s.InstallOnUpdated(&doubleOnUpdate{})

	raw := 7
	s.Apply(&raw, time.Time{})
	s.Clear()

	v, ok := s.Value()
	if !ok || v != 7 {
		t.Errorf("Value() after Clear = (%v,%v), want (7,true) — raw passthrough", v, ok)
	}
}
