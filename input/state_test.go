package input

import (
	"sync"
	"testing"
)

func TestKeyFromName(t *testing.T) {
	cases := []struct {
		name string
		want Key
		ok   bool
	}{
		{"ArrowUp", Up, true},
		{"ArrowDown", Down, true},
		{"ArrowLeft", Left, true},
		{"ArrowRight", Right, true},
		{"Shift", Turbo, true},
		{"ShiftLeft", 0, false},
		{"arrowup", 0, false},
		{"KeyW", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := KeyFromName(c.name)
			if ok != c.ok {
				t.Fatalf("KeyFromName(%q) ok=%v, want %v", c.name, ok, c.ok)
			}
			if ok && got != c.want {
				t.Fatalf("KeyFromName(%q) = %v, want %v", c.name, got, c.want)
			}
		})
	}
}

func TestStateNetEvents(t *testing.T) {
	const down, up = true, false

	cases := []struct {
		name   string
		events []bool
		want   bool
	}{
		{"no_events", nil, false},
		{"down", []bool{down}, true},
		{"down_up", []bool{down, up}, false},
		{"down_down_up", []bool{down, down, up}, false},
		{"down_up_up", []bool{down, up, up}, false},
		{"up_down", []bool{up, down}, true},
		{"down_down", []bool{down, down}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState()
			for _, ev := range c.events {
				if ev {
					s.OnKeyDown("ArrowLeft")
				} else {
					s.OnKeyUp("ArrowLeft")
				}
			}
			if got := s.IsDown(Left); got != c.want {
				t.Fatalf("IsDown(Left) = %v, want %v", got, c.want)
			}
			for _, k := range Keys {
				if k != Left && s.IsDown(k) {
					t.Fatalf("key %v should not be held", k)
				}
			}
		})
	}
}

func TestStateIgnoresUnmappedNames(t *testing.T) {
	s := NewState()
	s.OnKeyDown("ArrowUp")

	for _, name := range []string{"KeyA", "Space", "Escape", "ShiftRight", "ArrowUpp"} {
		s.OnKeyDown(name)
		s.OnKeyUp(name)
	}

	if !s.IsDown(Up) {
		t.Fatalf("unmapped events released Up")
	}
	for _, k := range []Key{Down, Left, Right, Turbo} {
		if s.IsDown(k) {
			t.Fatalf("unmapped events pressed %v", k)
		}
	}
}

func TestStateHeldAndReset(t *testing.T) {
	s := NewState()
	s.OnKeyDown("Shift")
	s.OnKeyDown("ArrowRight")
	s.OnKeyDown("ArrowUp")

	held := s.Held()
	want := []Key{Up, Right, Turbo}
	if len(held) != len(want) {
		t.Fatalf("Held() = %v, want %v", held, want)
	}
	for i := range want {
		if held[i] != want[i] {
			t.Fatalf("Held()[%d] = %v, want %v", i, held[i], want[i])
		}
	}

	s.Reset()
	if got := s.Held(); len(got) != 0 {
		t.Fatalf("Held() after Reset = %v, want empty", got)
	}
}

func TestStateOutOfRangeKey(t *testing.T) {
	s := NewState()
	if s.IsDown(Key(200)) {
		t.Fatalf("out of range key reported as held")
	}
	if Key(200).String() != "unknown" {
		t.Fatalf("unexpected name %q", Key(200).String())
	}
}

func TestStateConcurrentCallbacks(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				s.OnKeyDown("ArrowRight")
				s.OnKeyUp("ArrowRight")
			}
		}()
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				_ = s.IsDown(Right)
				_ = s.Held()
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-done

	if s.IsDown(Right) {
		t.Fatalf("every goroutine ended with a release; Right should be up")
	}
}
