package window

import (
	"errors"
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/config"
)

func TestNewUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "vulkan"
	w, err := New(cfg)
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("expected %v, got %v", ErrBackend, err)
	}
	if w != nil {
		t.Fatalf("expected no window, got %v", w)
	}
}

func TestKeyTables(t *testing.T) {
	for k := KeyW; k <= KeyEscape; k++ {
		if _, ok := sdlKeys[k]; !ok {
			t.Errorf("sdl backend is missing %v", k)
		}
		if _, ok := glfwKeys[k]; !ok {
			t.Errorf("glfw backend is missing %v", k)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyW, "W"},
		{KeyShift, "Shift"},
		{KeyEscape, "Escape"},
		{Key(99), "Key(99)"},
		{Key(-1), "Key(-1)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	var nilWin *Window
	nilWin.Close()

	w := &Window{closed: true}
	w.Close()
	if w.IsActive() {
		t.Fatal("closed window reports active")
	}
	if !w.PollEvents() {
		t.Fatal("closed window should report quit")
	}
	if w.Pressed(KeyW) {
		t.Fatal("closed window reports a pressed key")
	}
}
