package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(key sdl.Keycode, state uint8, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		State:  state,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: key},
	}
}

func TestKeyClickLastsOneFrame(t *testing.T) {

	ClearKeyboardState()
	EventLoopStart()

	HandleKeyboardEvent(keyEvent(sdl.K_ESCAPE, sdl.PRESSED, 0))
	if !KeyClicked(sdl.K_ESCAPE) || !KeyDown(sdl.K_ESCAPE) {
		t.Fatal("expected escape to be clicked and down")
	}

	EventLoopStart()
	if KeyClicked(sdl.K_ESCAPE) {
		t.Fatal("expected the click to be cleared on the next frame")
	}

	if !KeyDown(sdl.K_ESCAPE) {
		t.Fatal("expected escape to stay down until released")
	}

	// Held keys repeat but don't click again
	HandleKeyboardEvent(keyEvent(sdl.K_ESCAPE, sdl.PRESSED, 1))
	if KeyClicked(sdl.K_ESCAPE) {
		t.Fatal("expected repeats not to count as clicks")
	}

	EventLoopStart()
	HandleKeyboardEvent(keyEvent(sdl.K_ESCAPE, sdl.RELEASED, 0))
	if !KeyReleased(sdl.K_ESCAPE) || KeyDown(sdl.K_ESCAPE) {
		t.Fatal("expected escape to be released")
	}

	if KeyClicked(sdl.K_a) || KeyDown(sdl.K_a) {
		t.Fatal("expected unseen keys to be up")
	}
}

func TestQuit(t *testing.T) {

	EventLoopStart()
	if IsQuitClicked() {
		t.Fatal("expected no quit request")
	}

	HandleQuitEvent(&sdl.QuitEvent{})
	if !IsQuitClicked() {
		t.Fatal("expected a quit request")
	}

	EventLoopStart()
	if IsQuitClicked() {
		t.Fatal("expected the quit request to be cleared on the next frame")
	}
}
