package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "wumpus/pkg/engine/input"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	e.handleZoom()

	if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	} else if intent, ok := e.checkInput(); ok {
		e.send(intent)
	}

	return nil
}

// send is a non-blocking send to the input channel
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// mapCode runs a raw code through the input layers
func mapCode(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// handleZoom handles Ctrl+= / Ctrl+- / Ctrl+0 for font size adjustment
func (e *EbitenRenderer) handleZoom() {
	if !ebiten.IsKeyPressed(ebiten.KeyControl) {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		if e.fontSize < maxFontSize {
			e.fontSize += fontSizeStep
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		if e.fontSize > minFontSize {
			e.fontSize -= fontSizeStep
		}
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.fontSize = defaultFontSize
	}
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// checkGamepadInput checks for controller/gamepad input and returns the corresponding Intent.
// NOTE: Button indices here are tuned for common XInput-style controllers on Linux;
// mappings may vary between devices/platforms.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)

	for _, id := range ids {
		// Left stick, vertical axis only: menus are lists
		const deadZone = 0.5
		stickY := ebiten.GamepadAxisValue(id, 1)
		prev := e.stickState[id]
		e.stickState[id] = stickY
		if stickY < -deadZone && prev >= -deadZone {
			return mapCode(engineinput.DeviceGamepad, "gamepad_dpad_up")
		}
		if stickY > deadZone && prev <= deadZone {
			return mapCode(engineinput.DeviceGamepad, "gamepad_dpad_down")
		}

		// D-pad: up 11, down 13
		if e.shouldRepeatKey(ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton11), fmt.Sprintf("gamepad_%d_11", id)) {
			return mapCode(engineinput.DeviceGamepad, "gamepad_dpad_up")
		}
		if e.shouldRepeatKey(ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton13), fmt.Sprintf("gamepad_%d_13", id)) {
			return mapCode(engineinput.DeviceGamepad, "gamepad_dpad_down")
		}

		// Face buttons: A confirms, B goes back, Start opens the menu
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton0) {
			return mapCode(engineinput.DeviceGamepad, "gamepad_a")
		}
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton1) {
			return mapCode(engineinput.DeviceGamepad, "gamepad_b")
		}
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton7) {
			return mapCode(engineinput.DeviceGamepad, "gamepad_start")
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkInput edits the prompt line and returns an Intent when one is complete.
func (e *EbitenRenderer) checkInput() (engineinput.Intent, bool) {
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		return engineinput.Intent{}, false
	}

	e.line = ebiten.AppendInputChars(e.line)

	if e.shouldRepeatKey(ebiten.IsKeyPressed(ebiten.KeyBackspace), "key_backspace") && len(e.line) > 0 {
		e.line = e.line[:len(e.line)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		code := string(e.line)
		e.line = e.line[:0]
		if code == "" {
			code = "enter"
		}
		return mapCode(engineinput.DeviceKeyboard, code), true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.line = e.line[:0]
		return mapCode(engineinput.DeviceKeyboard, "escape"), true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		return mapCode(engineinput.DeviceKeyboard, "f10"), true
	}

	// Arrow keys only navigate while nothing is typed
	if len(e.line) == 0 {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(ebiten.KeyArrowUp), "key_arrow_up") {
			return mapCode(engineinput.DeviceKeyboard, "arrow_up"), true
		}
		if e.shouldRepeatKey(ebiten.IsKeyPressed(ebiten.KeyArrowDown), "key_arrow_down") {
			return mapCode(engineinput.DeviceKeyboard, "arrow_down"), true
		}
	}

	return engineinput.Intent{}, false
}
