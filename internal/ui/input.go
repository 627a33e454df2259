package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
)

// SetInputForTest replaces input functions during tests and returns a
// function to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	touchIDs func([]ebiten.TouchID) []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldTouchIDs := appendTouchIDs
	oldTouchPos := touchPosition
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyPressed = key
	appendTouchIDs = touchIDs
	touchPosition = touchPos
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		appendTouchIDs = oldTouchIDs
		touchPosition = oldTouchPos
	}
}
