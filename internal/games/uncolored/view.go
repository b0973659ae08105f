package uncolored

import (
	"sync"

	"github.com/vovakirdan/uncolored-squares/internal/squares"
)

// view is what the player can see of the board. The controller paints it
// from Press and from its reveal goroutine, and Render reads it from the
// front end, hence the lock.
type view struct {
	mu    sync.Mutex
	cells [squares.Cells]squares.Color
}

func newView() *view {
	v := &view{}
	for i := range v.cells {
		v.cells[i] = squares.Black
	}
	return v
}

// SetCell implements squares.CellRenderer.
func (v *view) SetCell(index int, c squares.Color) {
	if !squares.InRange(index) {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cells[index] = c
}

func (v *view) snapshot() squares.Board {
	v.mu.Lock()
	defer v.mu.Unlock()
	return squares.Board(v.cells)
}
