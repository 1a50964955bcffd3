package editor

// AddFrame appends a blank frame and makes it active.
func (e *Editor) AddFrame() {
	e.lock()
	defer e.unlock()
	e.checkpoint()
	e.move = nil
	e.frames.Add()
	e.changed()
}

// DuplicateFrame appends a copy of the active frame and makes it active.
func (e *Editor) DuplicateFrame() {
	e.lock()
	defer e.unlock()
	e.checkpoint()
	e.move = nil
	e.frames.Duplicate()
	e.changed()
}

// DeleteFrame removes the active frame. The last remaining frame is never
// deleted.
func (e *Editor) DeleteFrame() bool {
	e.lock()
	defer e.unlock()
	if e.frames.Len() <= 1 {
		e.notice("cannot delete the only frame")
		return false
	}
	e.checkpoint()
	e.move = nil
	e.frames.Delete()
	e.changed()
	return true
}

// SelectFrame makes frame i active, clamped into range. An uncommitted move
// is discarded; the selection is kept.
func (e *Editor) SelectFrame(i int) {
	e.lock()
	defer e.unlock()
	if i == e.frames.ActiveIndex() {
		return
	}
	e.move = nil
	e.stroke = false
	e.frames.Select(i)
	e.changed()
}

// MoveFrame reorders frame from to position to.
func (e *Editor) MoveFrame(from, to int) bool {
	e.lock()
	defer e.unlock()
	n := e.frames.Len()
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	e.checkpoint()
	e.move = nil
	e.frames.Move(from, to)
	e.changed()
	return true
}

// Undo restores the most recent snapshot, including its canvas size and
// active frame, and clears the selection and any gesture. With no history it
// does nothing.
func (e *Editor) Undo() bool {
	e.lock()
	defer e.unlock()
	snap := e.history.Pop()
	if snap == nil {
		return false
	}
	e.frames = snap
	e.cfg.Width, e.cfg.Height = snap.Width(), snap.Height()
	e.clearGesture()
	e.changed()
	e.logger.Debug("undo", "frames", snap.Len(), "active", snap.ActiveIndex())
	return true
}
