package opengl

// handle owns one GL object name and guarantees its deleter runs at most
// once, so every exit path (including a failed initialization partway
// through) can call Release unconditionally.
type handle struct {
	id       uint32
	deleter  func(id uint32)
	released bool
}

func newHandle(id uint32, deleter func(id uint32)) *handle {
	return &handle{id: id, deleter: deleter}
}

func (h *handle) Release() {
	if h == nil || h.released || h.id == 0 {
		return
	}
	h.deleter(h.id)
	h.released = true
}
