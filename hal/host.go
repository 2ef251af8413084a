package hal

// Host is the desktop HAL: a framebuffer plus the polled input state.
type Host struct {
	fb *hostFramebuffer
	in *keyState
}

// NewHost returns a host HAL with a width x height RGB565 framebuffer.
func NewHost(width, height int) *Host {
	return &Host{
		fb: newHostFramebuffer(width, height),
		in: &keyState{},
	}
}

func (h *Host) Display() Display { return hostDisplay{fb: h.fb} }
func (h *Host) Input() Input     { return h.in }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
