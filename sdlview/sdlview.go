// This file is part of Embr.
//
// Embr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Embr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Embr.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlview opens an SDL window with an OpenGL 3.2 core context. It is
// the platform layer for the embr program and has no knowledge of what is
// drawn in the window.
//
// All functions must be called from the main thread. New() locks the calling
// goroutine to its OS thread.
package sdlview

import (
	"fmt"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/logger"
)

// SDLError wraps errors returned by the SDL library.
const SDLError = "sdl: %v"

// List of swap interval values. With the exception of SyncTicker these are
// the values expected by SDL's GLSetSwapInterval().
const (
	SyncImmediate       = 0
	SyncVerticalRetrace = 1
	SyncAdaptive        = -1
	SyncTicker          = 2
)

// Window is an SDL window and its GL context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// use ticker to synchronise with monitor
	syncTicker *time.Ticker
}

// New creates a window with the specified title and size. A hidden window is
// useful when a GL context is required but nothing is to be shown.
func New(title string, width int32, height int32, hidden bool) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	for _, a := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_DOUBLEBUFFER, 1},
	} {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, curated.Errorf(SDLError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{}

	var err error
	win.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}
	logger.Logf("sdl", "refresh rate: %dHz", win.mode.RefreshRate)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if hidden {
		flags |= sdl.WINDOW_HIDDEN
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	if err := win.window.GLMakeCurrent(win.glContext); err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf("sdl", "using GL version %d.%d core", major, minor)

	return win, nil
}

// Destroy the GL context and window and shut down SDL.
func (win *Window) Destroy() error {
	if win.syncTicker != nil {
		win.syncTicker.Stop()
	}

	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}

	if win.window != nil {
		if err := win.window.Destroy(); err != nil {
			return curated.Errorf(SDLError, err)
		}
		win.window = nil
	}

	sdl.Quit()

	return nil
}

// SetSwapInterval sets how buffer swaps are synchronised with the display.
// The value should be one of the Sync constants.
func (win *Window) SetSwapInterval(i int) {
	if win.syncTicker != nil {
		win.syncTicker.Stop()
		win.syncTicker = nil
	}

	if i == SyncTicker {
		rate := int64(win.mode.RefreshRate)
		if rate <= 0 {
			rate = 60
		}
		win.syncTicker = time.NewTicker(time.Second / time.Duration(rate))

		// the ticker does the synchronisation so GL should swap immediately
		i = SyncImmediate
	}

	if err := sdl.GLSetSwapInterval(i); err != nil {
		logger.Logf("sdl", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// Show the window if it was created hidden.
func (win *Window) Show() {
	win.window.Show()
}

// SetTitle changes the window title.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// DrawableSize returns the size of the GL drawable in pixels. On high DPI
// displays this can differ from the window size.
func (win *Window) DrawableSize() (int32, int32) {
	return win.window.GLGetDrawableSize()
}

// Swap the front and back buffers.
func (win *Window) Swap() {
	if win.syncTicker != nil {
		<-win.syncTicker.C
	}
	win.window.GLSwap()
}

// Events is the result of Service().
type Events struct {
	Quit    bool
	Resized bool
}

func (ev Events) String() string {
	return fmt.Sprintf("quit=%v resized=%v", ev.Quit, ev.Resized)
}

// Service handles all pending SDL events. The window is closed by the close
// button or by the escape key.
func (win *Window) Service() Events {
	var ev Events
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e := e.(type) {
		case *sdl.QuitEvent:
			ev.Quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				ev.Quit = true
			}
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				ev.Resized = true
			}
		}
	}
	return ev
}
