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

package main

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/jetsetilly/embr/assets"
	"github.com/jetsetilly/embr/framebuffer"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/gpu/glcore"
	"github.com/jetsetilly/embr/logger"
	"github.com/jetsetilly/embr/material"
	"github.com/jetsetilly/embr/mesh"
	"github.com/jetsetilly/embr/modalflag"
	"github.com/jetsetilly/embr/prefs"
	"github.com/jetsetilly/embr/program"
	"github.com/jetsetilly/embr/resources"
	"github.com/jetsetilly/embr/sdlview"
	"github.com/jetsetilly/embr/shader"
	"github.com/jetsetilly/embr/texture"
	"github.com/jetsetilly/embr/vbo"
	"github.com/jetsetilly/embr/version"
	"github.com/jetsetilly/embr/watch"
)

// view opens a window and draws a rotating cube into a ping-pong framebuffer,
// with the previous frame faded underneath, and then draws the result to the
// screen.
func view(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()
	hotReload := md.AddBool("watch", false, "reload shaders when they change (requires a shader directory)")
	shaderDir := md.AddString("shaders", "", "directory to load shaders from instead of the built-in shaders")
	prefsString := md.AddString("prefs", "", "preferences. for example \"window.width::800; window.swap::1\"")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
		defer prefs.PopCommandLineStack()
	}

	prf, err := newViewPrefs()
	if err != nil {
		return err
	}
	defer func() {
		if err := prf.dsk.Save(); err != nil {
			logger.Log("view", err.Error())
		}
	}()

	if *shaderDir == "" {
		*shaderDir = prf.shaderDir.String()
	}
	*hotReload = *hotReload || prf.hotReload.Get().(bool)

	var fsys fs.FS
	if *shaderDir == "" {
		if *hotReload {
			return fmt.Errorf("hot reloading requires a shader directory")
		}
		fsys, err = fs.Sub(assets.FS(), "shaders")
		if err != nil {
			return err
		}
	} else {
		fsys = os.DirFS(*shaderDir)
	}

	win, err := sdlview.New(version.ApplicationName,
		int32(prf.width.Get().(int)), int32(prf.height.Get().(int)), false)
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.SetSwapInterval(prf.swap.Get().(int))

	ctx, err := glcore.New()
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	scn, err := newScene(ctx, fsys)
	if err != nil {
		return err
	}
	defer scn.destroy()

	if err := scn.resize(win.DrawableSize()); err != nil {
		return err
	}

	var wtc *watch.Watcher
	if *hotReload {
		wtc, err = watch.New(scn.reg, fsys, *shaderDir)
		if err != nil {
			return err
		}
		defer wtc.Close()
		for _, s := range assets.Shaders {
			if err := wtc.Add(s); err != nil {
				return err
			}
		}
	}

	win.Show()
	start := time.Now()

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		ev := win.Service()
		if ev.Quit {
			return nil
		}
		if ev.Resized {
			if err := scn.resize(win.DrawableSize()); err != nil {
				return err
			}
		}

		if wtc != nil {
			if changed := wtc.Service(); len(changed) > 0 {
				scn.reload()
			}
		}

		scn.draw(float32(time.Since(start).Seconds()), float32(prf.decay.Get().(float64)))
		if err := gpu.CheckError(ctx, "frame"); err != nil {
			logger.Log("view", err.Error())
		}

		win.Swap()
	}
}

// the preferences used by the VIEW mode
type viewPrefs struct {
	dsk *prefs.Disk

	width     prefs.Int
	height    prefs.Int
	swap      prefs.Int
	decay     prefs.Float
	shaderDir prefs.String
	hotReload prefs.Bool
}

func newViewPrefs() (*viewPrefs, error) {
	pth, err := resources.JoinPath("prefs.toml")
	if err != nil {
		return nil, err
	}

	prf := &viewPrefs{}
	prf.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	// defaults
	prf.width.Set(800)
	prf.height.Set(600)
	prf.swap.Set(sdlview.SyncVerticalRetrace)
	prf.decay.Set(0.9)

	prf.decay.SetHookPre(func(v prefs.Value) error {
		if d := v.(float64); d < 0 || d > 1 {
			return fmt.Errorf("decay must be between 0 and 1")
		}
		return nil
	})

	for _, e := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"window.width", &prf.width},
		{"window.height", &prf.height},
		{"window.swap", &prf.swap},
		{"scene.decay", &prf.decay},
		{"shaders.path", &prf.shaderDir},
		{"shaders.hotreload", &prf.hotReload},
	} {
		if err := prf.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := prf.dsk.Load(); err != nil {
		return nil, err
	}

	return prf, nil
}

// a full screen pass. the quad is created for the program because attribute
// locations can differ between programs
type pass struct {
	prog *program.Program
	quad *vbo.Vbo
}

func newPass(ctx gpu.Context, src string) (*pass, error) {
	h, err := shader.NewProgram(ctx, src)
	if err != nil {
		return nil, err
	}
	prog := program.New(ctx, h)

	return &pass{
		prog: prog,
		quad: mesh.Plane(ctx, -1, -1, 1, 1, attribLocation(prog, "a_position"), attribLocation(prog, "a_texcoord")),
	}, nil
}

// the location of the named attribute or -1 if the program doesn't use it
func attribLocation(prog *program.Program, name string) int32 {
	if b, ok := prog.Attribute(name); ok {
		return b.Location
	}
	return -1
}

func (ps *pass) set(name string, value interface{}) {
	if err := ps.prog.Set(name, value); err != nil {
		logger.Log("view", err.Error())
	}
}

func (ps *pass) destroy() {
	ps.quad.Destroy()
	ps.prog.Destroy()
}

type scene struct {
	ctx  *glcore.Context
	reg  *shader.Registry
	fsys fs.FS

	normal *material.Material
	cube   *vbo.Vbo

	feedback *pass
	post     *pass

	overlay *texture.Texture
	pp      *framebuffer.PingPong

	width  int32
	height int32
}

func newScene(ctx *glcore.Context, fsys fs.FS) (*scene, error) {
	scn := &scene{
		ctx:  ctx,
		reg:  shader.NewRegistry(),
		fsys: fsys,
	}

	var err error
	scn.normal, err = material.NewNormal(ctx, material.Options{})
	if err != nil {
		return nil, err
	}

	scn.cube = mesh.Cube(ctx, 0.5, 0.5, 0.5,
		scn.normal.AttributeLocation("position"),
		scn.normal.AttributeLocation("normal"),
		scn.normal.AttributeLocation("texcoord"))

	if err := scn.build(); err != nil {
		scn.destroy()
		return nil, err
	}

	// checker pattern for the overlay
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 1, color.White)
	img.Set(1, 0, color.Gray{Y: 128})
	img.Set(0, 1, color.Gray{Y: 128})
	scn.overlay = texture.FromImage(ctx, img, texture.Format{
		WrapS: gpu.REPEAT,
		WrapT: gpu.REPEAT,
	})

	return scn, nil
}

// register every shader file and build the passes. on error the current
// passes are kept
func (scn *scene) build() error {
	for _, s := range assets.Shaders {
		if _, err := scn.reg.LoadFile(scn.fsys, s); err != nil {
			return err
		}
	}

	src, _ := scn.reg.Lookup("feedback.glsl")
	feedback, err := newPass(scn.ctx, src)
	if err != nil {
		return err
	}

	src, _ = scn.reg.Lookup("post.glsl")
	post, err := newPass(scn.ctx, src)
	if err != nil {
		feedback.destroy()
		return err
	}

	if scn.feedback != nil {
		scn.feedback.destroy()
	}
	if scn.post != nil {
		scn.post.destroy()
	}
	scn.feedback = feedback
	scn.post = post

	logger.Log("view", scn.post.prog.String())

	return nil
}

// reload is called when a shader file has changed. every file is registered
// again so that files including the changed file see the new source
func (scn *scene) reload() {
	if err := scn.build(); err != nil {
		logger.Log("view", err.Error())
	}
}

func (scn *scene) resize(width int32, height int32) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	pp, err := framebuffer.NewPingPong(scn.ctx, width, height, []texture.Format{
		{FilterMin: gpu.LINEAR, FilterMag: gpu.LINEAR},
		{InternalFormat: gpu.DEPTH_COMPONENT24, Format: gpu.DEPTH_COMPONENT, Type: gpu.FLOAT},
	})
	if err != nil {
		return err
	}

	if scn.pp != nil {
		scn.pp.Destroy()
	}
	scn.pp = pp
	scn.width = width
	scn.height = height

	logger.Logf("view", "framebuffers resized to %dx%d", width, height)

	return nil
}

func (scn *scene) draw(t float32, decay float32) {
	aspect := float32(scn.width) / float32(scn.height)
	projection := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
	modelview := mgl32.LookAtV(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.HomogRotate3D(t, mgl32.Vec3{1, 1, 0}.Normalize()))

	scn.ctx.Viewport(scn.width, scn.height)

	scn.pp.Process(func() {
		scn.ctx.EnableDepthTest(false)
		scn.ctx.Clear(0, 0, 0, 1)

		scn.feedback.prog.Use()
		scn.pp.BindTexture(0, 0)
		scn.feedback.set("u_previous", 0)
		scn.feedback.set("u_decay", decay)
		scn.feedback.quad.Draw()
		scn.pp.UnbindTexture(0)

		scn.ctx.EnableDepthTest(true)
		scn.normal.Use()
		if err := scn.normal.Set("projection", projection); err != nil {
			logger.Log("view", err.Error())
		}
		if err := scn.normal.Set("modelview", modelview); err != nil {
			logger.Log("view", err.Error())
		}
		scn.cube.Draw()
	})

	scn.ctx.EnableDepthTest(false)
	scn.ctx.Clear(0, 0, 0, 1)

	scn.post.prog.Use()
	scn.pp.Texture(0).Bind(0)
	scn.overlay.Bind(1)
	scn.post.set("u_scene", 0)
	scn.post.set("u_overlay", 1)
	scn.post.set("u_resolution", mgl32.Vec2{float32(scn.width), float32(scn.height)})
	scn.post.set("u_time", t)
	scn.post.quad.Draw()
	scn.overlay.Unbind(1)
	scn.pp.Texture(0).Unbind(0)
}

func (scn *scene) destroy() {
	if scn.pp != nil {
		scn.pp.Destroy()
	}
	if scn.overlay != nil {
		scn.overlay.Destroy()
	}
	if scn.feedback != nil {
		scn.feedback.destroy()
	}
	if scn.post != nil {
		scn.post.destroy()
	}
	if scn.cube != nil {
		scn.cube.Destroy()
	}
	if scn.normal != nil {
		scn.normal.Destroy()
	}
}
