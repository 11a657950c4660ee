package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	settingsPath := os.Getenv("HARDCORE_SNAKE_CONFIG")
	if settingsPath == "" {
		settingsPath, _ = DefaultSettingsPath()
	}
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v (using defaults)\n", err)
	}
	SetSFXVolume(settings.SFXVolume)

	window, err := initWindow(settings.WindowWidth, settings.WindowHeight)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from settings or clock.
	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	// Renderer.
	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Best-score store: sqlite, falling back to in-memory when the config
	// dir is unusable.
	var store ScoreStore
	scorePath := settings.ScoreDBPath
	if scorePath == "" {
		scorePath, err = DefaultScorePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "score path: %v\n", err)
		}
	}
	if scorePath != "" {
		if s, err := OpenSQLiteStore(scorePath); err != nil {
			fmt.Fprintf(os.Stderr, "score store: %v (best score will not persist)\n", err)
		} else {
			store = s
			defer s.Close()
		}
	}
	if store == nil {
		store = &memStore{}
	}

	session := NewGameSession(seed, store)
	particles := NewParticleSystem(MaxParticles, seed^0xFA57)

	// Audio and particles follow the game through the event bus. Pickup
	// events fire mid-tick, after the head has moved onto the cell.
	session.Events.Subscribe(EventFood, func(Event) {
		PlaySound(SoundEat)
		h := session.Sim.Head()
		particles.SpawnBurst(float64(h.X), float64(h.Y), Palette.Food, 22, 9)
	})
	session.Events.Subscribe(EventPoison, func(Event) {
		PlaySound(SoundPoison)
		h := session.Sim.Head()
		particles.SpawnBurst(float64(h.X), float64(h.Y), Palette.Poison, 26, 11)
	})
	session.Events.Subscribe(EventGameOver, func(Event) {
		PlaySound(SoundGameOver)
		h := session.Sim.Head()
		particles.SpawnBurst(float64(h.X), float64(h.Y), Palette.SnakeHead, 60, 14)
	})
	session.Events.Subscribe(EventUnlock, func(Event) {
		PlaySound(SoundUnlock)
		particles.SpawnRing(lockBoardW/2, lockBoardH/2, Palette.SolvedRow, 48, 30)
	})
	session.Events.Subscribe(EventMenuSelect, func(Event) { PlaySound(SoundMenuSelect) })
	session.Events.Subscribe(EventCountdown, func(Event) { PlaySound(SoundTimeTick) })

	input := NewInput()

	// Reusable render buffers.
	var spriteBuf, glowBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeyEscape) {
				window.SetShouldClose(true)
				continue
			}
			if input.JustPressed(window, glfw.Key1) {
				particles.Clear()
				session.OpenLock()
			} else if input.JustPressed(window, glfw.Key2) {
				particles.Clear()
				session.OpenSnake()
			}

		case StateLock:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.BackToMenu()
				break
			}
			if input.JustPressed(window, glfw.KeyR) {
				session.Lock.Reset()
			}
			if !session.Lock.Unlocked {
				if input.JustPressed(window, glfw.KeyUp) || input.JustPressed(window, glfw.KeyW) {
					session.SelectRow(-1)
				}
				if input.JustPressed(window, glfw.KeyDown) || input.JustPressed(window, glfw.KeyS) {
					session.SelectRow(1)
				}
				leftTap := input.JustPressed(window, glfw.KeyLeft) || input.JustPressed(window, glfw.KeyA)
				rightTap := input.JustPressed(window, glfw.KeyRight) || input.JustPressed(window, glfw.KeyD)
				switch {
				case leftTap:
					session.TapLock(-1)
				case rightTap:
					session.TapLock(1)
				case input.Held(window, glfw.KeyLeft) || input.Held(window, glfw.KeyA):
					session.NudgeLock(-1, dt)
				case input.Held(window, glfw.KeyRight) || input.Held(window, glfw.KeyD):
					session.NudgeLock(1, dt)
				}
			}

		case StateSnakeIdle:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.BackToMenu()
				break
			}
			if input.JustPressed(window, glfw.KeySpace) {
				session.StartSnake()
			}

		case StateSnakeRunning:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.BackToMenu()
				break
			}
			if d, ok := input.SteerKey(window); ok {
				session.Sim.Steer(d)
			} else if d, ok := input.SteerDrag(window); ok {
				session.Sim.Steer(d)
			}
			session.Sim.Advance(dt)

		case StateSnakeOver:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.BackToMenu()
				break
			}
			if input.JustPressed(window, glfw.KeySpace) {
				session.StartSnake()
			}
		}

		particles.Update(dt)

		rend.BeginFrame(fbW, fbH)

		switch session.State {
		case StateLock:
			cam := FitCamera(lockBoardW, lockBoardH, 6, fbW, fbH)
			spriteBuf = LockRenderData(session.Lock, session.ActiveRow, spriteBuf[:0])
			if len(spriteBuf) > 0 {
				rend.DrawSprites(spriteBuf, cam, fbW, fbH)
			}
			glowBuf = LockGlowData(session.Lock, now, glowBuf[:0])
			glowBuf = particles.RenderData(glowBuf)
			if len(glowBuf) > 0 {
				rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)
			}

		case StateSnakeIdle, StateSnakeRunning, StateSnakeOver:
			cam := FitCamera(float64(GridW), float64(GridH), 2, fbW, fbH)
			spriteBuf = BoardRenderData(session.Sim, spriteBuf[:0])
			if len(spriteBuf) > 0 {
				rend.DrawSprites(spriteBuf, cam, fbW, fbH)
			}
			glowBuf = BoardGlowData(session.Sim, now, glowBuf[:0])
			glowBuf = particles.RenderData(glowBuf)
			if len(glowBuf) > 0 {
				rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)
			}
		}

		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()
	}
}
