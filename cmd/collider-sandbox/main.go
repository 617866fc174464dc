// FILE: cmd/collider-sandbox/main.go
// Interactive sandbox: circles falling under gravity inside the terminal,
// contacts detected by a toy circle narrow phase and resolved through the
// engine pipeline. Space drops another ball, ESC/Ctrl-C quits.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/collide/engine"
	"github.com/lixenwraith/collide/physics"
	"github.com/lixenwraith/collide/vmath"
)

const (
	gravity     = 30.0 // cells per second squared, y down
	maxBalls    = 24
	frameTimeMs = 16
)

type Ball struct {
	entity engine.Entity
	radius float64
	style  tcell.Style
}

type Sandbox struct {
	screen        tcell.Screen
	width, height int

	world *engine.World2[float64]
	balls []Ball

	// Off-screen bodies the walls resolve against
	floor engine.Entity

	impacts   int
	audioInit bool
}

func NewSandbox() (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen: screen,
		world:  engine.NewWorld2[float64](),
		balls:  make([]Ball, 0, maxBalls),
	}
	s.width, s.height = screen.Size()

	s.world.AddSystem(engine.NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]())

	// One immovable body stands in for every wall and the floor; it has
	// infinite mass and no velocity, so resolution never moves it
	s.floor = s.world.CreateEntity()
	s.world.Poses.Set(s.floor, physics.NextFrame[physics.Pose2[float64]]{
		Value: physics.NewBodyPose(vmath.Vec2[float64]{}, vmath.Rot2Identity[float64]()),
	})
	s.world.Masses.Set(s.floor, physics.NewMass(math.Inf(1), physics.NewInertia2(math.Inf(1))))
	s.world.Materials.Set(s.floor, physics.Rock[float64]())

	for i := 0; i < 4; i++ {
		s.dropBall()
	}

	if err := s.initAudio(); err != nil {
		// Non-fatal, sandbox can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return s, nil
}

func (s *Sandbox) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.audioInit = true
	}
	return err
}

func (s *Sandbox) playImpactSound() {
	if !s.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(30 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)

	speaker.Play(beep.Take(duration, sine))
}

func (s *Sandbox) dropBall() {
	if len(s.balls) >= maxBalls {
		return
	}

	radius := 1.0 + rand.Float64()*1.5
	mass := radius * radius

	e := s.world.CreateEntity()
	s.world.Poses.Set(e, physics.NextFrame[physics.Pose2[float64]]{
		Value: physics.NewBodyPose(
			vmath.Vec2[float64]{
				X: radius + rand.Float64()*(float64(s.width)-2*radius),
				Y: radius + rand.Float64()*3,
			},
			vmath.Rot2Identity[float64](),
		),
	})
	s.world.Velocities.Set(e, physics.NextFrame[physics.Velocity2[float64]]{
		Value: physics.NewVelocity(
			vmath.Vec2[float64]{X: rand.Float64()*20 - 10, Y: 0},
			vmath.Ang2[float64]{},
		),
	})
	s.world.Masses.Set(e, physics.NewMass(mass, physics.CircleInertia2(mass, radius)))
	s.world.Materials.Set(e, physics.BouncyBall[float64]())

	colors := []tcell.Color{
		tcell.ColorGreen, tcell.ColorYellow, tcell.ColorBlue,
		tcell.ColorRed, tcell.ColorPurple, tcell.ColorAqua,
	}
	s.balls = append(s.balls, Ball{
		entity: e,
		radius: radius,
		style:  tcell.StyleDefault.Foreground(colors[rand.Intn(len(colors))]),
	})
}

// integrate applies gravity and advances positions; resolution only
// produces corrections, it never integrates
func (s *Sandbox) integrate(dt float64) {
	for _, b := range s.balls {
		pose, _ := s.world.Poses.Get(b.entity)
		vel, _ := s.world.Velocities.Get(b.entity)

		lin := vel.Value.Linear()
		lin.Y += gravity * dt
		pos := pose.Value.Position().Add(lin.Scale(dt))

		s.world.Velocities.Set(b.entity, physics.NextFrame[physics.Velocity2[float64]]{
			Value: physics.NewVelocity(lin, vel.Value.Angular()),
		})
		s.world.Poses.Set(b.entity, physics.NextFrame[physics.Pose2[float64]]{
			Value: physics.NewBodyPose(pos, pose.Value.Rotation()),
		})
	}
}

// detect runs a brute-force circle narrow phase against the other balls
// and the screen edges, pushing one event per overlap
func (s *Sandbox) detect() {
	found := 0

	for i := 0; i < len(s.balls); i++ {
		a := s.balls[i]
		poseA, _ := s.world.Poses.Get(a.entity)
		posA := poseA.Value.Position()

		for j := i + 1; j < len(s.balls); j++ {
			b := s.balls[j]
			poseB, _ := s.world.Poses.Get(b.entity)
			posB := poseB.Value.Position()

			delta := posB.Sub(posA)
			distSq := delta.LenSq()
			minDist := a.radius + b.radius
			if distSq >= minDist*minDist || distSq == 0 {
				continue
			}

			dist := math.Sqrt(distSq)
			normal := delta.Scale(1 / dist)
			s.world.Contacts.Push(engine.ContactEvent2[float64]{
				Bodies: [2]engine.Entity{a.entity, b.entity},
				Contact: physics.Contact2[float64]{
					Normal:           normal,
					PenetrationDepth: minDist - dist,
					ContactPoint:     posA.Add(normal.Scale(a.radius)),
				},
			})
			found++
		}

		// Screen edges, normal always ball -> wall
		type edge struct {
			normal vmath.Vec2[float64]
			depth  float64
		}
		edges := []edge{
			{vmath.Vec2[float64]{X: 0, Y: 1}, posA.Y + a.radius - float64(s.height)},
			{vmath.Vec2[float64]{X: -1, Y: 0}, a.radius - posA.X},
			{vmath.Vec2[float64]{X: 1, Y: 0}, posA.X + a.radius - float64(s.width)},
		}
		for _, w := range edges {
			if w.depth <= 0 {
				continue
			}
			s.world.Contacts.Push(engine.ContactEvent2[float64]{
				Bodies: [2]engine.Entity{a.entity, s.floor},
				Contact: physics.Contact2[float64]{
					Normal:           w.normal,
					PenetrationDepth: w.depth,
					ContactPoint:     posA.Add(w.normal.Scale(a.radius)),
				},
			})
			found++
		}
	}

	s.impacts = found
}

func (s *Sandbox) step(dt float64) {
	s.integrate(dt)
	s.detect()
	s.world.Step(time.Duration(dt * float64(time.Second)))

	if s.impacts > 0 {
		s.playImpactSound()
	}
}

func (s *Sandbox) handleResize() {
	s.width, s.height = s.screen.Size()
}

func (s *Sandbox) draw() {
	s.screen.Clear()

	for _, b := range s.balls {
		pose, _ := s.world.Poses.Get(b.entity)
		pos := pose.Value.Position()

		// Terminal cells are roughly twice as tall as wide
		cx, cy := pos.X, pos.Y
		for y := -b.radius; y <= b.radius; y++ {
			for x := -b.radius; x <= b.radius; x++ {
				if x*x+y*y > b.radius*b.radius {
					continue
				}
				sx, sy := int(cx+x), int(cy+y/2)
				if sx >= 0 && sx < s.width && sy >= 0 && sy < s.height {
					s.screen.SetContent(sx, sy, '●', nil, b.style)
				}
			}
		}
	}

	status := fmt.Sprintf(" balls: %d  contacts: %d  [space] drop  [esc] quit ", len(s.balls), s.impacts)
	for i, r := range status {
		if i < s.width {
			s.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
		}
	}

	s.screen.Show()
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				s.dropBall()
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		s.handleResize()
	}

	return true
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(frameTimeMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}

		case <-ticker.C:
			s.step(float64(frameTimeMs) / 1000)
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	if s.audioInit {
		speaker.Close()
	}
	s.screen.Fini()
}

func main() {
	sandbox, err := NewSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
}
