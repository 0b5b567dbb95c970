package ui

import (
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays the pickup and collision sounds. Missing files or a missing
// audio device leave it silent.
type Audio struct {
	pickup    *rl.Sound
	collision *rl.Sound
	device    bool
}

// NewAudio opens the audio device and loads pickup.wav and hit.wav from dir.
func NewAudio(dir string) *Audio {
	a := &Audio{}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		log.Printf("[Audio] no audio device, sounds disabled")
		return a
	}
	a.device = true
	a.pickup = loadSound(filepath.Join(dir, "pickup.wav"))
	a.collision = loadSound(filepath.Join(dir, "hit.wav"))
	return a
}

func loadSound(path string) *rl.Sound {
	if _, err := os.Stat(path); err != nil {
		log.Printf("[Audio] %s not found, skipping", path)
		return nil
	}
	s := rl.LoadSound(path)
	return &s
}

func (a *Audio) Pickup() {
	if a.pickup != nil {
		rl.PlaySound(*a.pickup)
	}
}

func (a *Audio) Collision() {
	if a.collision != nil {
		rl.PlaySound(*a.collision)
	}
}

func (a *Audio) Close() {
	for _, s := range []*rl.Sound{a.pickup, a.collision} {
		if s != nil {
			rl.UnloadSound(*s)
		}
	}
	if a.device {
		rl.CloseAudioDevice()
	}
}
