package gfx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor    = color.RGBA{R: 0xbf, G: 0xe8, B: 0xff, A: 0xff}
	pipeColor   = color.RGBA{R: 0xfc, G: 0x56, B: 0xa9, A: 0xff}
	furColor    = color.RGBA{R: 0xff, G: 0xd2, B: 0x4a, A: 0xff}
	earColor    = color.RGBA{R: 0xf2, G: 0xa6, B: 0x2c, A: 0xff}
	eyeColor    = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	noseColor   = color.RGBA{R: 0xfc, G: 0x56, B: 0xa9, A: 0xff}
	cloudColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shadowColor = color.RGBA{A: 0x99}
)

// spriteSize is the side of the square kitty sprite in pixels. Drawing
// scales it to the actor size.
const spriteSize = 64

// cloudW and cloudH are the cloud sprite bounds. Clouds are drawn at
// size x size*0.6, matching this aspect.
const (
	cloudW = 100
	cloudH = 60
)

const (
	risingTilt  = -20.0 // degrees
	fallingTilt = 60.0
)

// tiltAngle returns the kitty rotation in radians for its direction.
func tiltAngle(rising bool) float64 {
	deg := fallingTilt
	if rising {
		deg = risingTilt
	}
	return deg * math.Pi / 180
}

// newKittySprite paints a round kitty face.
func newKittySprite() *ebiten.Image {
	img := ebiten.NewImage(spriteSize, spriteSize)
	const c = spriteSize / 2

	vector.DrawFilledCircle(img, c-16, 14, 10, earColor, true)
	vector.DrawFilledCircle(img, c+16, 14, 10, earColor, true)
	vector.DrawFilledCircle(img, c, c+2, 26, furColor, true)

	vector.DrawFilledCircle(img, c-9, c-2, 4, eyeColor, true)
	vector.DrawFilledCircle(img, c+9, c-2, 4, eyeColor, true)
	vector.DrawFilledCircle(img, c, c+7, 3, noseColor, true)

	vector.StrokeLine(img, c-22, c+8, c-8, c+9, 1.5, eyeColor, true)
	vector.StrokeLine(img, c+8, c+9, c+22, c+8, 1.5, eyeColor, true)
	return img
}

// newCloudSprite paints an opaque cloud; opacity is applied when drawing.
func newCloudSprite() *ebiten.Image {
	img := ebiten.NewImage(cloudW, cloudH)
	vector.DrawFilledCircle(img, 28, 36, 22, cloudColor, true)
	vector.DrawFilledCircle(img, 52, 26, 25, cloudColor, true)
	vector.DrawFilledCircle(img, 74, 38, 20, cloudColor, true)
	vector.DrawFilledRect(img, 28, 38, 46, 20, cloudColor, true)
	return img
}
