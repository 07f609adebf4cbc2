package main

import (
	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// generateBackground pre-renders the dark noise backdrop once per session.
func generateBackground(width, height int, seed int64) *ebiten.Image {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Noise2D returns roughly [-1, 1]
			n := (noise.Noise2D(float64(x)*0.01, float64(y)*0.01) + 1) / 2
			shade := byte(10 + n*20)
			i := (y*width + x) * 4
			pix[i] = shade
			pix[i+1] = shade
			pix[i+2] = shade + 8
			pix[i+3] = 255
		}
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pix)
	return img
}
