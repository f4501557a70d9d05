// Package assets bundles the shaders and the music clip into the binary.
package assets

import _ "embed"

var (
	//go:embed shaders/teapot.vert
	TeapotVertexShader string

	//go:embed shaders/teapot.frag
	TeapotFragmentShader string

	//go:embed shaders/font.vert
	FontVertexShader string

	//go:embed shaders/font.frag
	FontFragmentShader string

	// Music is the looped background track. Any RIFF/WAVE or MP3 clip works.
	//
	//go:embed audio/loop.wav
	Music []byte
)
