// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gg"

	"github.com/gogpu/carousel/scene"
)

// Errors returned by renderers.
var (
	// ErrNoPixels is returned for targets without CPU-visible storage.
	ErrNoPixels = errors.New("render: target has no pixel storage")

	// ErrUnsupportedFormat is returned for targets whose pixel format the
	// renderer cannot write.
	ErrUnsupportedFormat = errors.New("render: unsupported target format")

	// ErrNoCamera is returned when a frame has no camera.
	ErrNoCamera = errors.New("render: frame has no camera")
)

// Frame is everything needed to draw one picture.
type Frame struct {
	// Root is the scene tree. Every node carrying a mesh is drawn.
	Root *scene.Node

	// Camera views the scene.
	Camera *scene.Camera

	// Background fills the target before meshes are drawn.
	Background gg.RGBA
}

// Renderer executes drawing commands to a render target.
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, typically the frame loop that also mutates the scene.
type Renderer interface {
	// Render draws the frame to the target. The scene is not modified.
	Render(target RenderTarget, frame *Frame) error

	// Flush ensures all pending rendering operations are complete.
	Flush() error
}
