// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a carousel scene into a pixel target.
//
// # Core Interfaces
//
//   - RenderTarget: where rendering output goes
//   - Renderer: draws a Frame (scene root, camera, background) to a target
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU rendering on top of gg. Each mesh is projected
//     through the camera and filled with a per-pixel brush that evaluates
//     the mesh's shader program.
//
// GPU hosts consume the same programs as WGSL through package shader and do
// not go through this package.
//
// # Usage
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	frame := &render.Frame{Root: root, Camera: camera}
//	if err := renderer.Render(target, frame); err != nil {
//	    log.Printf("render failed: %v", err)
//	}
package render
