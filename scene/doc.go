// Package scene is the minimal scene graph a carousel is drawn from: a tree
// of transformable nodes, some carrying a mesh, viewed by a single
// perspective camera looking down -Z.
//
// Meshes are unit quads in their node's local space. Rotation is about the Z
// axis only and depth is translated, never scaled, so a node's world
// transform is a 2D affine matrix plus a depth.
package scene
