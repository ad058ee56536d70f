// Package jshost shows a carousel in a browser page when compiled to
// WebAssembly.
//
// Host draws into a canvas it appends to a container element and listens
// for mouse, touch, wheel and resize events on the page. Scheduler drives
// frames with requestAnimationFrame and timers with setTimeout, so every
// callback runs on the page's event loop.
package jshost
