// Package uimodel is the visual component tree of a track.
//
// A track is a row of [Component] values. Every component owns a back and a
// front [gfx.Layer] and hands trains to its [TrainTaker], normally the next
// component in the row. Composite components ([HorizontalComponent]) splice
// their children into that chain and forward train created/destroyed
// notifications to their own [TrainsChangedListener].
//
// Trains move from left to right at a fixed speed, never overlap, and wait at
// the right edge of a component until the next one reports room through
// LeftBlock.
package uimodel
