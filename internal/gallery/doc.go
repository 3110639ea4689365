// Package gallery lays photos out on concentric hexagonal rings and animates
// them.
//
// Distribute packs an image count into rings (1 in the center, 6n on ring n)
// and Build turns the rings into a Table of per-item state. A Gallery owns
// the table of the current build generation together with the processes
// that mutate it:
//
//   - Simulator eases every item toward a target offset that is re-rolled
//     every ResamplePeriod and advances a sinusoidal breathing scale.
//   - HoverEngine marks the hovered item and pushes near neighbours away,
//     undoing the push when the pointer leaves.
//   - Enlargement gates exclusive full-screen presentation of one item and
//     suspends both of the above while active.
//
// Everything runs on the caller's update loop; there is no internal
// locking. Rebuild replaces the table and the simulator, so nothing from a
// previous generation keeps running.
package gallery
