// Package face rasterizes the clock shown on the robot's face LCD and
// converts frames to and from the packed 1-bit screen format.
package face
