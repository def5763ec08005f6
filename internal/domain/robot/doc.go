// Package robot contains domain types describing the robot the clock drives.
//
// Status is what the clock can observe (charger contacts, lift, head),
// Display is the face LCD geometry, and State is the full simulated robot
// persisted by robot-sim.
package robot
