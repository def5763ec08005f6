// Package state implements persistence for the simulated robot State.
//
// The FileRepository stores and loads the state as protobuf JSON on an afero
// filesystem and exposes a Repository interface that the simulator
// service depends on.
package state
