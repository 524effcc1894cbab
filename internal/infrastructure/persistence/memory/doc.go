// Package memory provides in-memory implementations of the domain repository
// interfaces. Stores are plain maps with linear-scan filtering: data volumes
// are small and the process model is single-caller, so there is no locking.
// Concurrent callers must serialize externally (the HTTP layer does so with
// middleware.Serialize). Reads return copies so callers only change stored
// state through Save.
package memory
