package store

// Package store holds the in-memory table rows shown by the UI. It is owned
// by the UI goroutine and carries no locking.
