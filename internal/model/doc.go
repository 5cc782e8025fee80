package model

// Package model defines domain data structures used across the app: table
// rows, the update dialog state, and page selection. Structures are designed
// for direct rendering in the UI and explicit state transitions.
