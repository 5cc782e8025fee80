package platform

// Package platform contains OS integration glue: the user's Downloads folder,
// revealing and opening files, and locating or relaunching the executable.
