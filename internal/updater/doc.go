package updater

// Package updater implements the self-update flow: it lists releases from a
// release source (GitHub by default), decides whether the newest one should
// replace the running build, downloads the platform asset and swaps the
// executable in place. Controller runs check/apply on background workers and
// hands results back to the UI goroutine through one-shot channels.
