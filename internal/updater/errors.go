package updater

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReleases means the release list was empty
	ErrNoReleases = errors.New("no releases published")

	// ErrMalformedRelease means the newest release has no usable version
	ErrMalformedRelease = errors.New("release has no version tag")

	// ErrReleaseNotFound means the accepted version is no longer published
	ErrReleaseNotFound = errors.New("accepted release is no longer published")

	// ErrNoAsset means no asset matches the running platform
	ErrNoAsset = errors.New("no release asset for this platform")

	// ErrNotExecutable means the downloaded payload is not a binary
	ErrNotExecutable = errors.New("downloaded file is not an executable")

	// ErrChecksumMismatch means the published checksum did not match
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrBusy means a check or apply is already running
	ErrBusy = errors.New("an update operation is already in progress")

	// ErrInvalidTransition means the requested action is not allowed in the current phase
	ErrInvalidTransition = errors.New("action not allowed in current update state")
)

// CheckError wraps failures of the release check
type CheckError struct {
	Err error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("update check failed: %v", e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// ApplyError wraps failures while downloading, verifying or replacing the binary
type ApplyError struct {
	Version string
	Err     error
}

func (e *ApplyError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("update failed: %v", e.Err)
	}
	return fmt.Sprintf("update to %s failed: %v", e.Version, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}
