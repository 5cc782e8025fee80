package updater

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/selfupdate"
)

// SelfUpdateApplier swaps the executable using minio/selfupdate, which writes
// the new binary next to the target and renames it into place.
type SelfUpdateApplier struct {
	// OldSavePath keeps the previous binary at this path when set
	OldSavePath string
}

// NewSelfUpdateApplier creates the default applier
func NewSelfUpdateApplier() *SelfUpdateApplier {
	return &SelfUpdateApplier{}
}

// Apply replaces targetPath with the content of binary
func (a *SelfUpdateApplier) Apply(ctx context.Context, binary io.Reader, targetPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := selfupdate.Options{
		TargetPath:  targetPath,
		OldSavePath: a.OldSavePath,
	}
	if err := opts.CheckPermissions(); err != nil {
		return fmt.Errorf("cannot write %s: %w", targetPath, err)
	}

	if err := selfupdate.Apply(binary, opts); err != nil {
		if rerr := selfupdate.RollbackError(err); rerr != nil {
			return fmt.Errorf("replace failed and rollback failed: %w", rerr)
		}
		return fmt.Errorf("replace %s: %w", targetPath, err)
	}
	return nil
}
