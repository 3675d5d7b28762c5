// Package apply swaps the running executable for a newly downloaded build.
// The incoming binary is written beside the current one and renamed into
// place, with a rollback if the final rename fails.
package apply

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type rollbackErr struct {
	error             // original error
	rollbackErr error // error encountered while rolling back
}

func Apply(update io.Reader) error {
	targetPath, err := os.Executable()
	if err != nil {
		return err
	}

	updateDir := filepath.Dir(targetPath)
	filename := filepath.Base(targetPath)

	newPath := filepath.Join(updateDir, fmt.Sprintf(".%s.new", filename))

	fp, err := os.OpenFile(newPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}

	if _, err := io.Copy(fp, update); err != nil {
		fp.Close()
		return err
	}

	// windows won't let us move the new executable while the file is open
	if err := fp.Close(); err != nil {
		return err
	}

	oldPath := filepath.Join(updateDir, fmt.Sprintf(".%s.old", filename))

	// delete any leftover old exec file; windows rename operations fail if
	// the destination already exists, and after a previous update windows
	// can't remove the .old file while the process is still running
	_ = os.Remove(oldPath)

	if err := os.Rename(targetPath, oldPath); err != nil {
		return err
	}

	if err := os.Rename(newPath, targetPath); err != nil {
		// the existing binary moved but the new one didn't take its place,
		// so no file sits at the executable's path; restore the old binary
		// before reporting
		if rerr := os.Rename(oldPath, targetPath); rerr != nil {
			return &rollbackErr{err, rerr}
		}

		return err
	}

	if err := os.Remove(oldPath); err != nil {
		// windows has trouble removing old binaries, so hide it instead
		_ = hideFile(oldPath)
	}

	return nil
}
