// +build !windows

package apply

func hideFile(path string) error {
	return nil
}
