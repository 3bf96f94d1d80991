package pacman

import (
	"bytes"
	"os/exec"
	"strings"
)

// QueryExplicit returns the names of explicitly installed packages as
// reported by `pacman -Qeq`, in pacman's output order. Returns an empty
// list if pacman is not on PATH or the command fails — callers must not
// treat this as an error.
func QueryExplicit() []string {
	cmd := exec.Command("pacman", "-Qeq")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return parsePackageList(out)
}

// parsePackageList splits newline-separated package names, dropping blank
// lines. Order is preserved: the installed-set fingerprint is computed
// over the list exactly as pacman reported it.
func parsePackageList(out []byte) []string {
	var packages []string
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		name := strings.TrimSpace(string(line))
		if name == "" {
			continue
		}
		packages = append(packages, name)
	}
	return packages
}
