package pacman

import "os"

// DefaultLogPath is pacman's append-only operation log.
const DefaultLogPath = "/var/log/pacman.log"

// ReadLog returns the full log content and its byte length. Any failure
// degrades to empty content and length 0 — a missing or unreadable log
// means "no history", not an error.
func ReadLog(path string) ([]byte, int64) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0
	}
	return data, int64(len(data))
}

// LogSize returns the log's byte length without reading its content.
// Returns 0 on any error, mirroring ReadLog's failure sentinel.
func LogSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
