package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

func GenerateUuid() string {
	uuid1, err := uuid.NewUUID()
	if err != nil {
		panic("Failed to generate UUID")
	}

	return uuid1.String()
}

func IsDirectoryWritable(path string) bool {
	probe := filepath.Join(path, ".probe")
	if err := os.WriteFile(probe, []byte{}, 0600); err != nil {
		return false
	}
	_ = os.Remove(probe)

	return true
}
