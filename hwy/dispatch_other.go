//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode.
	setScalarMode()
}

// HasAVX2 returns false on architectures other than amd64.
func HasAVX2() bool {
	return false
}
