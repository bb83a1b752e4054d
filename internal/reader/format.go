package reader

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count in the largest binary unit where the value
// is at least 1: no decimals at the byte scale, one decimal above it.
// Zero renders as "0 B".
func FormatSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", int64(size), sizeUnits[i])
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[i])
}
