package format

import (
	"fmt"
	"strings"
)

// ProgressBar renders done/total as a bar of width cells followed by the
// counts, e.g. "[████░░░░] 1/2".
func ProgressBar(done, total, width int) string {
	progress := 0.0
	if total > 0 {
		progress = float64(done) / float64(total)
	}
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(width))

	var builder strings.Builder
	builder.Grow(width*3 + 16)
	builder.WriteByte('[')
	for i := 0; i < width; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	builder.WriteByte(']')
	fmt.Fprintf(&builder, " %d/%d", done, total)
	return builder.String()
}
