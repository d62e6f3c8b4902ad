package console

import (
	"fmt"
	"time"
)

// timeLayout is the wall-clock format used in all status lines.
const timeLayout = "2006-01-02 15:04:05"

// formatHHMMSS renders a duration as HH:MM:SS, clamping negatives to zero.
func formatHHMMSS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
