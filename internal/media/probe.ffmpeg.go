package media

import (
	"encoding/json"
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// probeFormat là phần format trong output JSON của ffprobe
type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration đọc thời lượng (giây) của một file video local bằng ffprobe
func ProbeDuration(localFile string) (float64, error) {
	out, err := ffmpeg.Probe(localFile)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe probeFormat
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe output missing duration")
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", probe.Format.Duration, err)
	}

	return duration, nil
}
