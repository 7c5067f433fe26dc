package constants

import (
	"os"
	"strconv"
)

func GetChordsPath() string {
	path := os.Getenv("CHORDS_PATH")
	if path != "" {
		return path
	}
	return "data/guitar_chords.csv"
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetRenderScale is the number of pixels per diagram unit. A fret cell is
// 1.4 units high.
func GetRenderScale() float64 {
	scale, err := strconv.ParseFloat(os.Getenv("RENDER_SCALE"), 64)
	if err != nil || scale <= 0 {
		return DefaultRenderScale
	}
	return scale
}

const DefaultRenderScale = 40

// requests per second the diagram server renders before throttling
const RenderRateLimit = 20

const RenderBurst = 40
