package render

import (
	"fmt"
	"strings"

	"github.com/Kim-dr/paper-explorer/pkg/analytics"
)

const (
	cloudWidth  = 400
	cloudHeight = 300
	minFontSize = 14
	maxFontSize = 40
)

// cloudPalette cycles deterministically so repeated renders of the same
// frequencies produce identical markup.
var cloudPalette = []string{"#1f77b4", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2"}

// WordCloudSVG lays the words out as a simple left-to-right flow with
// font size scaled by count, and returns an inline SVG fragment. Empty
// input returns an empty string; the caller skips the render.
func WordCloudSVG(words []analytics.WordCount) string {
	if len(words) == 0 {
		return ""
	}

	minCount, maxCount := words[0].Count, words[0].Count
	for _, wc := range words {
		if wc.Count < minCount {
			minCount = wc.Count
		}
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
	}

	size := func(count int) int {
		if maxCount == minCount {
			return (minFontSize + maxFontSize) / 2
		}
		return minFontSize + (maxFontSize-minFontSize)*(count-minCount)/(maxCount-minCount)
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" style="background:#fff">`,
		cloudWidth, cloudHeight, cloudWidth, cloudHeight)

	x, y := 8, maxFontSize
	for i, wc := range words {
		fs := size(wc.Count)
		// Rough glyph-width estimate; exact metrics do not matter for a
		// decorative cloud.
		wordWidth := int(float64(fs) * 0.6 * float64(len(wc.Word)))
		if x+wordWidth > cloudWidth-8 {
			x = 8
			y += maxFontSize + 6
		}
		if y > cloudHeight-8 {
			break
		}
		fmt.Fprintf(&b,
			`<text x="%d" y="%d" font-size="%d" font-family="sans-serif" fill="%s">%s</text>`,
			x, y, fs, cloudPalette[i%len(cloudPalette)], wc.Word)
		x += wordWidth + 10
	}

	b.WriteString(`</svg>`)
	return b.String()
}
