// Package headerbar renders the one-line title bar.
package headerbar

import (
	"github.com/llehouerou/wavetube/internal/ui/render"
	"github.com/llehouerou/wavetube/internal/ui/styles"
)

// Height is the header bar height.
const Height = 1

const appName = "WaveTube"

// Render draws the gradient app name on the left and the list label
// (e.g. "Trending" or "Search: foo") on the right.
func Render(label string, width int) string {
	if width < len(appName)+2 {
		return ""
	}
	t := styles.T()
	name := styles.Gradient(appName, t.Primary, t.Secondary)
	room := width - len(appName) - 3
	if room < 1 {
		return render.Pad(name, width)
	}
	right := t.S().Muted.Render(render.Truncate(label, room))
	return render.Row(name, right, width)
}
