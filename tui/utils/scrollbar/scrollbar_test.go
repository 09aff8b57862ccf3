package scrollbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
)

func lines(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = "line"
	}
	return strings.Join(out, "\n")
}

func TestGenerateFittingContentIsBlank(t *testing.T) {
	vp := viewport.New(10, 5)
	vp.SetContent(lines(3))
	assert.Equal(t, []string{" ", " ", " ", " ", " "}, Generate(&vp, 5))
}

func TestGenerateThumbTracksScroll(t *testing.T) {
	vp := viewport.New(10, 4)
	vp.SetContent(lines(16))

	top := Generate(&vp, 4)
	assert.Equal(t, thumb, top[0])
	assert.Equal(t, track, top[3])

	vp.GotoBottom()
	bottom := Generate(&vp, 4)
	assert.Equal(t, track, bottom[0])
	assert.Equal(t, thumb, bottom[3])
}

func TestGenerateZeroHeight(t *testing.T) {
	vp := viewport.New(10, 4)
	assert.Empty(t, Generate(&vp, 0))
}

func TestOverlayAppendsColumn(t *testing.T) {
	vp := viewport.New(4, 2)
	vp.SetContent(lines(8))
	out := strings.Split(Overlay(&vp), "\n")
	assert.Len(t, out, 2)
	assert.True(t, strings.HasSuffix(out[0], thumb))
}
