package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Pregunta", Score{Correct: 3, Total: 5}, 80)
	assert.Contains(t, h, AppName)
	assert.Contains(t, h, "Pregunta")
	assert.Contains(t, h, "✓ 3")
	assert.Contains(t, h, "/ 5")
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "N", Description: "Nueva pregunta"}, {Key: "Esc", Description: "Menú"}}, 80)
	assert.Contains(t, f, "Nueva pregunta")
	assert.Contains(t, f, "Menú")
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	assert.True(t, strings.Contains(msg, "40 x 10"))
}
