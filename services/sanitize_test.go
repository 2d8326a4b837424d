package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitiseCardTextStripsScript(t *testing.T) {
	clean, err := SanitiseCardText(`What is myopia?<script>alert(1)</script>`)
	require.NoError(t, err)
	assert.Equal(t, "What is myopia?", clean)
}

func TestSanitiseCardTextKeepsFormatting(t *testing.T) {
	clean, err := SanitiseCardText(`<b>20/20</b> is normal visual acuity`)
	require.NoError(t, err)
	assert.Equal(t, `<b>20/20</b> is normal visual acuity`, clean)
}

func TestSanitiseCardTextKeepsImages(t *testing.T) {
	clean, err := SanitiseCardText(`<img src="fundus.png" alt="fundus"> Name the structure`)
	require.NoError(t, err)
	assert.Contains(t, clean, `<img`)
	assert.Contains(t, clean, `src="fundus.png"`)
}

func TestSanitiseCardTextRejectsEmptyResult(t *testing.T) {
	_, err := SanitiseCardText(`<script>alert(1)</script>`)
	require.Error(t, err)

	_, err = SanitiseCardText("   ")
	require.Error(t, err)
}
