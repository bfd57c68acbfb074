package platform

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nociriysname/hostdiag/internal/probe"
)

func TestParseShellGeometry(t *testing.T) {
	out := "WINDOW=41943047\nX=0\nY=27\nWIDTH=1920\nHEIGHT=1053\nSCREEN=0\n"

	size, err := parseShellGeometry(out)
	assert.NilError(t, err)
	assert.Equal(t, size, probe.WindowSize{Width: 1920, Height: 1053})
}

func TestParseShellGeometryMissingFields(t *testing.T) {
	_, err := parseShellGeometry("WINDOW=1\nWIDTH=800\n")
	assert.ErrorContains(t, err, "no geometry")

	_, err = parseShellGeometry("")
	assert.ErrorContains(t, err, "no geometry")
}

func TestFirstWindowID(t *testing.T) {
	id, err := firstWindowID("\n  62914561\n62914563\n")
	assert.NilError(t, err)
	assert.Equal(t, id, "62914561")

	_, err = firstWindowID("  \n")
	assert.ErrorContains(t, err, "no windows")
}
