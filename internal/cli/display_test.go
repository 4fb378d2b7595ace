package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_SingleLineDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	d := newDisplay(&buf)

	d.Errorf("compose file %s does not exist", "dc.yml")

	out := buf.String()
	assert.Contains(t, out, "dazel:")
	assert.Contains(t, out, "compose file dc.yml does not exist")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")), "one diagnostic, one line")
}

func TestDisplay_Infof(t *testing.T) {
	var buf bytes.Buffer
	d := newDisplay(&buf)

	d.Infof("ensuring %s is ready (dazel %s)", "dazel_build", "1.2.3")

	out := buf.String()
	assert.Contains(t, out, "dazel:")
	assert.Contains(t, out, "ensuring dazel_build is ready (dazel 1.2.3)")
}

func TestDisplay_PlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	d := newDisplay(&buf)

	d.Warnf("unrecognized key %q ignored", "DAZEL_X")

	assert.NotContains(t, buf.String(), "\x1b[", "no ANSI sequences on a non-terminal writer")
}
