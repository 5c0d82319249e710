package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Infof("hidden %d", 1)
	New(&buf, false).Errorf("shown %d", 2)
	New(&buf, true).Infof("shown %d", 3)
	assert.Equal(t, "huffpack: [ERROR] shown 2\nhuffpack: [INFO] shown 3\n", buf.String())
}
