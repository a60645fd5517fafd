package cmdutil_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seqalign/internal/cmdutil"
)

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, cmdutil.IsBrokenPipe(syscall.EPIPE))
	assert.True(t, cmdutil.IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.False(t, cmdutil.IsBrokenPipe(nil))
	assert.False(t, cmdutil.IsBrokenPipe(errors.New("disk full")))
}

func TestNewLogger_Levels(t *testing.T) {
	cases := []struct {
		level             string
		debug, info, errs bool
	}{
		{cmdutil.LevelQuiet, false, false, true},
		{cmdutil.LevelInfo, false, true, true},
		{cmdutil.LevelTrace, true, true, true},
		{"", false, true, true},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		log := cmdutil.NewLogger(&buf, tc.level)
		log.Debug("d-msg")
		log.Info("i-msg", "k", 1)
		log.Error("e-msg")

		out := buf.String()
		assert.Equal(t, tc.debug, bytes.Contains(buf.Bytes(), []byte("d-msg")), tc.level)
		assert.Equal(t, tc.info, bytes.Contains(buf.Bytes(), []byte("i-msg k=1")), tc.level)
		assert.Equal(t, tc.errs, bytes.Contains(buf.Bytes(), []byte("e-msg")), tc.level)
		assert.NotContains(t, out, "time=", tc.level)
	}
}
