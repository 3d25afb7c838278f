package mylog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardLogger(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")

	t.Run("Writes component, label and message", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewWriterLogger("cart", buf)

		logger.Log(context.TODO(), "p1", SeverityWarn, "Item %s not found", "p1")

		got := buf.String()
		assert.Contains(t, got, `"component":"cart"`)
		assert.Contains(t, got, `"aggregate":"p1"`)
		assert.Contains(t, got, `"level":"warn"`)
		assert.Contains(t, got, `"message":"Item p1 not found"`)
	})

	t.Run("Debug is filtered at default level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewWriterLogger("cart", buf)

		logger.Log(context.TODO(), "", SeverityDebug, "noise")

		assert.Empty(t, buf.String())
	})
}

func TestGcloudEntry(t *testing.T) {
	got := entry{Component: "checkout", Severity: "ERROR", Message: "checkout:boom"}.String()

	assert.JSONEq(t, `{"component":"checkout","severity":"ERROR","message":"checkout:boom"}`, got)
}
