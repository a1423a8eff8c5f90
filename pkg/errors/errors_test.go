package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewErrorString(t *testing.T) {
	err := &ViewError{
		Op:   "attrs.Parse",
		Kind: KindParsing,
		Attr: "ball_radius",
		Err:  &ValueError{Expected: "dimension", Got: "ten"},
	}
	assert.Equal(t, `attrs.Parse [parsing] attr=ball_radius: expected dimension, got string ten`, err.Error())

	plain := &ViewError{Op: "attrs.Load", Kind: KindConfig, Err: io.EOF}
	assert.Equal(t, "attrs.Load [config]: EOF", plain.Error())
}

func TestViewErrorUnwrap(t *testing.T) {
	err := &ViewError{Op: "attrs.Load", Kind: KindConfig, Err: io.ErrUnexpectedEOF}
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))

	var target *ValueError
	wrapped := &ViewError{Op: "x", Err: &ValueError{Expected: "color", Got: 3}}
	require.True(t, stderrors.As(wrapped, &target))
	assert.Equal(t, "color", target.Expected)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParsing, "parsing"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
	assert.Equal(t, "panic in widgets.Paint: boom", (&PanicError{Op: "widgets.Paint", Value: "boom"}).Error())
}

type captureHandler struct {
	errs   []*ViewError
	panics []*PanicError
}

func (c *captureHandler) HandleError(err *ViewError)  { c.errs = append(c.errs, err) }
func (c *captureHandler) HandlePanic(err *PanicError) { c.panics = append(c.panics, err) }

func TestReportAndRecover(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&ViewError{Op: "test", Err: io.EOF})
	Report(nil)
	require.Len(t, h.errs, 1)
	assert.False(t, h.errs[0].Timestamp.IsZero())

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()
	require.Len(t, h.panics, 1)
	assert.Equal(t, "test.op", h.panics[0].Op)
	assert.Equal(t, "kaboom", h.panics[0].Value)
	assert.NotEmpty(t, h.panics[0].StackTrace)
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	_, ok := getHandler().(*LogHandler)
	assert.True(t, ok)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := &LogHandler{Logger: logger, Verbose: true}

	h.HandleError(&ViewError{Op: "attrs.Parse", Kind: KindParsing, Attr: "ball_color", Err: io.EOF})
	h.HandlePanic(&PanicError{Op: "widgets.Paint", Value: "boom", StackTrace: "frame"})
	h.HandleError(nil)
	h.HandlePanic(nil)

	out := buf.String()
	assert.Contains(t, out, "op=attrs.Parse")
	assert.Contains(t, out, "kind=parsing")
	assert.Contains(t, out, "attr=ball_color")
	assert.Contains(t, out, "value=boom")
	assert.Contains(t, out, "stack=frame")
}
