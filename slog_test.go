package errv_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mickamy/errv"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		// Remove time for deterministic output.
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	owned := errv.New("disk full")
	defer owned.Release()

	tests := []struct {
		name     string
		v        errv.Value
		wantMsg  string
		wantKind string
	}{
		{name: "owned", v: owned, wantMsg: "disk full", wantKind: "owned"},
		{name: "borrowed", v: errv.Static("timeout"), wantMsg: "timeout", wantKind: "borrowed"},
		{name: "borrowed empty", v: errv.Static(""), wantMsg: "", wantKind: "borrowed"},
		{name: "invalid utf8", v: errv.Static("bad \xff byte"), wantMsg: "bad � byte", wantKind: "borrowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newJSONLogger(&buf).Info("operation failed", "error", tt.v)

			var m map[string]any
			if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
				t.Fatalf("failed to parse JSON: %v\nbody: %s", err, buf.String())
			}
			errObj, ok := m["error"].(map[string]any)
			if !ok {
				t.Fatalf("expected error to be an object, got: %v", m["error"])
			}
			if errObj["msg"] != tt.wantMsg {
				t.Errorf("msg = %v, want %q", errObj["msg"], tt.wantMsg)
			}
			if errObj["kind"] != tt.wantKind {
				t.Errorf("kind = %v, want %q", errObj["kind"], tt.wantKind)
			}
		})
	}
}

func TestLogValue_Unset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newJSONLogger(&buf).Info("ok", "error", errv.Value{})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if _, ok := m["error"]; ok {
		t.Errorf("unset value should be omitted, got: %v", m["error"])
	}
}

func TestSlogAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newJSONLogger(&buf).Error("operation failed", errv.SlogAttr(errv.Static("timeout")))

	want := `{"level":"ERROR","msg":"operation failed","error":{"msg":"timeout","kind":"borrowed"}}` + "\n"
	if buf.String() != want {
		t.Errorf("output = %s, want %s", buf.String(), want)
	}
}

func TestSlogAttr_Unset(t *testing.T) {
	t.Parallel()

	attr := errv.SlogAttr(errv.Value{})
	if !attr.Equal(slog.Attr{}) {
		t.Errorf("SlogAttr(unset) = %v, want zero Attr", attr)
	}
}
