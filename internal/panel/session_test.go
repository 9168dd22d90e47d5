package panel

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func replyTypes(t *testing.T, out string) []string {
	t.Helper()
	var types []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		data := scanner.Bytes()
		if !bytes.HasPrefix(data, []byte("{")) {
			t.Fatalf("reply is not a JSON object: %s", data)
		}
		switch {
		case bytes.Contains(data, []byte(`"type":"colors-extracted"`)):
			types = append(types, TypeColorsExtracted)
		case bytes.Contains(data, []byte(`"type":"no-selection"`)):
			types = append(types, TypeNoSelection)
		case bytes.Contains(data, []byte(`"type":"json-ready"`)):
			types = append(types, TypeJSONReady)
		case bytes.Contains(data, []byte(`"type":"error"`)):
			types = append(types, TypeError)
		default:
			types = append(types, string(data))
		}
	}
	return types
}

func TestSessionRun(t *testing.T) {
	in := strings.Join([]string{
		`{"type":"extract-colors","pattern":"tailwind"}`,
		``,
		`not json`,
		`{"type":"export-json","pattern":"tailwind","colors":[{"hex":"#0000FF","tokenName":"blue-500"}]}`,
		`{"type":"close"}`,
		`{"type":"extract-colors"}`,
	}, "\n")
	var out bytes.Buffer

	s := NewSession(NewHandler(selection(blueFrame())), strings.NewReader(in), &out, nil)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := replyTypes(t, out.String())
	want := []string{TypeColorsExtracted, TypeError, TypeJSONReady}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("replies = %v, want %v", got, want)
	}
}

func TestSessionRunEOF(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(NewHandler(selection()), strings.NewReader(`{"type":"extract-colors"}`), &out, nil)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := replyTypes(t, out.String()); len(got) != 1 || got[0] != TypeNoSelection {
		t.Errorf("replies = %v, want [no-selection]", got)
	}
}

func TestSessionRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewSession(NewHandler(selection()), pr, io.Discard, nil).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}
