package lucid_test

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// withCapturedStdout redirects os.Stdout for the duration of fn and appends
// everything written to buf. Print statements go straight to os.Stdout (the
// same convention amoghasbhardwaj-Eloquence/evaluator uses), so assertions
// on printed output have to capture the real file descriptor.
func withCapturedStdout(t *testing.T, buf *bytes.Buffer, fn func()) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	done := make(chan struct{})
	go func() {
		io.Copy(buf, r)
		close(done)
	}()

	fn()

	w.Close()
	<-done
}
