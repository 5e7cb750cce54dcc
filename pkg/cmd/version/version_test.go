package version

import (
	"bytes"
	"testing"
)

func TestVersionOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := NewCmdVersion()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.String(); got != "mdn version 0.1.0\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
