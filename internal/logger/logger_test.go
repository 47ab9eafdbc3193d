package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, false)
	l.Infof("ratio %d%%", 42)
	l.Errorf("bad %s", "file")

	expect := "[INFO] ratio 42%\n[ERROR] bad file\n"
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}

	buf.Reset()
	l = New(&buf, true)
	l.Infof("hidden")
	l.Errorf("shown")
	if expect, actual := "[ERROR] shown\n", buf.String(); expect != actual {
		t.Errorf("wrong quiet output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
