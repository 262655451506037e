package mailer

import (
	"strings"
	"testing"
)

func TestContactHTMLEscapes(t *testing.T) {
	out := contactHTML("<b>Eve</b>", "eve@example.com", `hello <script>alert(1)</script>`)
	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>Eve</b>") {
		t.Errorf("unescaped input in rendered mail: %s", out)
	}
	if !strings.Contains(out, "eve@example.com") {
		t.Error("email missing from rendered mail")
	}
}
