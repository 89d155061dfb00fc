package views

import (
	"context"
	"strings"
	"testing"

	"github.com/Ko-stant/levelgen-engine/internal/protocol"
)

func TestIndexPageRendersBoardAndEscapesWarnings(t *testing.T) {
	s := protocol.GridSnapshot{
		MapID:    "dev",
		Width:    2,
		Height:   1,
		Tiles:    []int{0, 1},
		Warnings: []string{`[partialCleanup] <script>alert(1)</script>`},
	}

	var sb strings.Builder
	if err := IndexPage(s).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, `class="t t1"`) {
		t.Fatalf("path tile missing from board markup")
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("warning text not escaped:\n%s", out)
	}
}
