// Package views renders the dev-server pages. Components are built on the
// templ runtime directly; the page is a single self-contained document
// with a small script that listens for generation patches on /stream.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/Ko-stant/levelgen-engine/internal/protocol"
)

const tileSize = 12

// IndexPage renders the current grid as a CSS-grid tile board plus the
// run's parameters and warnings.
func IndexPage(s protocol.GridSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}

		fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(s.MapID))
		fmt.Fprintf(w, `<p class="meta">%dx%d · %d regions · seed %d</p>`,
			s.Width, s.Height, s.RegionCount, s.Seed)

		fmt.Fprintf(w, `<div class="board" style="grid-template-columns: repeat(%d, %dpx)">`,
			s.Width, tileSize)
		for _, code := range s.Tiles {
			fmt.Fprintf(w, `<div class="t t%d"></div>`, code)
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}

		if len(s.Warnings) > 0 {
			if _, err := io.WriteString(w, `<ul class="warnings">`); err != nil {
				return err
			}
			for _, warning := range s.Warnings {
				fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(warning))
			}
			if _, err := io.WriteString(w, `</ul>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, pageFoot)
		return err
	})
}

const pageHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>levelgen</title>
<style>
body { font-family: monospace; background: #14151a; color: #d8d8d8; margin: 2rem; }
.meta { color: #8a8f98; }
.board { display: grid; gap: 0; width: fit-content; border: 1px solid #2a2d34; }
.t { width: 12px; height: 12px; }
.t0 { background: #14151a; }
.t1 { background: #5b8266; }
.t2 { background: #b08968; }
.t3 { background: #e9c46a; }
.warnings { color: #e07a5f; }
button { margin-top: 1rem; }
</style>
</head>
<body>
`

const pageFoot = `<button onclick="regen()">regenerate</button>
<script>
const sock = new WebSocket("ws://" + location.host + "/stream");
sock.onmessage = (ev) => {
  const env = JSON.parse(ev.data);
  if (env.type === "GridGenerated") location.reload();
};
function regen() {
  sock.send(JSON.stringify({ type: "RequestGenerate", payload: {} }));
}
</script>
</body>
</html>
`
