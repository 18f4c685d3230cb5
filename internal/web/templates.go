package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/google/uuid"
	"github.com/jaminalder/codex-gobblet/internal/app"
	"github.com/jaminalder/codex-gobblet/internal/domain"
)

type templates struct {
	base  *template.Template
	game  *template.Template
	board *template.Template
	index *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"sizeName": func(s domain.Size) string {
			switch s {
			case domain.Small:
				return "S"
			case domain.Medium:
				return "M"
			case domain.Large:
				return "L"
			default:
				return ""
			}
		},
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
	// Define the board template within the same set so game can include it
	template.Must(base.New("board").Funcs(funcs()).Parse(boardTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Gobblet</h1><form action="/game" method="post"><button>Create</button></form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<p>You play: {{.Seat}}</p>
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div id="board" hx-sse="swap:board">{{template "board" .Board}}</div>
</div>`))
	// Standalone board template used for fragment rendering
	board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
	return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if name == "" {
		err = t.Execute(&buf, data)
	} else {
		err = t.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  {{if .Over}}
  <div class="result">{{if .Winner}}{{.Winner}} wins{{else}}No moves left{{end}}</div>
  {{else}}
  <div class="turn">{{.Turn}} to move</div>
  {{end}}
  <table class="grid">
  {{range .Rows}}
    <tr>
    {{range .}}
      <td class="{{.Color}}" data-square="{{.X}},{{.Y}}">{{if .Color}}{{sizeName .Size}}{{if gt .Depth 1}}<sub>{{.Depth}}</sub>{{end}}{{end}}</td>
    {{end}}
    </tr>
  {{end}}
  </table>
  {{range .Benches}}
  <div class="bench {{.Color}}">{{.Color}}:{{range .Counts}} {{sizeName .Size}}×{{.Count}}{{end}}</div>
  {{end}}
  {{if not .Over}}
  <div class="moves">
    {{range .Moves}}
    <form hx-post="/game/{{$.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
      <input type="hidden" name="move" value="{{.}}">
      <button type="submit">{{.}}</button>
    </form>
    {{end}}
  </div>
  {{end}}
</div>
`

type cellView struct {
	X, Y  int
	Size  domain.Size
	Color string
	Depth int
}

type benchCount struct {
	Size  domain.Size
	Count int
}

type benchView struct {
	Color  string
	Counts []benchCount
}

type boardView struct {
	ID      string
	Turn    string
	Winner  string
	Over    bool
	Rows    [][]cellView
	Benches []benchView
	Moves   []string
	Error   string
}

func newBoardView(gs app.GameState, errMsg string) boardView {
	v := boardView{ID: gs.ID, Turn: gs.Turn.String(), Over: gs.Over, Error: errMsg}
	if gs.Winner != domain.NoColor {
		v.Winner = gs.Winner.String()
	}
	b := gs.Board
	for x := 0; x < b.Size(); x++ {
		row := make([]cellView, b.Size())
		for y := range row {
			sq := domain.Square{X: x, Y: y}
			cell := cellView{X: x, Y: y, Depth: len(b.Stack(sq))}
			if top, ok := b.Top(sq); ok {
				cell.Size = top.Size
				cell.Color = top.Color.String()
			}
			row[y] = cell
		}
		v.Rows = append(v.Rows, row)
	}
	for _, c := range domain.Colors {
		bench := b.Bench(c)
		bv := benchView{Color: c.String()}
		for _, s := range domain.Sizes {
			bv.Counts = append(bv.Counts, benchCount{Size: s, Count: bench[s]})
		}
		v.Benches = append(v.Benches, bv)
	}
	if !gs.Over {
		for _, m := range b.AvailableMoves(gs.Turn) {
			v.Moves = append(v.Moves, m.String())
		}
	}
	return v
}

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
		return c.Value
	}
	// Generate UUIDv4 for player ID
	v := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/"})
	return v
}
