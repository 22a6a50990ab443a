package web

import (
	"html/template"

	"github.com/dustin/go-humanize"
)

var templateFuncs = template.FuncMap{
	"ordinal": func(row int) string { return humanize.Ordinal(row + 1) },
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Life in Weeks</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
.row { display: flex; align-items: center; gap: 2px; margin-bottom: 2px; }
.year-label { width: 2.5rem; text-align: right; font-size: 0.7rem; color: #8c8c8c; padding-right: 4px; }
.box { width: 8px; height: 8px; border: 1px solid #ccc; }
.box.filled { background: #00bfff; border-color: #00bfff; }
.box.upcoming { background: #ffd700; border-color: #ffd700; }
.error { color: #ff5252; }
</style>
</head>
<body>
<form method="get" action="">
  <label>Birthdate <input type="date" name="birthdate" value="{{.BirthDate}}"></label>
  <label>Years <input type="number" name="endYear" min="1" max="120" value="{{.EndYear}}"></label>
  <button type="submit">Update</button>
</form>
{{with .Error}}<p id="info" class="error">{{.}}</p>{{end}}
{{with .Info}}<p id="info">{{.}}</p>{{end}}
{{with .ShareLink}}<p><a id="share" href="{{.}}">Link to this chart</a></p>{{end}}
<div id="grid-container">
{{range $i, $row := .Grid.Rows}}<div class="row" data-year="{{$i}}" title="{{ordinal $i}} year">{{if $row.Label}}<div class="year-label">{{$row.Label}}</div>{{end}}{{range $w, $cell := $row.Cells}}<div class="box {{$cell}}" data-week="{{$w}}"></div>{{end}}</div>
{{end}}</div>
</body>
</html>
`
