package web

import "html/template"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>CORD-19 Research Data Explorer</title>
<style>
  body { font-family: sans-serif; margin: 2rem; color: #222; }
  h1 { margin-bottom: 0.25rem; }
  .subtitle { color: #666; margin-top: 0; }
  form.range { margin: 1rem 0; }
  form.range input { width: 6rem; }
  .metrics { display: flex; gap: 1rem; flex-wrap: wrap; margin: 1rem 0; }
  .metric { border: 1px solid #ddd; border-radius: 6px; padding: 0.75rem 1.25rem; }
  .metric .value { font-size: 1.5rem; font-weight: bold; }
  .metric .label { color: #666; font-size: 0.85rem; }
  .panels { display: flex; gap: 2rem; flex-wrap: wrap; }
  .panel { flex: 1 1 420px; }
  .bar-row { display: flex; align-items: center; margin: 2px 0; }
  .bar-label { width: 14rem; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; font-size: 0.85rem; }
  .bar { background: coral; height: 1rem; margin-right: 0.5rem; }
  table { border-collapse: collapse; margin-top: 0.5rem; }
  th, td { border: 1px solid #ddd; padding: 0.3rem 0.6rem; font-size: 0.85rem; text-align: left; }
  .empty { color: #888; font-style: italic; margin: 2rem 0; }
</style>
</head>
<body>
<h1>CORD-19 Research Data Explorer</h1>
<p class="subtitle">Exploring COVID-19 research papers</p>

<form class="range" method="get" action="/">
  <label>From <input type="number" name="from" value="{{.View.YearFrom}}"
    min="{{.View.DataYearMin}}" max="{{.View.DataYearMax}}"></label>
  <label>To <input type="number" name="to" value="{{.View.YearTo}}"
    min="{{.View.DataYearMin}}" max="{{.View.DataYearMax}}"></label>
  <button type="submit">Apply</button>
</form>

<div class="metrics">
  <div class="metric"><div class="value">{{.View.Metrics.TotalPapers}}</div><div class="label">Total papers</div></div>
  <div class="metric"><div class="value">{{.View.Metrics.UniqueJournals}}</div><div class="label">Unique journals</div></div>
  <div class="metric"><div class="value">{{printf "%.1f" .View.Metrics.AvgTitleWords}}</div><div class="label">Avg title length (words)</div></div>
  <div class="metric"><div class="value">{{.View.Metrics.YearsCovered}}</div><div class="label">Years covered</div></div>
  {{if .HasData}}
  <div class="metric"><div class="value">{{.View.Metrics.PeakYear}}</div><div class="label">Peak year</div></div>
  <div class="metric"><div class="value">{{.View.Metrics.PeakCount}}</div><div class="label">Peak publications</div></div>
  {{end}}
</div>

{{if .HasData}}
<div class="panels">
  <div class="panel">
    <h2>Publications by Year</h2>
    <img src="/charts/years.png?from={{.View.YearFrom}}&amp;to={{.View.YearTo}}" alt="Publications by year">
  </div>
  <div class="panel">
    <h2>Top Publishing Journals</h2>
    {{range .JournalBars}}
    <div class="bar-row">
      <span class="bar-label">{{.Journal}}</span>
      <span class="bar" style="width: {{.Pct}}%"></span>
      <span>{{.Count}}</span>
    </div>
    {{else}}
    <p class="empty">No journal data in range.</p>
    {{end}}
  </div>
</div>

<h2>Title Word Analysis</h2>
<div class="panels">
  <div class="panel">
    <h3>Most Common Words in Titles</h3>
    <img src="/charts/words.png?from={{.View.YearFrom}}&amp;to={{.View.YearTo}}" alt="Most common title words">
  </div>
  <div class="panel">
    <h3>Word Cloud</h3>
    {{if .WordCloud}}{{.WordCloud}}{{else}}<p class="empty">No words to display.</p>{{end}}
  </div>
</div>

<h2>Sample Data</h2>
<p>Showing {{len .View.Sample}} random papers from {{.View.YearFrom}}&ndash;{{.View.YearTo}}:</p>
<table id="sample">
  <tr><th>Title</th><th>Authors</th><th>Journal</th><th>Year</th><th>Title words</th></tr>
  {{range .View.Sample}}
  <tr><td>{{.Title}}</td><td>{{.Authors}}</td><td>{{.Journal}}</td><td>{{.Year}}</td><td>{{.TitleWordCount}}</td></tr>
  {{end}}
</table>
{{else}}
<p class="empty">No papers in the selected range.</p>
{{end}}

<hr>
<p class="subtitle">Data source: CORD-19 dataset.</p>
</body>
</html>
`
