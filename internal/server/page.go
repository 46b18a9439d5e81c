package server

import "html/template"

// formResult is the outcome banner below the form.
type formResult struct {
	Success  bool
	N        int
	Sequence string
	Message  string
}

// formPage is the data rendered by pageTemplate.
type formPage struct {
	Input  string
	MaxN   int
	Result *formResult
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Fibonacci Sequence Generator</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body class="container py-5">
  <h1 class="mb-4">Fibonacci Sequence Generator</h1>
  <form id="fibForm" method="post" action="/">
    <div class="mb-3">
      <label for="fibInput" class="form-label">Enter a non-negative number (up to {{.MaxN}})</label>
      <input type="number" min="0" max="{{.MaxN}}" class="form-control" id="fibInput" name="n" value="{{.Input}}" required>
    </div>
    <button type="submit" class="btn btn-primary">Generate</button>
  </form>
  <div id="result" class="mt-4">
  {{- with .Result}}
    {{- if .Success}}
    <div class="alert alert-success">Fibonacci sequence up to {{.N}}: <br><strong>{{.Sequence}}</strong></div>
    {{- else}}
    <div class="alert alert-danger">{{.Message}}</div>
    {{- end}}
  {{- end}}
  </div>
</body>
</html>
`))
