package site

// pageTemplate lays out a demo page around the rendered menu.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
nav ul { list-style: none; padding-left: 1rem; }
nav li.active > a { font-weight: bold; }
</style>
</head>
<body>
<nav>
{{ .Menu }}
</nav>
<main>
<h1>{{ .Title }}</h1>
<p>Route: <code>{{ .Route }}</code></p>
{{- if .Params }}
<dl>
{{- range .Params }}
<dt>{{ .Name }}</dt><dd>{{ .Value }}</dd>
{{- end }}
</dl>
{{- end }}
</main>
</body>
</html>
`
