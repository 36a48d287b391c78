package http

import "html/template"

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>GT Hello World</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            text-align: center;
            padding: 50px;
            background-color: #f0f0f0;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            display: inline-block;
        }
        h1 { color: #333; }
        p { color: #666; }
        .gas-town { color: #007acc; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Message}}</h1>
        <p>Welcome to the <span class="gas-town">Gas Town</span> distributed AI worker system.</p>
        <p><small>Try: <a href="?name=Polecat">?name=Polecat</a> or <a href="/health">/health</a></small></p>
    </div>
</body>
</html>
`))

var notFoundTemplate = template.Must(template.New("not_found").Parse(`<!DOCTYPE html>
<html>
<head><title>404 - Not Found</title></head>
<body>
    <h1>404 - Not Found</h1>
    <p>The requested path '{{.Path}}' was not found.</p>
    <p><a href="/">Go back to home</a></p>
</body>
</html>
`))
