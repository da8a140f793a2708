package render

import (
	"html/template"
	"io"

	"storefront/internal/service"
)

var pageTemplate = template.Must(template.New("shop").Funcs(template.FuncMap{
	"price": FormatPrice,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Heading}}</title>
<style>
body{margin:0;font-family:sans-serif;background:{{.Palette.Background}};color:{{.Palette.Foreground}};min-height:100vh}
main{padding:7rem 3rem 3rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:2rem}
.card{border-radius:.75rem;padding:1rem;background:{{.Palette.Card}};box-shadow:0 4px 12px rgba(0,0,0,.15)}
.card img{width:100%;height:14rem;object-fit:cover;border-radius:.5rem}
.price{font-weight:bold;color:#22c55e}
.empty{grid-column:1/-1;text-align:center;color:#6b7280;padding:5rem 0;font-size:1.25rem}
.notice{text-align:center;padding:.75rem;background:{{.Palette.Card}}}
button{width:100%;padding:.5rem;border:0;border-radius:.5rem;background:#2dd4bf;color:#fff;font-weight:600}
</style>
</head>
<body>
<header>Cart (<span id="cart-count">{{.CartCount}}</span>)</header>
{{with .Notice}}<div class="notice" role="alert">{{.}}</div>{{end}}
<main>
<h1>{{.Heading}}</h1>
<p>{{.Tagline}}</p>
<form method="get" action="{{.Action}}"><input type="search" name="search" value="{{.View.Search}}"></form>
<div class="grid">
{{- if .View.Empty}}
<div class="empty">No products found for: <span>"{{.View.Search}}"</span></div>
{{- else}}
{{- range .View.Cards}}
<div class="card">
<img src="{{.ImageURL}}" alt="{{.Product.Name}}">
<h2>{{.Product.Name}}</h2>
<p>{{.Product.Category}}</p>
<p class="price">{{price $.Currency .Product.Price}}</p>
<form method="post" action="{{$.CartAction}}">
<input type="hidden" name="productId" value="{{.Product.ID}}">
<input type="hidden" name="search" value="{{$.View.Search}}">
<button type="submit">Add to Cart</button>
</form>
</div>
{{- end}}
{{- end}}
</div>
</main>
</body>
</html>
`))

// HTMLPage is one server-rendered frame of the shop.
type HTMLPage struct {
	View       service.View
	Palette    Palette
	Currency   string
	CartCount  int64
	Notice     string
	Action     string
	CartAction string
	Heading    string
	Tagline    string
}

// HTML writes the page. Empty Heading, Tagline, Action and CartAction take defaults.
func HTML(w io.Writer, page HTMLPage) error {
	if page.Heading == "" {
		page.Heading = Heading
	}
	if page.Tagline == "" {
		page.Tagline = Tagline
	}
	if page.Action == "" {
		page.Action = "/shop"
	}
	if page.CartAction == "" {
		page.CartAction = "/shop/cart"
	}
	return pageTemplate.Execute(w, page)
}
