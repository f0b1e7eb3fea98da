package home

import (
	"io"
	"net/http"
)

// formPage is the only server-rendered page; everything else is JSON.
const formPage = `<!DOCTYPE html>
<html>
<head><title>Company</title></head>
<body>
<h1>Create a product</h1>
<form action="/product" method="post">
  <label>Name <input type="text" name="name"></label>
  <label>Price <input type="text" name="price"></label>
  <input type="submit" value="Create">
</form>
</body>
</html>
`

const pingMessage = "The beginnings of Alt-blockchain App"

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	io.WriteString(w, formPage)
}

func (h *HomeHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, pingMessage)
}
