package utils

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// Minifier is the shared minifier instance used for generated output
var Minifier *minify.M

func InitMinifier() {
	Minifier = minify.New()
	Minifier.AddFunc("text/html", html.Minify)
	Minifier.AddFunc("text/javascript", js.Minify)
}

// MinifyHTML compresses rendered HTML. On failure the input is returned
// unchanged so a bad document still gets published.
func MinifyHTML(input []byte) []byte {
	if Minifier == nil {
		return input
	}
	out, err := Minifier.Bytes("text/html", input)
	if err != nil {
		return input
	}
	return out
}

// MinifyJS compresses a script asset, falling back to the input on failure.
func MinifyJS(input []byte) []byte {
	if Minifier == nil {
		return input
	}
	out, err := Minifier.Bytes("text/javascript", input)
	if err != nil {
		return input
	}
	return out
}
