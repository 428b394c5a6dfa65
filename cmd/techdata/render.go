package main

import (
	"encoding/json"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/etree"
	"github.com/fwojciec/techdata/htmltomarkdown"
)

// jsonRenderer renders technical data as indented JSON.
type jsonRenderer struct{}

func (jsonRenderer) Render(data *techdata.TechnicalData) (string, error) {
	if data == nil {
		return "", techdata.Errorf(techdata.EINVALID, "nil technical data")
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// renderer returns the renderer for an output format.
func renderer(format string) (techdata.Renderer, error) {
	switch format {
	case "json":
		return jsonRenderer{}, nil
	case "markdown":
		return htmltomarkdown.NewRenderer(), nil
	case "xml":
		return etree.NewRenderer(), nil
	}
	return nil, techdata.Errorf(techdata.EINVALID, "unknown format %q", format)
}

// extension returns the file extension used for an output format.
func extension(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "xml":
		return "xml"
	}
	return "json"
}
