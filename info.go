package gs1parse

import (
	"github.com/ericlevine/gs1parse/ai"
	"github.com/ericlevine/gs1parse/symbology"
)

// Version is the library version reported by Info.
const Version = "1.2.0"

// Capabilities describes what a Parser supports.
type Capabilities struct {
	Version          string   `json:"version"`
	Registry         string   `json:"registry"`
	SupportedAIs     []string `json:"supported_ais"`
	SupportedFormats []string `json:"supported_formats"`
}

// Info reports the capabilities of p.
func (p *Parser) Info() Capabilities {
	return capabilities(p.reg)
}

// Info reports the capabilities of the builtin table.
func Info() Capabilities {
	return capabilities(ai.Builtin())
}

func capabilities(reg *ai.Registry) Capabilities {
	formats := symbology.Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, f.String())
	}
	return Capabilities{
		Version:          Version,
		Registry:         reg.Source(),
		SupportedAIs:     reg.Codes(),
		SupportedFormats: names,
	}
}
