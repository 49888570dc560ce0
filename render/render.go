// Package render writes diff results in the supported output formats:
// a colorized text report, JSON, YAML, and a JSON merge patch.
package render

import "github.com/docdelta/docdelta"

type Option func(*config)

type config struct {
	color     bool
	unchanged bool
}

// WithColor enables ANSI color in the text format. Other formats
// ignore it.
func WithColor(v bool) Option {
	return func(c *config) { c.color = v }
}

// WithUnchanged includes UNCHANGED records in the output. By default
// only actual differences are written.
func WithUnchanged(v bool) Option {
	return func(c *config) { c.unchanged = v }
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) keep(k docdelta.Kind) bool {
	return c.unchanged || k != docdelta.Unchanged
}
