package render

import (
	"encoding/json"
	"io"

	goyaml "github.com/goccy/go-yaml"

	"github.com/docdelta/docdelta"
)

// changeView is the serialized shape of one change record. Empty
// fields are omitted so additions carry no old side and vice versa.
type changeView struct {
	Kind     string `json:"kind" yaml:"kind"`
	OldPath  string `json:"old_path,omitempty" yaml:"old_path,omitempty"`
	NewPath  string `json:"new_path,omitempty" yaml:"new_path,omitempty"`
	OldID    string `json:"old_id,omitempty" yaml:"old_id,omitempty"`
	NewID    string `json:"new_id,omitempty" yaml:"new_id,omitempty"`
	OldTitle string `json:"old_title,omitempty" yaml:"old_title,omitempty"`
	NewTitle string `json:"new_title,omitempty" yaml:"new_title,omitempty"`
	OldBody  string `json:"old_body,omitempty" yaml:"old_body,omitempty"`
	NewBody  string `json:"new_body,omitempty" yaml:"new_body,omitempty"`
}

type diagView struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

type countsView struct {
	Added    int `json:"added" yaml:"added"`
	Removed  int `json:"removed" yaml:"removed"`
	Modified int `json:"modified" yaml:"modified"`
	Moved    int `json:"moved" yaml:"moved"`
}

type report struct {
	Changes     []changeView `json:"changes" yaml:"changes"`
	Diagnostics []diagView   `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Counts      countsView   `json:"counts" yaml:"counts"`
}

func newReport(res *docdelta.Result, cfg *config) *report {
	rep := &report{
		Changes: []changeView{},
		Counts: countsView{
			Added:    res.Counts.Added,
			Removed:  res.Counts.Removed,
			Modified: res.Counts.Modified,
			Moved:    res.Counts.Moved,
		},
	}
	for i := range res.Changes {
		ch := &res.Changes[i]
		if !cfg.keep(ch.Kind) {
			continue
		}
		rep.Changes = append(rep.Changes, changeView{
			Kind:     ch.Kind.String(),
			OldPath:  ch.OldPath.String(),
			NewPath:  ch.NewPath.String(),
			OldID:    ch.OldIDPath.String(),
			NewID:    ch.NewIDPath.String(),
			OldTitle: ch.OldTitle,
			NewTitle: ch.NewTitle,
			OldBody:  ch.OldBody,
			NewBody:  ch.NewBody,
		})
	}
	for _, diag := range res.Diagnostics {
		rep.Diagnostics = append(rep.Diagnostics, diagView{
			Path:    diag.Path,
			Message: diag.Message,
		})
	}
	return rep
}

// JSON writes the result as an indented JSON report.
func JSON(w io.Writer, res *docdelta.Result, opts ...Option) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(res, newConfig(opts)))
}

// YAML writes the result as a YAML report.
func YAML(w io.Writer, res *docdelta.Result, opts ...Option) error {
	return goyaml.NewEncoder(w).Encode(newReport(res, newConfig(opts)))
}
