package main

import "testing"

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MainConfig
		wantErr bool
	}{
		{"none", MainConfig{}, false},
		{"text", MainConfig{T: true}, false},
		{"json", MainConfig{J: true}, false},
		{"two", MainConfig{J: true, Y: true}, true},
		{"all", MainConfig{T: true, J: true, Y: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.checkFormat()
			if (err != nil) != tt.wantErr {
				t.Errorf("checkFormat() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatSelection(t *testing.T) {
	if f := (&MainConfig{}).format(); f != textFormat {
		t.Errorf("default format = %v, want text", f)
	}
	if f := (&MainConfig{Y: true}).format(); f != yamlFormat {
		t.Errorf("format = %v, want yaml", f)
	}
	jf := jsonFormat
	// explicit -O wins over the shorthand flags
	if f := (&MainConfig{Y: true, OutFormat: &jf}).format(); f != jsonFormat {
		t.Errorf("format = %v, want json", f)
	}
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want outFormat
	}{
		{"text", textFormat}, {"t", textFormat},
		{"json", jsonFormat}, {"j", jsonFormat},
		{"yaml", yamlFormat}, {"y", yamlFormat},
	} {
		got, err := parseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := parseFormat("xml"); err == nil {
		t.Error("unknown format accepted")
	}
}
