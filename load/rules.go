package load

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/docdelta/docdelta/identity"
)

// ruleFile is the on-disk shape of an identity rule set.
type ruleFile struct {
	Rules []identity.Rule `yaml:"rules" json:"rules"`
}

// Rules decodes an identity rule file. The file holds a "rules" list;
// a bare list at the top level is also accepted.
func Rules(b []byte) ([]identity.Rule, error) {
	var file ruleFile
	if err := yaml.Unmarshal(b, &file); err == nil {
		return file.Rules, nil
	}
	var rules []identity.Rule
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	return rules, nil
}
