package rooms

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule turns a raw location into a room token. A rule matches either on a
// literal substring (Contains) or on a regular expression (Pattern).
//
// When Key is set and present in the room map, the mapped value wins.
// Otherwise Token is used; for pattern rules it may reference capture
// groups ("$1") and defaults to the first group.
type Rule struct {
	Name     string `yaml:"name"`
	Contains string `yaml:"contains,omitempty"`
	Pattern  string `yaml:"pattern,omitempty"`
	Key      string `yaml:"key,omitempty"`
	Token    string `yaml:"token,omitempty"`

	re *regexp.Regexp
}

// RuleFile is the on-disk format of user-defined rules.
type RuleFile struct {
	Rules []Rule `yaml:"rules"`
}

// aulaPattern matches numbered classrooms, e.g. "Aula 5" or "Aula012".
var aulaPattern = regexp.MustCompile(`Aula\s*([0-9]+)`)

// DefaultRules returns the built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "auditorium-a", Contains: "Auditorium A", Key: "Auditorium A", Token: "Aud A"},
		{Name: "auditorium-b", Contains: "Auditorium B", Key: "Auditorium B", Token: "Aud B"},
		{Name: "aula", Pattern: aulaPattern.String(), Token: "$1", re: aulaPattern},
	}
}

func (r *Rule) compile() error {
	if r.Contains == "" && r.Pattern == "" {
		return fmt.Errorf("rule %q needs either contains or pattern", r.Name)
	}
	if r.Contains != "" && r.Pattern != "" {
		return fmt.Errorf("rule %q cannot set both contains and pattern", r.Name)
	}
	if r.Pattern != "" && r.re == nil {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return fmt.Errorf("rule %q has an invalid pattern: %w", r.Name, err)
		}
		r.re = re
	}
	return nil
}

// Match reports the token this rule yields for raw, if it applies.
func (r Rule) Match(raw string, roomMap map[string]string) (string, bool) {
	var token string

	switch {
	case r.Contains != "":
		if !strings.Contains(raw, r.Contains) {
			return "", false
		}
		token = r.Token
	case r.re != nil:
		m := r.re.FindStringSubmatchIndex(raw)
		if m == nil {
			return "", false
		}
		tmpl := r.Token
		if tmpl == "" {
			tmpl = "$1"
			if r.re.NumSubexp() == 0 {
				tmpl = "$0"
			}
		}
		token = string(r.re.ExpandString(nil, tmpl, raw, m))
	default:
		return "", false
	}

	if r.Key != "" {
		if mapped, ok := roomMap[r.Key]; ok {
			return mapped, true
		}
	}
	return token, true
}

// LoadRules reads user rules from a YAML file. A missing file yields no rules.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file RuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	for i := range file.Rules {
		if file.Rules[i].Name == "" {
			file.Rules[i].Name = fmt.Sprintf("rule-%d", i+1)
		}
		if err := file.Rules[i].compile(); err != nil {
			return nil, err
		}
	}

	return file.Rules, nil
}
