package config

import "regexp"

// WindowRule matches new windows by app-id/title regex and applies a set
// of initial properties, adapted from the teacher's WindowRuleConfig
// pattern to the window-tree's own attribute set.
type WindowRule struct {
	AppIDPattern string
	TitlePattern string

	appID *regexp.Regexp
	title *regexp.Regexp

	Floating   *bool
	Fullscreen *bool
	Sticky     *bool
	Workspace  string
}

// Compile precompiles the rule's regexes; called once after decoding.
func (r *WindowRule) Compile() error {
	if r.AppIDPattern != "" {
		re, err := regexp.Compile(r.AppIDPattern)
		if err != nil {
			return err
		}
		r.appID = re
	}
	if r.TitlePattern != "" {
		re, err := regexp.Compile(r.TitlePattern)
		if err != nil {
			return err
		}
		r.title = re
	}
	return nil
}

// Matches reports whether the rule applies to a window with the given
// app-id and title.
func (r *WindowRule) Matches(appID, title string) bool {
	if r.appID != nil && !r.appID.MatchString(appID) {
		return false
	}
	if r.title != nil && !r.title.MatchString(title) {
		return false
	}
	return true
}

// MatchRules returns every rule in order that matches, so later rules can
// override earlier ones' properties.
func MatchRules(rules []WindowRule, appID, title string) []*WindowRule {
	var out []*WindowRule
	for i := range rules {
		if rules[i].Matches(appID, title) {
			out = append(out, &rules[i])
		}
	}
	return out
}
