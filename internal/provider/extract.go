package provider

import (
	"regexp"
	"strings"
)

// Heuristic field extraction for free-text posts. Every extractor is pure and
// best-effort: no match returns ("", false) and the caller falls back to its
// own default.

var (
	titleLeadInRe = regexp.MustCompile(`(?i)(?:hiring|looking for|seeking|wanted|open position|job opening|vacancy)[\s:,-]*([^.!?\n]+)`)
	titleRoleRe   = regexp.MustCompile(`(?i)([^.!?\n]*\b(?:engineer|developer|manager|analyst|designer)\b[^.!?\n]*)`)
	locationRe    = regexp.MustCompile(`(?i)\b(?:based in|remote from|location:?|in|at)\s+([^.,!?\n]+)`)
)

// jobTypes are checked in order; the first literal hit wins.
var jobTypes = []string{"Full-time", "Part-time", "Contract", "Freelance", "Internship"}

// ExtractJobTitle pulls a probable job title out of free text. A phrase
// following a lead-in ("hiring", "looking for", ...) wins over a bare
// role-keyword phrase when both are present.
func ExtractJobTitle(text string) (string, bool) {
	if m := titleLeadInRe.FindStringSubmatch(text); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title, true
		}
	}
	if m := titleRoleRe.FindStringSubmatch(text); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title, true
		}
	}
	return "", false
}

// ExtractLocation returns the phrase following a location lead-in
// ("based in", "remote from", "in", "at", ...).
func ExtractLocation(text string) (string, bool) {
	if m := locationRe.FindStringSubmatch(text); m != nil {
		if loc := strings.TrimSpace(m[1]); loc != "" {
			return loc, true
		}
	}
	return "", false
}

// ExtractJobType returns the first known employment type mentioned literally
// (case-insensitive) in the text, in canonical casing.
func ExtractJobType(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, jt := range jobTypes {
		if strings.Contains(lower, strings.ToLower(jt)) {
			return jt, true
		}
	}
	return "", false
}
