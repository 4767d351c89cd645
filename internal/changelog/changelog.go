// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package changelog

import (
	"regexp"
	"sort"
	"strings"
)

// whitespaceRegex collapses any run of whitespace, including newlines and
// carriage returns, into a single space. Source records are frequently
// hard-wrapped mid-list, so this must run before clause matching.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// clauseRegex matches the membership change clause. The captures are
// non-greedy on purpose: member tokens never contain ']', and a greedy match
// would swallow unrelated text when a record carries trailing bracketed
// content. Only the first clause of a record is considered.
var clauseRegex = regexp.MustCompile(`Members changed from \[(.*?)\] to \[(.*?)\]`)

// MemberSet is a set of member tokens. Tokens are opaque strings compared by
// exact, case-sensitive equality.
type MemberSet map[string]struct{}

// NewMemberSet builds a MemberSet from the given tokens.
func NewMemberSet(tokens ...string) MemberSet {
	s := make(MemberSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the token.
func (s MemberSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Sorted returns the members in lexicographic ascending order. Render paths
// must use this rather than ranging over the map so output is reproducible.
func (s MemberSet) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for t := range s {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// ExtractChangeClause locates the membership change clause in a raw record.
// The record may span multiple lines and may be wrapped in JSON or other
// surrounding text. On success it returns the two raw bracket interiors,
// unmodified except for whitespace collapsing. A record with no clause is a
// valid no-match outcome, not an error: found is false and both strings are
// empty.
func ExtractChangeClause(raw string) (oldText, newText string, found bool) {
	if raw == "" {
		return "", "", false
	}

	cleaned := whitespaceRegex.ReplaceAllString(raw, " ")

	match := clauseRegex.FindStringSubmatch(cleaned)
	if match == nil {
		return "", "", false
	}

	return match[1], match[2], true
}

// ParseMemberList splits a bracket interior on commas and returns the tokens
// as a set. Tokens are trimmed of surrounding whitespace; tokens that are
// empty after trimming (trailing-comma artifacts) are discarded. Duplicates
// collapse silently: membership is what matters, not multiplicity.
func ParseMemberList(interior string) MemberSet {
	set := make(MemberSet)
	for _, token := range strings.Split(interior, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// Result is the three-way set difference of one change clause. It is a pure
// value computed once per record and never mutated after construction.
//
// Invariants: Removed, Added and Unchanged are pairwise disjoint;
// Removed ∪ Unchanged reconstructs the old set and Added ∪ Unchanged the new.
type Result struct {
	Removed   MemberSet
	Added     MemberSet
	Unchanged MemberSet
}

// Diff parses both bracket interiors and computes the set difference. It is a
// pure function: deterministic for a given pair of inputs, no I/O, no shared
// state.
func Diff(oldText, newText string) Result {
	oldSet := ParseMemberList(oldText)
	newSet := ParseMemberList(newText)

	result := Result{
		Removed:   make(MemberSet),
		Added:     make(MemberSet),
		Unchanged: make(MemberSet),
	}

	for token := range oldSet {
		if newSet.Has(token) {
			result.Unchanged[token] = struct{}{}
		} else {
			result.Removed[token] = struct{}{}
		}
	}

	for token := range newSet {
		if !oldSet.Has(token) {
			result.Added[token] = struct{}{}
		}
	}

	return result
}

// HasChanges reports whether the clause removed or added at least one member.
func (r Result) HasChanges() bool {
	return len(r.Removed) > 0 || len(r.Added) > 0
}
