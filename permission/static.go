// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"context"
	"strings"
	"sync"

	"github.com/bitmark-inc/ledgerd/ledgerpath"
)

// Rule - grants permissions on a path to some subjects
type Rule struct {
	Path        ledgerpath.Path
	Recursive   bool
	RecordName  string
	ExactName   bool
	Subjects    []Subject
	Permissions PermissionSet
}

// RuleConfiguration - text form of a rule
type RuleConfiguration struct {
	Path        string                  `gluamapper:"path" json:"path"`
	Recursive   bool                    `gluamapper:"recursive" json:"recursive"`
	RecordName  string                  `gluamapper:"record_name" json:"record_name"`
	ExactName   bool                    `gluamapper:"exact_name" json:"exact_name"`
	Subjects    []SubjectConfiguration  `gluamapper:"subjects" json:"subjects"`
	Permissions PermissionConfiguration `gluamapper:"permissions" json:"permissions"`
}

// NewRule - validate a rule configuration
func NewRule(c RuleConfiguration) (*Rule, error) {
	path, err := ledgerpath.Parse(c.Path)
	if nil != err {
		return nil, err
	}
	return newRuleAt(path, c)
}

// rule with the path already decided, the configured path is ignored
func newRuleAt(path ledgerpath.Path, c RuleConfiguration) (*Rule, error) {
	permissions, err := PermissionSetFromConfiguration(c.Permissions)
	if nil != err {
		return nil, err
	}

	subjects := make([]Subject, 0, len(c.Subjects))
	for _, sc := range c.Subjects {
		s, err := NewSubject(sc)
		if nil != err {
			return nil, err
		}
		subjects = append(subjects, s)
	}

	return &Rule{
		Path:        path,
		Recursive:   c.Recursive,
		RecordName:  c.RecordName,
		ExactName:   c.ExactName,
		Subjects:    subjects,
		Permissions: permissions,
	}, nil
}

// NewRules - validate a list of rule configurations
func NewRules(configs []RuleConfiguration) ([]*Rule, error) {
	rules := make([]*Rule, 0, len(configs))
	for _, c := range configs {
		r, err := NewRule(c)
		if nil != err {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// IsMatch - true if the rule applies
func (r *Rule) IsMatch(identities []string, path ledgerpath.Path, recursiveOnly bool, recordName string) bool {
	if !r.Path.Equal(path) {
		return false
	}
	if recursiveOnly && !r.Recursive {
		return false
	}
	if r.ExactName {
		if recordName != r.RecordName {
			return false
		}
	} else if !strings.HasPrefix(recordName, r.RecordName) {
		return false
	}
	for _, s := range r.Subjects {
		if s.IsMatch(identities) {
			return true
		}
	}
	return false
}

// apply every matching rule in order
func evaluate(rules []*Rule, identities []string, path ledgerpath.Path, recursiveOnly bool, recordName string) PermissionSet {
	result := UnsetAll
	for _, r := range rules {
		if r.IsMatch(identities, path, recursiveOnly, recordName) {
			result = result.Add(r.Permissions)
		}
	}
	return result
}

// StaticLayout - rules from the configuration file
type StaticLayout struct {
	sync.RWMutex
	rules []*Rule
}

// NewStaticLayout - create a layout from a fixed set of rules
func NewStaticLayout(rules []*Rule) *StaticLayout {
	return &StaticLayout{
		rules: rules,
	}
}

// Replace - swap in a new set of rules
func (s *StaticLayout) Replace(rules []*Rule) {
	s.Lock()
	s.rules = rules
	s.Unlock()
}

// Count - number of rules
func (s *StaticLayout) Count() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.rules)
}

// GetPermissions - implement Provider
func (s *StaticLayout) GetPermissions(ctx context.Context, identities []string, path ledgerpath.Path, recursiveOnly bool, recordName string) (PermissionSet, error) {
	s.RLock()
	defer s.RUnlock()
	return evaluate(s.rules, identities, path, recursiveOnly, recordName), nil
}
