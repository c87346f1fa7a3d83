// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgerpath - hierarchical slash delimited paths
//
// normalized form always begins and ends with the separator:
//
//   /               - the root
//   /account/1/     - two segments
//
// segments are non-empty and restricted to: A-Z a-z 0-9 - _ . @ + ~ $
package ledgerpath

import (
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Separator - between path segments
const Separator = "/"

// Path - a normalized ledger path
type Path struct {
	segments []string
	full     string
}

// Root - the empty path "/"
var Root = Path{full: Separator}

// Parse - validate and normalize a path string
func Parse(text string) (Path, error) {
	if !strings.HasPrefix(text, Separator) || !strings.HasSuffix(text, Separator) {
		return Path{}, fault.ErrInvalidPath
	}
	if Separator == text {
		return Root, nil
	}
	return FromSegments(strings.Split(text[1:len(text)-1], Separator)...)
}

// FromSegments - build a path from individual segments
func FromSegments(segments ...string) (Path, error) {
	if 0 == len(segments) {
		return Root, nil
	}
	s := make([]string, len(segments))
	for i, segment := range segments {
		if !IsValidSegment(segment) {
			return Path{}, fault.ErrInvalidPathSegment
		}
		s[i] = segment
	}
	return Path{
		segments: s,
		full:     Separator + strings.Join(s, Separator) + Separator,
	}, nil
}

// IsValidSegment - check one segment against the allowed charset
func IsValidSegment(segment string) bool {
	if 0 == len(segment) {
		return false
	}
	for i := 0; i < len(segment); i += 1 {
		c := segment[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == '@', c == '+', c == '~', c == '$':
		default:
			return false
		}
	}
	return true
}

// Segments - copy of the individual segments
func (p Path) Segments() []string {
	s := make([]string, len(p.segments))
	copy(s, p.segments)
	return s
}

// Depth - number of segments, zero for root
func (p Path) Depth() int {
	return len(p.segments)
}

// FullPath - the normalized string
func (p Path) FullPath() string {
	if "" == p.full {
		return Separator
	}
	return p.full
}

// String - for the fmt package
func (p Path) String() string {
	return p.FullPath()
}

// Equal - compare normalized form
func (p Path) Equal(other Path) bool {
	return p.FullPath() == other.FullPath()
}

// IsAncestorOf - true if other is p or lies below p
func (p Path) IsAncestorOf(other Path) bool {
	return strings.HasPrefix(other.FullPath(), p.FullPath())
}

// IsStrictAncestorOf - true if other lies below p
func (p Path) IsStrictAncestorOf(other Path) bool {
	return len(other.FullPath()) > len(p.FullPath()) && p.IsAncestorOf(other)
}

// Parent - the path with the last segment removed, root is its own parent
func (p Path) Parent() Path {
	if len(p.segments) <= 1 {
		return Root
	}
	parent, _ := FromSegments(p.segments[:len(p.segments)-1]...)
	return parent
}

// Ancestors - every path from the root down to and including p
func (p Path) Ancestors() []Path {
	result := make([]Path, 0, len(p.segments)+1)
	result = append(result, Root)
	for i := 1; i <= len(p.segments); i += 1 {
		a, _ := FromSegments(p.segments[:i]...)
		result = append(result, a)
	}
	return result
}

// MarshalText - path as JSON string
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.FullPath()), nil
}

// UnmarshalText - parse a path from JSON string
func (p *Path) UnmarshalText(s []byte) error {
	path, err := Parse(string(s))
	if nil != err {
		return err
	}
	*p = path
	return nil
}
