// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"github.com/bitmark-inc/ledgerd/address"
	"github.com/bitmark-inc/ledgerd/fault"
)

// Anyone - address that matches every identity set
const Anyone = "*"

// Subject - decides if a set of identities is covered by a rule
type Subject interface {
	IsMatch(identities []string) bool
}

// MultiSignatureSubject - at least Required of Addresses must have signed
type MultiSignatureSubject struct {
	Addresses []string
	Required  int
}

// SubjectConfiguration - text form of a subject
type SubjectConfiguration struct {
	Addresses []string `gluamapper:"addresses" json:"addresses"`
	Required  int      `gluamapper:"required" json:"required"`
}

// NewSubject - validate a subject configuration
//
// a single "*" address matches anyone
func NewSubject(c SubjectConfiguration) (Subject, error) {
	if 1 == len(c.Addresses) && Anyone == c.Addresses[0] {
		return &MultiSignatureSubject{}, nil
	}
	if c.Required < 0 || c.Required > len(c.Addresses) {
		return nil, fault.ErrInvalidSubject
	}
	for _, a := range c.Addresses {
		if _, err := address.Decode(a); nil != err {
			return nil, fault.ErrInvalidSubject
		}
	}
	required := c.Required
	if 0 == required && 0 != len(c.Addresses) {
		required = 1
	}
	return &MultiSignatureSubject{
		Addresses: append([]string{}, c.Addresses...),
		Required:  required,
	}, nil
}

// IsMatch - count the signed addresses
func (s *MultiSignatureSubject) IsMatch(identities []string) bool {
	if 0 == s.Required {
		return true
	}
	count := 0
	for _, a := range s.Addresses {
		if contains(identities, a) {
			count += 1
		}
	}
	return count >= s.Required
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
