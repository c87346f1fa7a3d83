// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Access - the state of a single permission
type Access int

// access values
const (
	Unset Access = iota
	Permit
	Deny
)

// String - text form for logging and configuration
func (a Access) String() string {
	switch a {
	case Unset:
		return "Unset"
	case Permit:
		return "Permit"
	case Deny:
		return "Deny"
	default:
		return "*unknown*"
	}
}

// ParseAccess - case insensitive, empty is Unset
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(s) {
	case "", "unset":
		return Unset, nil
	case "permit":
		return Permit, nil
	case "deny":
		return Deny, nil
	default:
		return Unset, fault.ErrUnknownAccessValue
	}
}

// MarshalText - access as a JSON string
func (a Access) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - access from a JSON string
func (a *Access) UnmarshalText(s []byte) error {
	access, err := ParseAccess(string(s))
	if nil != err {
		return err
	}
	*a = access
	return nil
}

// replace original unless added is Unset
func combine(original Access, added Access) Access {
	if Unset == added {
		return original
	}
	return added
}

func unsetToDeny(a Access) Access {
	if Unset == a {
		return Deny
	}
	return a
}

// PermissionSet - everything that can be done to a record
type PermissionSet struct {
	AccountNegative Access `json:"account_negative"`
	AccountSpend    Access `json:"account_spend"`
	AccountModify   Access `json:"account_modify"`
	AccountCreate   Access `json:"account_create"`
	DataModify      Access `json:"data_modify"`
}

// common sets
var (
	UnsetAll = PermissionSet{}
	AllowAll = PermissionSet{
		AccountNegative: Permit,
		AccountSpend:    Permit,
		AccountModify:   Permit,
		AccountCreate:   Permit,
		DataModify:      Permit,
	}
	DenyAll = PermissionSet{
		AccountNegative: Deny,
		AccountSpend:    Deny,
		AccountModify:   Deny,
		AccountCreate:   Deny,
		DataModify:      Deny,
	}
)

// Add - override with every access that is set in other
func (p PermissionSet) Add(other PermissionSet) PermissionSet {
	return PermissionSet{
		AccountNegative: combine(p.AccountNegative, other.AccountNegative),
		AccountSpend:    combine(p.AccountSpend, other.AccountSpend),
		AccountModify:   combine(p.AccountModify, other.AccountModify),
		AccountCreate:   combine(p.AccountCreate, other.AccountCreate),
		DataModify:      combine(p.DataModify, other.DataModify),
	}
}

// Final - every Unset access becomes Deny
func (p PermissionSet) Final() PermissionSet {
	return PermissionSet{
		AccountNegative: unsetToDeny(p.AccountNegative),
		AccountSpend:    unsetToDeny(p.AccountSpend),
		AccountModify:   unsetToDeny(p.AccountModify),
		AccountCreate:   unsetToDeny(p.AccountCreate),
		DataModify:      unsetToDeny(p.DataModify),
	}
}

// PermissionConfiguration - text form of a permission set
type PermissionConfiguration struct {
	AccountNegative string `gluamapper:"account_negative" json:"account_negative"`
	AccountSpend    string `gluamapper:"account_spend" json:"account_spend"`
	AccountModify   string `gluamapper:"account_modify" json:"account_modify"`
	AccountCreate   string `gluamapper:"account_create" json:"account_create"`
	DataModify      string `gluamapper:"data_modify" json:"data_modify"`
}

// PermissionSetFromConfiguration - parse each access
func PermissionSetFromConfiguration(c PermissionConfiguration) (PermissionSet, error) {
	var p PermissionSet
	items := []struct {
		text   string
		access *Access
	}{
		{c.AccountNegative, &p.AccountNegative},
		{c.AccountSpend, &p.AccountSpend},
		{c.AccountModify, &p.AccountModify},
		{c.AccountCreate, &p.AccountCreate},
		{c.DataModify, &p.DataModify},
	}
	for _, item := range items {
		a, err := ParseAccess(item.text)
		if nil != err {
			return PermissionSet{}, err
		}
		*item.access = a
	}
	return p, nil
}
