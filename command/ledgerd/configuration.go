// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/configuration"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/permission"
	"github.com/bitmark-inc/ledgerd/rpc/listeners"
	"github.com/bitmark-inc/ledgerd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultLedgerDatabase   = "ledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the record store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// P2PKHType - accounts owned by public key hash addresses
type P2PKHType struct {
	Enabled       bool `gluamapper:"enabled" json:"enabled"`
	Version       int  `gluamapper:"version" json:"version"`
	AllowIssuance bool `gluamapper:"allow_issuance" json:"allow_issuance"`
}

// PermissionsType - static rules and optional ledger stored rules
type PermissionsType struct {
	Watch   bool                           `gluamapper:"watch" json:"watch"`
	Dynamic bool                           `gluamapper:"dynamic" json:"dynamic"`
	Rules   []permission.RuleConfiguration `gluamapper:"rules" json:"rules"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string                       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                       `gluamapper:"pidfile" json:"pidfile"`
	Namespace     string                       `gluamapper:"namespace" json:"namespace"`
	Database      DatabaseType                 `gluamapper:"database" json:"database"`
	ClientRPC     listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC      listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	P2PKH         P2PKHType                    `gluamapper:"p2pkh" json:"p2pkh"`
	Permissions   PermissionsType              `gluamapper:"permissions" json:"permissions"`
	Logging       logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLedgerDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		P2PKH: P2PKHType{
			Enabled: true,
			Version: int(account.P2PKHVersion),
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if _, err := options.namespace(); nil != err {
		return nil, fmt.Errorf("Namespace: %q  error: %s", options.Namespace, err)
	}

	if options.P2PKH.Version < 0 || options.P2PKH.Version > 255 {
		return nil, fmt.Errorf("P2PKH: version %d is not a byte", options.P2PKH.Version)
	}

	if ("" == options.ClientRPC.Certificate) != ("" == options.ClientRPC.PrivateKey) {
		return nil, fmt.Errorf("ClientRPC: certificate and private_key must both be set or both be blank")
	}

	// all rules must be valid at startup
	if _, err := permission.NewRules(options.Permissions.Rules); nil != err {
		return nil, fmt.Errorf("Permissions: %s", err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.CheckDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainName(*f[0]) {
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		}
	}

	// create directories if they do not already exist
	if err := util.MakeDirectories(0700, options.Database.Directory, options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// decoded namespace, must not be empty
func (c *Configuration) namespace() (bytestring.ByteString, error) {
	if "" == c.Namespace {
		return bytestring.Empty, fault.ErrMissingParameters
	}
	return bytestring.Parse(c.Namespace)
}

// loadRules - re-read only the permission rules from the configuration file
func loadRules(fileName string) ([]*permission.Rule, error) {
	options := &Configuration{}
	if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}
	return permission.NewRules(options.Permissions.Rules)
}
