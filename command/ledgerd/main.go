// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/background"
	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/permission"
	"github.com/bitmark-inc/ledgerd/rpc/certificate"
	"github.com/bitmark-inc/ledgerd/rpc/handler"
	"github.com/bitmark-inc/ledgerd/rpc/listeners"
	"github.com/bitmark-inc/ledgerd/rpc/server"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/validation"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	namespace, err := theConfiguration.namespace()
	if nil != err {
		log.Criticalf("namespace error: %s", err)
		exitwithstatus.Message("namespace error: %s", err)
	}

	// general info
	log.Infof("namespace: %s", namespace)
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, false, logger.New("storage"))
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// permission providers in order of evaluation
	rules, err := permission.NewRules(theConfiguration.Permissions.Rules)
	if nil != err {
		log.Criticalf("permission rules error: %s", err)
		exitwithstatus.Message("permission rules error: %s", err)
	}
	staticLayout := permission.NewStaticLayout(rules)
	log.Infof("static rules: %d", staticLayout.Count())

	providers := []permission.Provider{staticLayout}
	if theConfiguration.P2PKH.Enabled {
		log.Infof("p2pkh layout: version: %d  issuance: %v", theConfiguration.P2PKH.Version, theConfiguration.P2PKH.AllowIssuance)
		providers = append(providers, permission.NewP2PKHLayout(byte(theConfiguration.P2PKH.Version), theConfiguration.P2PKH.AllowIssuance))
	}
	if theConfiguration.Permissions.Dynamic {
		log.Info("dynamic permissions enabled")
		providers = append(providers, permission.NewDynamicLayout(store, logger.New("acl")))
	}

	validator := validation.NewPermissionBasedValidator(namespace, providers, logger.New("validator"))
	core := ledger.New(store, validator, namespace, logger.New("ledger"))

	// start up the rpc listener
	var rpcCount counter.Counter
	rpcLog := logger.New(listeners.LogName)
	rpcServer := server.Create(rpcLog, core, store, version, &rpcCount)

	tlsConfig, err := loadTLS(rpcLog, &theConfiguration.ClientRPC)
	if nil != err {
		log.Criticalf("rpc certificate error: %s", err)
		exitwithstatus.Message("rpc certificate error: %s", err)
	}

	rpcListener, err := listeners.NewRPC(&theConfiguration.ClientRPC, rpcLog, &rpcCount, rpcServer, tlsConfig)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if err := rpcListener.Serve(); nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}
	defer rpcListener.Close()

	// optional HTTP gateway sharing the same RPC server and certificate
	httpsLog := logger.New(listeners.HTTPSLogName)
	hdlr := handler.New(httpsLog, rpcServer, core, store, time.Now().UTC(), version, theConfiguration.HttpsRPC.MaximumConnections)
	httpsListener, err := listeners.NewHTTPS(&theConfiguration.HttpsRPC, httpsLog, tlsConfig, hdlr)
	if nil != err {
		log.Criticalf("https initialise error: %s", err)
		exitwithstatus.Message("https initialise error: %s", err)
	}
	if nil != httpsListener {
		if err := httpsListener.Serve(); nil != err {
			log.Criticalf("https serve error: %s", err)
			exitwithstatus.Message("https serve error: %s", err)
		}
		defer httpsListener.Close()
	}

	// background processes
	processes := background.Processes{}
	if theConfiguration.Permissions.Watch {
		watcher, err := permission.NewWatcher(configurationFile, staticLayout, loadRules, logger.New("watcher"))
		if nil != err {
			log.Criticalf("watcher initialise error: %s", err)
			exitwithstatus.Message("watcher initialise error: %s", err)
		}
		processes = append(processes, watcher)
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// read the certificate and key files, blank names mean plain TCP
func loadTLS(log *logger.L, rpcConfiguration *listeners.RPCConfiguration) (*tls.Config, error) {
	if "" == rpcConfiguration.Certificate {
		log.Warn("no certificate: serving without TLS")
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, listeners.LogName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("SHA3-256 fingerprint: %s", fingerprint)
	return tlsConfig, nil
}
