// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/hivenode/hived/configuration"
	"github.com/hivenode/hived/storage/leveldbstore"
	"github.com/hivenode/hived/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultStorageDirectory = "data"
	defaultStorageName      = "hived.leveldb"

	defaultMonitorInterval = 60 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "hived.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type MonitorType struct {
	Interval int `gluamapper:"interval" json:"interval"`
}

type MetricsType struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

type Configuration struct {
	DataDirectory string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                     `gluamapper:"pidfile" json:"pidfile"`
	Storage       leveldbstore.StorageConfig `gluamapper:"storage" json:"storage"`
	Monitor       MonitorType                `gluamapper:"monitor" json:"monitor"`
	Metrics       MetricsType                `gluamapper:"metrics" json:"metrics"`
	Logging       logger.Configuration       `gluamapper:"logging" json:"logging"`
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

		Storage: leveldbstore.DefaultConfig(filepath.Join(defaultStorageDirectory, defaultStorageName)),

		Monitor: MonitorType{
			Interval: defaultMonitorInterval,
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

	if err := resolvePaths(options, dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// make every file and directory absolute, relative paths are taken
// from the data directory
func resolvePaths(options *Configuration, configurationDirectory string) error {

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = configurationDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the daemon never runs on a memory store
	if "" == options.Storage.Path {
		return fmt.Errorf("Storage: path cannot be blank")
	}
	if options.Monitor.Interval <= 0 {
		return fmt.Errorf("Monitor: interval: %d must be positive", options.Monitor.Interval)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Storage.Path,
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must not contain path seperator
	// then add the correct directory prefix, file item is first and corresponding directory is second
	if "" == options.Logging.File || options.Logging.File != filepath.Base(options.Logging.File) {
		return fmt.Errorf("Logging: file: %q is not a plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []string{
		filepath.Dir(options.Storage.Path),
		options.Logging.Directory,
	} {
		if err := util.EnsureDirectory(d); nil != err {
			return err
		}
	}

	return nil
}
