// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/hivenode/hived/storage/leveldbstore"
)

type infoResult struct {
	Path       string                       `json:"path"`
	Version    *uint64                      `json:"version"`
	Health     string                       `json:"health"`
	Size       uint64                       `json:"size"`
	Partitions []leveldbstore.PartitionInfo `json:"partitions"`
	Undeclared []leveldbstore.PartitionInfo `json:"undeclared"`
	Missing    []string                     `json:"missing"`
	Entries    map[string]int               `json:"entries,omitempty"`
}

type partitionsResult struct {
	Partitions []leveldbstore.PartitionInfo `json:"partitions"`
	Undeclared []leveldbstore.PartitionInfo `json:"undeclared"`
	Missing    []string                     `json:"missing"`
}

type sizeResult struct {
	Path string `json:"path"`
	Size uint64 `json:"size"`
}

func inspect(c *cli.Context, countEntries bool) (*metadata, *leveldbstore.Report, error) {
	m := c.App.Metadata["config"].(*metadata)

	report, err := leveldbstore.Inspect(m.config, countEntries)
	if nil != err {
		return nil, nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "partitions: %d  undeclared: %d  missing: %d\n", len(report.Partitions), len(report.Undeclared), len(report.Missing))
	}
	return m, report, nil
}

func runInfo(c *cli.Context) error {
	m, report, err := inspect(c, c.Bool("count"))
	if nil != err {
		return err
	}

	result := infoResult{
		Path:       report.Path,
		Health:     "none",
		Size:       report.Size,
		Partitions: report.Partitions,
		Undeclared: report.Undeclared,
		Missing:    report.Missing,
		Entries:    report.EntryCounts,
	}
	if report.HasVersion {
		result.Version = &report.Version
	}
	if nil != report.Health {
		result.Health = report.Health.String()
	}
	return printJson(m.w, result)
}

func runPartitions(c *cli.Context) error {
	m, report, err := inspect(c, false)
	if nil != err {
		return err
	}
	return printJson(m.w, partitionsResult{
		Partitions: report.Partitions,
		Undeclared: report.Undeclared,
		Missing:    report.Missing,
	})
}

func runSize(c *cli.Context) error {
	m, report, err := inspect(c, false)
	if nil != err {
		return err
	}
	return printJson(m.w, sizeResult{
		Path: report.Path,
		Size: report.Size,
	})
}
