// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/daviszhen/sihsort/pkg/util"
)

// Config is the largescale harness's on-disk configuration, loaded from a
// TOML file and then overridden by viper-bound command-line flags (see
// RootCmd's init and applyFlagOverrides).
type Config struct {
	Data struct {
		Dir   string `toml:"dir"`
		Ranks int    `toml:"ranks"`
		Rows  int    `toml:"rows"`
		Seed  int64  `toml:"seed"`
	} `toml:"data"`
}

var runCfg Config

var defCfgFilePaths = []string{".", "etc/sihsort"}
var cfgFileName = "largescale.toml"

func loadConfig() {
	for _, dirPath := range defCfgFilePaths {
		fpath := filepath.Join(dirPath, cfgFileName)
		if util.FileIsValid(fpath) {
			if _, err := toml.DecodeFile(fpath, &runCfg); err != nil {
				util.Error("failed to load config file", zap.String("fpath", fpath), zap.Error(err))
			}
			return
		}
	}
	// no config file found: defaults below (set by the cobra commands'
	// flag defaults) are used as-is.
}
