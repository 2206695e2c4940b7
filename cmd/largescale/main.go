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

// Command largescale drives SIHSort over Parquet-sharded input: one shard
// per simulated rank on disk, read into memory, sorted, and written back
// out in place. It is a driver harness, not part of the core.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xlab/treeprint"
	"go.uber.org/zap"

	"github.com/daviszhen/sihsort/pkg/sihsort"
	"github.com/daviszhen/sihsort/pkg/sihsort/transport"
	"github.com/daviszhen/sihsort/pkg/util"
)

func init() {
	cobra.OnInitialize(loadConfig)
	RootCmd.PersistentFlags().String("dir", "./sihsort-data", "shard directory")
	RootCmd.PersistentFlags().Int("ranks", 4, "number of shards/ranks")
	_ = viper.BindPFlag("data.dir", RootCmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag("data.ranks", RootCmd.PersistentFlags().Lookup("ranks"))

	generateCmd.Flags().Int("rows", 1000, "rows per shard before sorting")
	generateCmd.Flags().Int64("seed", 1, "rng seed")
	_ = viper.BindPFlag("data.rows", generateCmd.Flags().Lookup("rows"))
	_ = viper.BindPFlag("data.seed", generateCmd.Flags().Lookup("seed"))

	RootCmd.AddCommand(generateCmd, sortCmd, verifyCmd)
}

var info = "largescale"
var RootCmd = &cobra.Command{
	Use:          "largescale",
	Short:        info,
	Long:         info,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("use largescale --help, or one of: generate, sort, verify")
	},
}

func applyFlagOverrides() {
	if viper.IsSet("data.dir") || runCfg.Data.Dir == "" {
		runCfg.Data.Dir = viper.GetString("data.dir")
	}
	if viper.IsSet("data.ranks") || runCfg.Data.Ranks == 0 {
		runCfg.Data.Ranks = viper.GetInt("data.ranks")
	}
	if viper.IsSet("data.rows") || runCfg.Data.Rows == 0 {
		runCfg.Data.Rows = viper.GetInt("data.rows")
	}
	if viper.IsSet("data.seed") || runCfg.Data.Seed == 0 {
		runCfg.Data.Seed = viper.GetInt64("data.seed")
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate random Parquet shards, one per rank",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides()
		if err := os.MkdirAll(runCfg.Data.Dir, 0o755); err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(runCfg.Data.Seed))
		for rank := 0; rank < runCfg.Data.Ranks; rank++ {
			rows := make([]Row, runCfg.Data.Rows)
			for i := range rows {
				rows[i] = Row{Key: rng.Int63n(int64(runCfg.Data.Rows) * int64(runCfg.Data.Ranks) * 4)}
			}
			if err := writeShard(runCfg.Data.Dir, rank, rows); err != nil {
				return err
			}
			util.Info("generated shard", zap.Int("rank", rank), zap.Int("rows", len(rows)))
		}
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "run SIHSort over the shard directory, in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides()
		locals := make([][]Row, runCfg.Data.Ranks)
		for rank := range locals {
			rows, err := readShard(runCfg.Data.Dir, rank)
			if err != nil {
				return err
			}
			locals[rank] = rows
		}

		results, stats, err := runLargescaleSort(locals)
		if err != nil {
			return err
		}

		for rank, rows := range results {
			if err := writeShard(runCfg.Data.Dir, rank, rows); err != nil {
				return err
			}
		}
		printReport(results, stats)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check that the shard directory holds a globally sorted sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides()
		var all []int64
		prevMax := int64(-1 << 62)
		for rank := 0; rank < runCfg.Data.Ranks; rank++ {
			rows, err := readShard(runCfg.Data.Dir, rank)
			if err != nil {
				return err
			}
			for _, r := range rows {
				all = append(all, r.Key)
			}
			if !sort.SliceIsSorted(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key }) {
				return fmt.Errorf("shard %d is not locally sorted", rank)
			}
			if len(rows) > 0 {
				if rows[0].Key < prevMax {
					return fmt.Errorf("shard %d violates rank-monotone splitting", rank)
				}
				prevMax = rows[len(rows)-1].Key
			}
		}
		fmt.Printf("verified: %d elements, globally sorted across %d shards\n", len(all), runCfg.Data.Ranks)
		return nil
	},
}

func runLargescaleSort(locals [][]Row) ([][]Row, []*sihsort.Stats[int64], error) {
	p := len(locals)
	comms := transport.NewInProcessGroup(p)
	results := make([][]Row, p)
	statsSlice := make([]*sihsort.Stats[int64], p)
	errs := make([]error, p)

	order := sihsort.Asc(func(r Row) int64 { return r.Key }, func(a, b int64) bool { return a < b })
	rowCodec := sihsort.KeyCodec[Row]{
		Size: 8,
		Encode: func(r Row, dst []byte) {
			keyCodec := sihsort.Int64Codec[int64]()
			keyCodec.Encode(r.Key, dst)
		},
		Decode: func(src []byte) Row {
			keyCodec := sihsort.Int64Codec[int64]()
			return Row{Key: keyCodec.Decode(src)}
		},
	}

	var wg sync.WaitGroup
	wg.Add(p)
	for i := 0; i < p; i++ {
		i := i
		go func() {
			defer wg.Done()
			stats := &sihsort.Stats[int64]{}
			numeric := sihsort.IntNumeric[int64]()
			cfg := sihsort.Config[Row, int64]{
				Comm:      comms[i],
				Root:      0,
				Numeric:   &numeric,
				KeyCodec:  sihsort.Int64Codec[int64](),
				ElemCodec: rowCodec,
				Stats:     stats,
			}
			out, err := sihsort.Sort(context.Background(), locals[i], order, cfg)
			results[i] = out
			statsSlice[i] = stats
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return results, statsSlice, nil
}

func printReport(results [][]Row, stats []*sihsort.Stats[int64]) {
	tree := treeprint.NewWithRoot("SIHSort largescale")
	for i, r := range results {
		branch := tree.AddBranch(fmt.Sprintf("rank %d", i))
		branch.AddNode(fmt.Sprintf("count: %d", len(r)))
		if s := stats[i]; s != nil {
			branch.AddNode(fmt.Sprintf("splitters: %v", s.Splitters))
		}
	}
	fmt.Println(tree.String())
}

func main() {
	logger, _ := zap.NewDevelopment()
	util.SetLogger(logger)
	defer util.Sync()

	if err := RootCmd.Execute(); err != nil {
		util.Error("largescale command failed", zap.Error(err))
		os.Exit(1)
	}
}
