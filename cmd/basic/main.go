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

// Command basic runs SIHSort over a small, randomly generated in-memory
// dataset spread across an in-process simulated communicator, and prints
// the resulting per-rank layout and stats as a tree. It is a driver
// harness, not part of the core.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"

	"github.com/huandu/go-clone"
	"github.com/xlab/treeprint"
	"go.uber.org/zap"

	"github.com/daviszhen/sihsort/pkg/sihsort"
	"github.com/daviszhen/sihsort/pkg/sihsort/transport"
	"github.com/daviszhen/sihsort/pkg/util"
)

func main() {
	ranks := flag.Int("ranks", 4, "number of simulated ranks")
	base := flag.Int("base", 50, "base local element count per rank")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	util.SetLogger(logger)
	defer util.Sync()

	locals := generateInput(*ranks, *base, *seed)
	original := clone.Clone(locals).([][]int)

	results, stats := runBasicSort(locals)

	if err := verify(original, results); err != nil {
		util.Error("verification failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "FAILED:", err)
		os.Exit(1)
	}

	printReport(results, stats)
}

func generateInput(ranks, base int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	locals := make([][]int, ranks)
	for i := range locals {
		n := base + 2*i
		locals[i] = make([]int, n)
		for j := range locals[i] {
			locals[i][j] = rng.Intn(base * ranks * 4)
		}
	}
	return locals
}

func runBasicSort(locals [][]int) ([][]int, []*sihsort.Stats[int]) {
	p := len(locals)
	comms := transport.NewInProcessGroup(p)
	results := make([][]int, p)
	statsSlice := make([]*sihsort.Stats[int], p)

	var wg sync.WaitGroup
	wg.Add(p)
	for i := 0; i < p; i++ {
		i := i
		go func() {
			defer wg.Done()
			stats := &sihsort.Stats[int]{}
			numeric := sihsort.IntNumeric[int]()
			cfg := sihsort.Config[int, int]{
				Comm:      comms[i],
				Root:      0,
				SorterAlgo: sihsort.AlgoDefault,
				Numeric:   &numeric,
				KeyCodec:  sihsort.Int64Codec[int](),
				ElemCodec: sihsort.Int64Codec[int](),
				Stats:     stats,
			}
			order := sihsort.Asc(func(v int) int { return v }, func(a, b int) bool { return a < b })
			out, err := sihsort.Sort(context.Background(), locals[i], order, cfg)
			if err != nil {
				util.Error("sort failed", zap.Int("rank", i), zap.Error(err))
				return
			}
			results[i] = out
			statsSlice[i] = stats
		}()
	}
	wg.Wait()
	return results, statsSlice
}

func verify(original, results [][]int) error {
	var want, got []int
	for _, r := range original {
		want = append(want, r...)
	}
	for _, r := range results {
		got = append(got, r...)
	}
	if len(want) != len(got) {
		return fmt.Errorf("element count mismatch: want %d, got %d", len(want), len(got))
	}
	sort.Ints(want)
	if !sort.IntsAreSorted(got) {
		return fmt.Errorf("output is not globally sorted")
	}
	gotSorted := append([]int(nil), got...)
	sort.Ints(gotSorted)
	for i := range want {
		if want[i] != gotSorted[i] {
			return fmt.Errorf("permutation mismatch at index %d: want %d, got %d", i, want[i], gotSorted[i])
		}
	}
	return nil
}

func printReport(results [][]int, stats []*sihsort.Stats[int]) {
	tree := treeprint.NewWithRoot("SIHSort basic")
	for i, r := range results {
		branch := tree.AddBranch(fmt.Sprintf("rank %d", i))
		branch.AddNode(fmt.Sprintf("count: %d", len(r)))
		if s := stats[i]; s != nil {
			branch.AddNode(fmt.Sprintf("splitters: %v", s.Splitters))
		}
	}
	fmt.Println(tree.String())
}
