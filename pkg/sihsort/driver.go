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

package sihsort

import (
	"context"

	"go.uber.org/zap"

	"github.com/daviszhen/sihsort/pkg/sihsort/transport"
	"github.com/daviszhen/sihsort/pkg/util"
)

// Sort runs Sampling with Interpolated Histograms Sort: v is this rank's
// local segment of a distributed array; every rank in cfg.Comm must call
// Sort collectively, with the same cfg.Comm, cfg.Root, and an Order
// consistent (not necessarily identical in value, but semantically
// equivalent) with every other rank's.
//
// v must hold at least one element; violating that is a precondition the
// caller must enforce before calling Sort, since other ranks may already
// be blocked in a collective by the time one rank notices.
//
// The returned slice is this rank's segment of the globally sorted
// sequence. v is sorted in place; with a single rank the returned slice is
// v itself, otherwise it is a newly allocated slice.
func Sort[E any, K any](ctx context.Context, v []E, order Order[E, K], cfg Config[E, K]) (result []E, err error) {
	if util.Empty(v) {
		return nil, ErrEmptyLocalArray
	}
	if cfg.Comm == nil {
		return nil, ErrNoCommunicator
	}

	defer func() {
		if r := recover(); r != nil {
			err = util.ConvertPanicError(r)
			result = nil
		}
	}()

	cfg.sortElems(v, order)

	p := cfg.Comm.Size()
	if p == 1 {
		if cfg.Stats != nil {
			cfg.Stats.Splitters = nil
			cfg.Stats.Counts = []int64{int64(len(v))}
		}
		return v, nil
	}

	rank := cfg.Comm.Rank()
	root := cfg.Root
	kc := klocal(p)
	ktotal := kc * p
	util.Debug("sihsort: starting", zap.Int("rank", rank), zap.Int("ranks", p), zap.Int("local_n", len(v)))

	// --- Sampler ---
	samples := sampleKeysWithDevice(cfg.Device, v, kc, order)

	// --- Gather samples to root, sort them there, broadcast back ---
	sendBuf := encodeAll(samples, cfg.KeyCodec)
	var gatherRecv []byte
	if rank == root {
		gatherRecv = make([]byte, ktotal*cfg.KeyCodec.Size)
	}
	if err := cfg.Comm.Gather(ctx, root, sendBuf, gatherRecv); err != nil {
		util.Error("sihsort: gather failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Gather", err)
	}

	bcastBuf := make([]byte, ktotal*cfg.KeyCodec.Size)
	if rank == root {
		allSamples := decodeAll(gatherRecv, cfg.KeyCodec)
		cfg.sortKeys(allSamples, order.LessKey)
		copy(bcastBuf, encodeAll(allSamples, cfg.KeyCodec))
	}
	if err := cfg.Comm.Bcast(ctx, root, bcastBuf); err != nil {
		util.Error("sihsort: broadcast of samples failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Bcast(samples)", err)
	}
	globalSamples := decodeAll(bcastBuf, cfg.KeyCodec)
	util.Debug("sihsort: samples exchanged", zap.Int("rank", rank), zap.Int("ktotal", ktotal))

	// --- Histogram the global samples against this rank's local array ---
	sampleHist := histogramKeysWithDevice(cfg.Device, v, globalSamples, order)
	sampleHist = append(sampleHist, int64(len(v))) // piggy-backed local count

	// --- Reduce histograms to root; root now knows the global count ---
	if err := cfg.Comm.Reduce(ctx, root, transport.Sum, sampleHist); err != nil {
		util.Error("sihsort: histogram reduce failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Reduce", err)
	}

	// --- Splitter selection (root only) ---
	splitterBuf := make([]byte, (p-1)*cfg.KeyCodec.Size)
	if rank == root {
		n := sampleHist[ktotal]
		x := selectSplitters(globalSamples, sampleHist[:ktotal], n, p, order.LessKey, cfg.Numeric)
		copy(splitterBuf, encodeAll(x, cfg.KeyCodec))
		util.Debug("sihsort: splitters selected", zap.Int64("total_n", n), zap.Int("count", len(x)))
	}

	// --- Broadcast splitters; every rank histograms them locally ---
	if err := cfg.Comm.Bcast(ctx, root, splitterBuf); err != nil {
		util.Error("sihsort: broadcast of splitters failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Bcast(splitters)", err)
	}
	splitters := decodeAll(splitterBuf, cfg.KeyCodec)

	splitterHist := histogramKeysWithDevice(cfg.Device, v, splitters, order)
	hFull := make([]int64, p)
	copy(hFull, splitterHist)
	if rank == root {
		hFull[p-1] = sampleHist[ktotal] // total N, piggy-backed again
	}

	// --- Send-count derivation ---
	sendCounts := deriveCounts(splitterHist, int64(len(v)), p)

	// --- Exchange send counts, allreduce the splitter histogram, derive
	// the receive layout two independent ways ---
	recvCounts := make([]int64, p)
	if err := cfg.Comm.Alltoall(ctx, sendCounts, recvCounts); err != nil {
		util.Error("sihsort: send-count exchange failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Alltoall", err)
	}
	if err := cfg.Comm.Allreduce(ctx, transport.Sum, hFull); err != nil {
		util.Error("sihsort: histogram allreduce failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Allreduce", err)
	}
	n := hFull[p-1]
	targetCounts := deriveCounts(hFull[:p-1], n, p)
	// The count derived from the send/recv exchange and the count derived
	// from the reduced histogram are computed two independent ways; they
	// must agree, or the two derivations have diverged and the exchange
	// below would be built on inconsistent counts.
	util.AssertFunc(targetCounts[rank] == sumInt64(recvCounts))
	util.Debug("sihsort: partition layout derived", zap.Int("rank", rank), zap.Int64("target_n", targetCounts[rank]))

	// --- Payload exchange, then a final local sort of the received data ---
	sendPayload := encodeAll(v, cfg.ElemCodec)
	sendByteCounts := make([]int, p)
	for i, c := range sendCounts {
		sendByteCounts[i] = int(c) * cfg.ElemCodec.Size
	}
	recvByteCounts := make([]int, p)
	for i, c := range recvCounts {
		recvByteCounts[i] = int(c) * cfg.ElemCodec.Size
	}
	recvPayload := make([]byte, sumInt64(recvCounts)*int64(cfg.ElemCodec.Size))
	if err := cfg.Comm.Alltoallv(ctx, sendPayload, sendByteCounts, recvPayload, recvByteCounts); err != nil {
		util.Error("sihsort: payload exchange failed", zap.Int("rank", rank), zap.Error(err))
		return nil, wrapTransportErr("Alltoallv", err)
	}
	vPrime := decodeAll(recvPayload, cfg.ElemCodec)
	cfg.sortElems(vPrime, order)
	util.Debug("sihsort: done", zap.Int("rank", rank), zap.Int("final_n", len(vPrime)))

	// --- Stats emission ---
	if cfg.Stats != nil {
		cfg.Stats.Splitters = splitters
		cfg.Stats.Counts = targetCounts
	}

	return vPrime, nil
}

func sumInt64(s []int64) int64 {
	var total int64
	for _, v := range s {
		total += v
	}
	return total
}
