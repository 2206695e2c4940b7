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

package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/daviszhen/sihsort/pkg/util"
)

// group is the shared rendezvous state for one in-process communicator:
// every rank's goroutine meets here once per collective instead of
// exchanging network messages.
type group struct {
	size int

	mu      sync.Mutex
	locks   []*util.ReentryLock // per-rank: guards against a rank issuing two concurrent collectives
	arrived int
	slots   []any
	result  any
	advance chan struct{}
}

// NewInProcessGroup builds size InProcess communicators that all rendezvous
// with each other, one per simulated rank. Callers run each one in its own
// goroutine (see cmd/basic for the canonical harness shape).
func NewInProcessGroup(size int) []Comm {
	if size < 1 {
		panic("sihsort/transport: group size must be >= 1")
	}
	g := &group{
		size:    size,
		locks:   make([]*util.ReentryLock, size),
		slots:   make([]any, size),
		advance: make(chan struct{}),
	}
	for i := range g.locks {
		g.locks[i] = util.NewReentryLock()
	}
	comms := make([]Comm, size)
	for i := 0; i < size; i++ {
		comms[i] = &InProcess{g: g, rank: i}
	}
	return comms
}

// InProcess is a Comm backed by goroutines and channels within a single OS
// process - the transport the driver and its test suite run against by
// default, since the retrieval pack carries no Go MPI binding (see
// SPEC_FULL.md's Domain Stack).
type InProcess struct {
	g    *group
	rank int
}

func (c *InProcess) Rank() int { return c.rank }
func (c *InProcess) Size() int { return c.g.size }

// rendezvous is the one barrier primitive every collective below is built
// from: every rank deposits its contribution into the current round's
// slots, and whichever goroutine happens to arrive last computes the
// shared result via compute and wakes everyone else.
func (c *InProcess) rendezvous(ctx context.Context, op string, contribution any, compute func(slots []any) any) (any, error) {
	c.g.locks[c.rank].Lock()
	defer c.g.locks[c.rank].Unlock()

	if fa := util.Check(util.FAULTS_SCOPE_TRANSPORT, op); fa != nil {
		if err := fa.Action(fa.Args); err != nil {
			return nil, fmt.Errorf("injected fault in %s on rank %d: %w", op, c.rank, err)
		}
	}

	c.g.mu.Lock()
	c.g.slots[c.rank] = contribution
	c.g.arrived++
	myAdvance := c.g.advance
	if c.g.arrived == c.g.size {
		result := compute(c.g.slots)
		c.g.result = result
		c.g.arrived = 0
		c.g.slots = make([]any, c.g.size)
		c.g.advance = make(chan struct{})
		c.g.mu.Unlock()
		close(myAdvance)
		return result, nil
	}
	c.g.mu.Unlock()

	select {
	case <-myAdvance:
		c.g.mu.Lock()
		res := c.g.result
		c.g.mu.Unlock()
		return res, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *InProcess) Gather(ctx context.Context, root int, send []byte, recv []byte) error {
	res, err := c.rendezvous(ctx, "Gather", append([]byte(nil), send...), func(slots []any) any {
		stride := len(slots[0].([]byte))
		out := make([]byte, stride*len(slots))
		for r, s := range slots {
			copy(out[r*stride:], s.([]byte))
		}
		return out
	})
	if err != nil {
		return wrapErr("Gather", err)
	}
	if c.rank == root {
		copy(recv, res.([]byte))
	}
	return nil
}

func (c *InProcess) Bcast(ctx context.Context, root int, buf []byte) error {
	type bc struct {
		rank int
		data []byte
	}
	res, err := c.rendezvous(ctx, "Bcast", bc{rank: c.rank, data: buf}, func(slots []any) any {
		for _, s := range slots {
			if s.(bc).rank == root {
				return append([]byte(nil), s.(bc).data...)
			}
		}
		panic("sihsort/transport: root did not participate in Bcast")
	})
	if err != nil {
		return wrapErr("Bcast", err)
	}
	copy(buf, res.([]byte))
	return nil
}

func (c *InProcess) Reduce(ctx context.Context, root int, op Op, buf []int64) error {
	res, err := c.rendezvous(ctx, "Reduce", append([]int64(nil), buf...), func(slots []any) any {
		return sumInt64Slots(slots, op)
	})
	if err != nil {
		return wrapErr("Reduce", err)
	}
	if c.rank == root {
		copy(buf, res.([]int64))
	}
	return nil
}

func (c *InProcess) Allreduce(ctx context.Context, op Op, buf []int64) error {
	res, err := c.rendezvous(ctx, "Allreduce", append([]int64(nil), buf...), func(slots []any) any {
		return sumInt64Slots(slots, op)
	})
	if err != nil {
		return wrapErr("Allreduce", err)
	}
	copy(buf, res.([]int64))
	return nil
}

func sumInt64Slots(slots []any, op Op) []int64 {
	if op != Sum {
		panic("sihsort/transport: only Sum is supported")
	}
	width := len(slots[0].([]int64))
	out := make([]int64, width)
	for _, s := range slots {
		v := s.([]int64)
		for i := 0; i < width; i++ {
			out[i] += v[i]
		}
	}
	return out
}

func (c *InProcess) Alltoall(ctx context.Context, send []int64, recv []int64) error {
	res, err := c.rendezvous(ctx, "Alltoall", append([]int64(nil), send...), func(slots []any) any {
		size := len(slots)
		out := make([][]int64, size)
		for dst := 0; dst < size; dst++ {
			row := make([]int64, size)
			for src := 0; src < size; src++ {
				row[src] = slots[src].([]int64)[dst]
			}
			out[dst] = row
		}
		return out
	})
	if err != nil {
		return wrapErr("Alltoall", err)
	}
	copy(recv, res.([][]int64)[c.rank])
	return nil
}

type a2aContribution struct {
	payload []byte
	counts  []int
}

func (c *InProcess) Alltoallv(ctx context.Context, send []byte, sendCounts []int, recv []byte, recvCounts []int) error {
	res, err := c.rendezvous(ctx, "Alltoallv", a2aContribution{
		payload: append([]byte(nil), send...),
		counts:  append([]int(nil), sendCounts...),
	}, func(slots []any) any {
		size := len(slots)
		out := make([][]byte, size)
		for dst := 0; dst < size; dst++ {
			var buf []byte
			for src := 0; src < size; src++ {
				contrib := slots[src].(a2aContribution)
				off := 0
				for d := 0; d < dst; d++ {
					off += contrib.counts[d]
				}
				buf = append(buf, contrib.payload[off:off+contrib.counts[dst]]...)
			}
			out[dst] = buf
		}
		return out
	})
	if err != nil {
		return wrapErr("Alltoallv", err)
	}
	mine := res.([][]byte)[c.rank]
	total := 0
	for _, n := range recvCounts {
		total += n
	}
	util.AssertFunc(total == len(mine))
	copy(recv, mine)
	return nil
}

func (c *InProcess) Barrier(ctx context.Context) error {
	_, err := c.rendezvous(ctx, "Barrier", struct{}{}, func(slots []any) any { return struct{}{} })
	if err != nil {
		return wrapErr("Barrier", err)
	}
	return nil
}

func wrapErr(op string, err error) error {
	return fmt.Errorf("sihsort/transport: %s: %w", op, err)
}
