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

// Package transport defines the collective-communication contract SIHSort's
// driver consumes, and ships two implementations of it: an in-process
// goroutine simulator (InProcess, the default and the one the test suite
// runs against) and, behind the "mpi" build tag, a cgo binding to a real
// system MPI library.
package transport

import "context"

// Op names a reduction operator. SIHSort only ever reduces int64 counts, so
// Sum is the only operator the core requires; it's still named (rather than
// hard-coded into Reduce/Allreduce) so a transport can assert on it.
type Op int

const (
	Sum Op = iota
)

// Comm is the collective-communication contract the driver is built
// against. Every method must be called by every rank in the communicator,
// in the same order, with consistent argument shapes - skipping or
// reordering a call deadlocks the group.
//
// Samples and splitters are K-typed and must be communicable, so
// Gather/Bcast move raw, fixed-width-per-rank []byte that the driver
// encodes K values into; histogram counts are always int64, so
// Reduce/Allreduce/Alltoall move those directly.
type Comm interface {
	// Rank returns this process's identity in [0, Size()).
	Rank() int
	// Size returns the number of ranks in the communicator.
	Size() int

	// Gather collects a fixed stride-per-rank []byte contribution from
	// every rank into root's recvbuf (len(send)*Size()); non-root ranks
	// may pass a nil recvbuf.
	Gather(ctx context.Context, root int, send []byte, recv []byte) error
	// Bcast broadcasts buf in place from root to every rank.
	Bcast(ctx context.Context, root int, buf []byte) error
	// Reduce sum-reduces buf in place into root; non-root contents are
	// unspecified on return.
	Reduce(ctx context.Context, root int, op Op, buf []int64) error
	// Allreduce sum-reduces buf in place, result visible on every rank.
	Allreduce(ctx context.Context, op Op, buf []int64) error
	// Alltoall exchanges exactly one int64 per rank: send[j] from this
	// rank lands in recv[j] read from rank j - and everyone learns what
	// every other rank sent them, at fixed stride 1.
	Alltoall(ctx context.Context, send []int64, recv []int64) error
	// Alltoallv exchanges variable-length byte payloads: sendCounts[j]
	// bytes of send go to rank j (payloads are back to back in send
	// order), and recv is sized/filled per recvCounts, also back to
	// back. Byte (not element) counts, since elements are opaque to the
	// transport.
	Alltoallv(ctx context.Context, send []byte, sendCounts []int, recv []byte, recvCounts []int) error
	// Barrier blocks until every rank has entered it. The core sort never
	// calls Barrier itself; it exists for callers that bracket a sort
	// with their own synchronization.
	Barrier(ctx context.Context) error
}
