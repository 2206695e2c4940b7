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

//go:build mpi

// Package mpicgo binds transport.Comm to a real, system-installed MPI
// library via cgo. It assumes the MPI_ERRORS_ARE_FATAL error handler, so
// the Go wrappers below don't thread MPI error codes back - a failing MPI
// call aborts the process, which is an acceptable outcome for a transport
// failure since the sort call itself has no way to make partial progress
// useful.
//
// Building this package requires an MPI development package (mpi.h and
// libmpi) on the build host and `go build -tags mpi`; it is excluded from
// ordinary builds and from the default test run.
package mpicgo

/*
#cgo LDFLAGS: -lmpi
#include <mpi.h>
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"unsafe"

	"github.com/daviszhen/sihsort/pkg/sihsort/transport"
)

// MPI is a transport.Comm backed by MPI_COMM_WORLD. Construct exactly one
// per process after calling Init, and call Finalize once at shutdown.
type MPI struct{}

var initialized bool

// Init calls MPI_Init. Must run once, before constructing an MPI Comm.
func Init() {
	if initialized {
		return
	}
	var argc C.int
	C.MPI_Init(&argc, nil)
	initialized = true
}

// Finalize calls MPI_Finalize.
func Finalize() {
	C.MPI_Finalize()
}

// New returns a transport.Comm bound to MPI_COMM_WORLD.
func New() transport.Comm {
	return MPI{}
}

func (MPI) Rank() int {
	var r C.int
	C.MPI_Comm_rank(C.MPI_COMM_WORLD, &r)
	return int(r)
}

func (MPI) Size() int {
	var sz C.int
	C.MPI_Comm_size(C.MPI_COMM_WORLD, &sz)
	return int(sz)
}

func toCLong(in []int64) []C.long {
	out := make([]C.long, len(in))
	for i, v := range in {
		out[i] = C.long(v)
	}
	return out
}

func fromCLong(in []C.long, out []int64) {
	for i, v := range in {
		out[i] = int64(v)
	}
}

func (MPI) Gather(_ context.Context, root int, send []byte, recv []byte) error {
	var sptr, rptr unsafe.Pointer
	if len(send) > 0 {
		sptr = unsafe.Pointer(&send[0])
	}
	if len(recv) > 0 {
		rptr = unsafe.Pointer(&recv[0])
	}
	C.MPI_Gather(sptr, C.int(len(send)), C.MPI_BYTE,
		rptr, C.int(len(send)), C.MPI_BYTE, C.int(root), C.MPI_COMM_WORLD)
	return nil
}

func (MPI) Bcast(_ context.Context, root int, buf []byte) error {
	var bptr unsafe.Pointer
	if len(buf) > 0 {
		bptr = unsafe.Pointer(&buf[0])
	}
	C.MPI_Bcast(bptr, C.int(len(buf)), C.MPI_BYTE, C.int(root), C.MPI_COMM_WORLD)
	return nil
}

func (MPI) Reduce(_ context.Context, root int, op transport.Op, buf []int64) error {
	sbuf := toCLong(buf)
	rbuf := make([]C.long, len(buf))
	C.MPI_Reduce(unsafe.Pointer(&sbuf[0]), unsafe.Pointer(&rbuf[0]), C.int(len(buf)),
		C.MPI_LONG, C.MPI_SUM, C.int(root), C.MPI_COMM_WORLD)
	fromCLong(rbuf, buf)
	return nil
}

func (MPI) Allreduce(_ context.Context, op transport.Op, buf []int64) error {
	sbuf := toCLong(buf)
	rbuf := make([]C.long, len(buf))
	C.MPI_Allreduce(unsafe.Pointer(&sbuf[0]), unsafe.Pointer(&rbuf[0]), C.int(len(buf)),
		C.MPI_LONG, C.MPI_SUM, C.MPI_COMM_WORLD)
	fromCLong(rbuf, buf)
	return nil
}

func (MPI) Alltoall(_ context.Context, send []int64, recv []int64) error {
	sbuf := toCLong(send)
	rbuf := make([]C.long, len(recv))
	C.MPI_Alltoall(unsafe.Pointer(&sbuf[0]), 1, C.MPI_LONG,
		unsafe.Pointer(&rbuf[0]), 1, C.MPI_LONG, C.MPI_COMM_WORLD)
	fromCLong(rbuf, recv)
	return nil
}

func (MPI) Alltoallv(_ context.Context, send []byte, sendCounts []int, recv []byte, recvCounts []int) error {
	sCounts := make([]C.int, len(sendCounts))
	sDispls := make([]C.int, len(sendCounts))
	off := 0
	for i, n := range sendCounts {
		sCounts[i] = C.int(n)
		sDispls[i] = C.int(off)
		off += n
	}
	rCounts := make([]C.int, len(recvCounts))
	rDispls := make([]C.int, len(recvCounts))
	off = 0
	for i, n := range recvCounts {
		rCounts[i] = C.int(n)
		rDispls[i] = C.int(off)
		off += n
	}
	var sptr, rptr unsafe.Pointer
	if len(send) > 0 {
		sptr = unsafe.Pointer(&send[0])
	}
	if len(recv) > 0 {
		rptr = unsafe.Pointer(&recv[0])
	}
	C.MPI_Alltoallv(sptr, &sCounts[0], &sDispls[0], C.MPI_BYTE,
		rptr, &rCounts[0], &rDispls[0], C.MPI_BYTE, C.MPI_COMM_WORLD)
	return nil
}

func (MPI) Barrier(_ context.Context) error {
	C.MPI_Barrier(C.MPI_COMM_WORLD)
	return nil
}
