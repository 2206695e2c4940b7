package transport_test

import (
	"context"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/sihsort/pkg/sihsort/transport"
)

func runAll(t *testing.T, comms []transport.Comm, fn func(t *testing.T, c transport.Comm)) {
	t.Helper()
	var wg sync.WaitGroup
	wg.Add(len(comms))
	for _, c := range comms {
		c := c
		go func() {
			defer wg.Done()
			fn(t, c)
		}()
	}
	wg.Wait()
}

func putInt64(v int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return buf
}

func getInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

func TestInProcess_RankAndSize(t *testing.T) {
	comms := transport.NewInProcessGroup(4)
	for i, c := range comms {
		assert.Equal(t, i, c.Rank())
		assert.Equal(t, 4, c.Size())
	}
}

func TestInProcess_Gather(t *testing.T) {
	comms := transport.NewInProcessGroup(3)
	root := 0
	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		send := putInt64(int64(c.Rank()) * 10)
		var recv []byte
		if c.Rank() == root {
			recv = make([]byte, 8*3)
		}
		err := c.Gather(context.Background(), root, send, recv)
		require.NoError(t, err)
		if c.Rank() == root {
			for i := 0; i < 3; i++ {
				assert.Equal(t, int64(i*10), getInt64(recv[i*8:(i+1)*8]))
			}
		}
	})
}

func TestInProcess_Bcast(t *testing.T) {
	comms := transport.NewInProcessGroup(4)
	root := 2
	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		buf := make([]byte, 8)
		if c.Rank() == root {
			copy(buf, putInt64(777))
		}
		err := c.Bcast(context.Background(), root, buf)
		require.NoError(t, err)
		assert.Equal(t, int64(777), getInt64(buf))
	})
}

func TestInProcess_ReduceAndAllreduce(t *testing.T) {
	comms := transport.NewInProcessGroup(5)
	root := 1

	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		buf := []int64{int64(c.Rank()) + 1}
		err := c.Reduce(context.Background(), root, transport.Sum, buf)
		require.NoError(t, err)
		if c.Rank() == root {
			assert.Equal(t, int64(1+2+3+4+5), buf[0])
		}
	})

	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		buf := []int64{int64(c.Rank()) + 1}
		err := c.Allreduce(context.Background(), transport.Sum, buf)
		require.NoError(t, err)
		assert.Equal(t, int64(1+2+3+4+5), buf[0])
	})
}

func TestInProcess_Alltoall(t *testing.T) {
	comms := transport.NewInProcessGroup(3)
	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		send := make([]int64, 3)
		for j := range send {
			send[j] = int64(c.Rank()*10 + j)
		}
		recv := make([]int64, 3)
		err := c.Alltoall(context.Background(), send, recv)
		require.NoError(t, err)
		for src := 0; src < 3; src++ {
			assert.Equal(t, int64(src*10+c.Rank()), recv[src])
		}
	})
}

func TestInProcess_Alltoallv(t *testing.T) {
	comms := transport.NewInProcessGroup(2)
	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		var send []byte
		var sendCounts []int
		if c.Rank() == 0 {
			send = append(putInt64(1), putInt64(2)...)
			sendCounts = []int{8, 8} // one int64 to each rank
		} else {
			send = putInt64(99)
			sendCounts = []int{8, 0}
		}
		var recvCounts []int
		if c.Rank() == 0 {
			recvCounts = []int{8, 8}
		} else {
			recvCounts = []int{8, 0}
		}
		total := 0
		for _, n := range recvCounts {
			total += n
		}
		recv := make([]byte, total)
		err := c.Alltoallv(context.Background(), send, sendCounts, recv, recvCounts)
		require.NoError(t, err)
		if c.Rank() == 0 {
			assert.Equal(t, int64(1), getInt64(recv[0:8]))
			assert.Equal(t, int64(99), getInt64(recv[8:16]))
		} else {
			assert.Equal(t, int64(2), getInt64(recv[0:8]))
		}
	})
}

func TestInProcess_Barrier(t *testing.T) {
	comms := transport.NewInProcessGroup(4)
	runAll(t, comms, func(t *testing.T, c transport.Comm) {
		require.NoError(t, c.Barrier(context.Background()))
	})
}
