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
	"fmt"
	"path/filepath"

	pqLocal "github.com/xitongsys/parquet-go-source/local"
	pqReader "github.com/xitongsys/parquet-go/reader"
	pqWriter "github.com/xitongsys/parquet-go/writer"
)

// Row is the on-disk shape of one rank's local array element: a single
// sort key. The largescale harness sorts rows by that int64 key (E = Row,
// K = int64); Row carries nothing besides the key.
type Row struct {
	Key int64 `parquet:"name=key, type=INT64"`
}

func shardPath(dir string, rank int) string {
	return filepath.Join(dir, fmt.Sprintf("shard-%04d.parquet", rank))
}

// writeShard writes rows as rank's Parquet shard - the harness's own
// on-disk dataset format; the core sort itself stays in-memory only.
func writeShard(dir string, rank int, rows []Row) error {
	fw, err := pqLocal.NewLocalFileWriter(shardPath(dir, rank))
	if err != nil {
		return fmt.Errorf("open shard %d for write: %w", rank, err)
	}
	defer fw.Close()

	pw, err := pqWriter.NewParquetWriter(fw, new(Row), 1)
	if err != nil {
		return fmt.Errorf("new parquet writer for shard %d: %w", rank, err)
	}
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("write row to shard %d: %w", rank, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize shard %d: %w", rank, err)
	}
	return nil
}

// readShard reads rank's Parquet shard back into memory as V_i.
func readShard(dir string, rank int) ([]Row, error) {
	fr, err := pqLocal.NewLocalFileReader(shardPath(dir, rank))
	if err != nil {
		return nil, fmt.Errorf("open shard %d for read: %w", rank, err)
	}
	defer fr.Close()

	pr, err := pqReader.NewParquetReader(fr, new(Row), 1)
	if err != nil {
		return nil, fmt.Errorf("new parquet reader for shard %d: %w", rank, err)
	}
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	rows := make([]Row, n)
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("read shard %d: %w", rank, err)
	}
	return rows, nil
}
