package minio

import (
	"context"

	miniogo "github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// deleteBatchLimit is the store's per-request cap on batch deletes.
const deleteBatchLimit = 1000

// DeleteMany removes every object in keys. The input is split into batches
// of at most deleteBatchLimit keys and all batches are dispatched
// concurrently; the call returns once every delete has settled. Individual
// deletes keep Delete's idempotent guarantee, so already-absent keys do not
// fail the call. An empty input issues zero requests.
//
// The first failed delete fails the whole call — callers needing
// partial-success visibility should issue deletes individually.
func (d *Driver) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, batch := range chunkKeys(keys, deleteBatchLimit) {
		g.Go(func() error {
			return d.removeBatch(ctx, batch)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	d.log.With().Int("count", len(keys)).Logger().Debug("objects deleted")
	return nil
}

func (d *Driver) removeBatch(ctx context.Context, keys []string) error {
	objectsCh := make(chan miniogo.ObjectInfo, len(keys))
	for _, k := range keys {
		objectsCh <- miniogo.ObjectInfo{Key: k}
	}
	close(objectsCh)

	// Drain the result channel fully even after a failure so the SDK's
	// sender goroutine can exit.
	var firstErr error
	for rErr := range d.client.RemoveObjects(ctx, d.cfg.Bucket, objectsCh, miniogo.RemoveObjectsOptions{}) {
		if rErr.Err != nil && firstErr == nil {
			firstErr = mapError(rErr.Err, "failed to delete object "+rErr.ObjectName)
		}
	}
	return firstErr
}

// chunkKeys splits keys into slices of at most size entries. Every key lands
// in exactly one chunk, in order.
func chunkKeys(keys []string, size int) [][]string {
	var chunks [][]string
	for len(keys) > size {
		chunks = append(chunks, keys[:size])
		keys = keys[size:]
	}
	return append(chunks, keys)
}
