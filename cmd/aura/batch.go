package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/auralite/aura/auraconfigs"
	"github.com/auralite/aura/cmds"
	"github.com/auralite/aura/logs"
	"github.com/auralite/aura/syncs"
)

var dirFlag = cmds.Var[string]("dir")

// runBatch transpiles every .aura file under the directory to a .js
// sibling. Files are independent, so they run concurrently.
func runBatch(
	ctx context.Context,
	dir string,
	transpile auraconfigs.Transpile,
	logger logs.Logger,
) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(path, ".aura") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sem := syncs.NewSemaphore(runtime.NumCPU())
	var wg sync.WaitGroup
	errs := make([]error, len(paths))

	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Acquire()
			defer sem.Release()
			errs[i] = batchOne(path, transpile)
		}()
	}
	wg.Wait()

	var failed int
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		logger.ErrorContext(ctx, "transpile failed",
			"source", paths[i],
			"error", err,
		)
	}
	logger.InfoContext(ctx, "batch done",
		"total", len(paths),
		"failed", failed,
	)
	if failed > 0 {
		os.Exit(-1)
	}
	return nil
}

func batchOne(path string, transpile auraconfigs.Transpile) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	output, err := transpile(path, string(content))
	if err != nil {
		return err
	}
	outPath := strings.TrimSuffix(path, ".aura") + ".js"
	return os.WriteFile(outPath, []byte(output), 0644)
}
