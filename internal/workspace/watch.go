// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce batches bursts of writes from editors saving a file.
const debounce = 100 * time.Millisecond

// Watch calls changed for each source file created or written in the
// directories of the project's files, until ctx is done. Go test files are
// skipped unless the workspace was opened with [Options.Tests].
// Files changed within one debounce interval are delivered in lexical order.
func (w *Workspace) Watch(ctx context.Context, changed func(file string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range w.dirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if sourceFile(event.Name, w.tests) {
				pending[event.Name] = struct{}{}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch %s: %w", w.path, err)

		case <-ticker.C:
			if len(pending) == 0 {
				continue
			}

			for _, file := range slices.Sorted(maps.Keys(pending)) {
				changed(file)
			}

			clear(pending)
		}
	}
}

// dirs returns the directories containing the project's files.
func (w *Workspace) dirs() []string {
	dirs := make(map[string]struct{})
	for _, file := range w.files {
		dirs[filepath.Dir(file)] = struct{}{}
	}

	return slices.Sorted(maps.Keys(dirs))
}
