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
	"sync"

	"fillmore-labs.com/loopnest/internal/treesitter"
)

// parserPool hands out tree-sitter parsers, one per concurrent caller.
type parserPool struct {
	mu     sync.Mutex
	idle   []*treesitter.Parser
	all    []*treesitter.Parser
	closed bool
}

func (p *parserPool) get() (*treesitter.Parser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}

	if n := len(p.idle); n > 0 {
		parser := p.idle[n-1]
		p.idle = p.idle[:n-1]

		return parser, nil
	}

	parser := treesitter.NewParser()
	p.all = append(p.all, parser)

	return parser, nil
}

func (p *parserPool) put(parser *treesitter.Parser) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.idle = append(p.idle, parser)
}

func (p *parserPool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closed
}

func (p *parserPool) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true

	for _, parser := range p.all {
		parser.Close()
	}

	p.all, p.idle = nil, nil
}
