// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package htmldiff

import (
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/htmltok"
	"znkr.io/htmldiff/ses"
)

// Render walks the edit script that transforms the tokens x into the tokens y and calls emit for
// every output fragment in order. Tokens are usually obtained from [Tokenize] and the script from
// [ses.Align].
//
//   - Common tokens are emitted unchanged.
//   - Inserted and deleted tokens are emitted between the insertion or deletion markers.
//   - Inserted and deleted tags are emitted unchanged, unless they are one of the elements
//     configured with [AlwaysWrap].
//
// The following options are supported: [Insertions], [Deletions], [AlwaysWrap], [Coalesce]
func Render(x, y []string, script []ses.Edit, emit func(string), opts ...Option) {
	cfg := config.FromOptions(opts, config.All&^config.WordRunes)
	render(x, y, script, emit, cfg)
}

func render(x, y []string, script []ses.Edit, emit func(string), cfg config.Config) {
	r := renderer{
		emit: emit,
		cfg:  cfg,
		wrap: htmltok.NewTagSet(cfg.AlwaysWrap...),
	}
	for _, e := range script {
		switch e.Op {
		case ses.Common:
			r.token(x[e.Old], nil)
		case ses.Add:
			r.token(y[e.New], &r.cfg.Insert)
		case ses.Delete:
			r.token(x[e.Old], &r.cfg.Delete)
		default:
			panic("never reached")
		}
	}
	r.close()
}

type renderer struct {
	emit func(string)
	cfg  config.Config
	wrap htmltok.TagSet
	open *config.Marker // marker that is currently open, only used with Coalesce
}

// token emits tok, wrapped in m unless m is nil or tok is a structural tag.
func (r *renderer) token(tok string, m *config.Marker) {
	if m == nil || (htmltok.IsTag(tok) && !r.wrap.Contains(tok)) {
		r.close()
		r.emit(tok)
		return
	}
	if !r.cfg.Coalesce {
		r.emit(m.Open)
		r.emit(tok)
		r.emit(m.Close)
		return
	}
	if r.open != m {
		r.close()
		r.emit(m.Open)
		r.open = m
	}
	r.emit(tok)
}

func (r *renderer) close() {
	if r.open != nil {
		r.emit(r.open.Close)
		r.open = nil
	}
}
