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

// Package htmldiff compares two HTML documents and produces a visual diff: an HTML document in
// which inserted content is wrapped in <ins> and deleted content in <del>.
//
// The documents are not parsed. Instead, they are split into tokens (tags, words, whitespace and
// punctuation, see [Tokenize]) and the token sequences are compared with a minimal diff algorithm
// (see [znkr.io/htmldiff/ses]). Tags are emitted as they are, even if they were added or deleted,
// so that the structure of the document survives. The exception are tags like <img> that are
// visible content on their own, those are wrapped like text (see [AlwaysWrap]).
//
// The main function is [Diff]. [Write] streams the result into an [io.Writer] and [Render] gives
// full control over the individual steps.
//
// Performance: Tokenization is O(N) and the comparison is O(NP) time and O(N) space where N is
// the number of tokens in the longer document and P is the number of deleted tokens.
package htmldiff
