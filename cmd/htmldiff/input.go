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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/htmlindex"
)

// readInputs reads the old and the new document concurrently and decodes them to UTF-8. A path of
// "-" reads from stdin.
func readInputs(stdin io.Reader, paths [2]string, decode func([]byte) ([]byte, error)) ([2][]byte, error) {
	var docs [2][]byte
	if paths[0] == "-" && paths[1] == "-" {
		return docs, errors.New("only one of OLD and NEW can be read from standard input")
	}

	names := [2]string{"old", "new"}
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			var b []byte
			var err error
			if path == "-" {
				b, err = io.ReadAll(stdin)
			} else {
				b, err = os.ReadFile(path)
			}
			if err == nil {
				b, err = decode(b)
			}
			if err != nil {
				return fmt.Errorf("reading %s file: %w", names[i], err)
			}
			docs[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [2][]byte{}, err
	}
	return docs, nil
}

// newDecoder returns a function converting documents in the encoding named by label to UTF-8.
// Labels are resolved as in the WHATWG encoding standard, "auto" sniffs the encoding from each
// document.
func newDecoder(label string, logger *slog.Logger) (func([]byte) ([]byte, error), error) {
	switch strings.ToLower(label) {
	case "", "utf-8", "utf8":
		return func(b []byte) ([]byte, error) { return b, nil }, nil
	case "auto":
		return func(b []byte) ([]byte, error) {
			enc, name, certain := charset.DetermineEncoding(b, "")
			logger.Debug("detected encoding", "encoding", name, "certain", certain)
			if name == "utf-8" {
				return b, nil
			}
			return enc.NewDecoder().Bytes(b)
		}, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return func(b []byte) ([]byte, error) { return enc.NewDecoder().Bytes(b) }, nil
}
