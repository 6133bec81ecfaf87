// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for reading and writing YAML files.
package yamlx

import (
	"bytes"
	"io"
	"os"

	"cogentcore.org/richdoc/base/errors"
	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(Read(v, f), "yamlx: %s", filename)
}

// Read reads the given object from the given reader using YAML encoding.
// An empty document leaves v unchanged.
func Read(v any, reader io.Reader) error {
	err := yaml.NewDecoder(reader).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadBytes reads the given object from the given bytes using YAML encoding.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Save writes the given object to the given filename using YAML encoding.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given object using YAML encoding.
func Write(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	defer enc.Close()
	return enc.Encode(v)
}
