// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is the served configuration document: an arbitrarily nested JSON
// value kept as raw bytes. Reads go through gjson so that an absent key is a
// distinct, non-panicking result; writes go through sjson and always return a
// new Document, leaving the receiver untouched.
type Document struct {
	raw []byte
}

// NewDocument validates raw and wraps it into a [Document].
// Returns [ErrInvalidJSON] if raw is not a valid JSON document.
func NewDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return Document{}, ErrInvalidJSON
	}

	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Document{raw: cp}, nil
}

// Raw returns the document bytes. The slice must not be modified.
func (d Document) Raw() []byte {
	return d.raw
}

// Lookup returns the value stored under keys. The result reports
// Exists() == false when any key along the way is absent.
func (d Document) Lookup(keys ...string) gjson.Result {
	return gjson.GetBytes(d.raw, Path(keys...))
}

// Get is like [Document.Lookup] but returns [ErrMissingKey] for absent keys
// and for explicit JSON nulls.
func (d Document) Get(keys ...string) (gjson.Result, error) {
	res := d.Lookup(keys...)
	if !res.Exists() || res.Type == gjson.Null {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(keys, "."))
	}
	return res, nil
}

// String returns the string stored under keys.
func (d Document) String(keys ...string) (string, error) {
	res, err := d.Get(keys...)
	if err != nil {
		return "", err
	}
	if res.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is %s, want string", ErrUnexpectedType, strings.Join(keys, "."), res.Type)
	}
	return res.Str, nil
}

// Uint returns the non-negative integer stored under keys. Fractions,
// exponents and negative numbers are rejected with [ErrUnexpectedType].
func (d Document) Uint(keys ...string) (uint64, error) {
	res, err := d.Get(keys...)
	if err != nil {
		return 0, err
	}
	if res.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s is %s, want number", ErrUnexpectedType, strings.Join(keys, "."), res.Type)
	}
	n, err := strconv.ParseUint(res.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is %s, want unsigned integer", ErrUnexpectedType, strings.Join(keys, "."), res.Raw)
	}
	return n, nil
}

// SetRaw stores the JSON value raw under keys, creating intermediate objects
// as needed, and returns the updated document.
func (d Document) SetRaw(raw []byte, keys ...string) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return Document{}, ErrInvalidJSON
	}

	updated, err := sjson.SetRawBytes(d.raw, Path(keys...), raw)
	if err != nil {
		return Document{}, fmt.Errorf("error setting %s: %w", strings.Join(keys, "."), err)
	}
	return Document{raw: updated}, nil
}

// Mode returns server.mode and whether it is set to a string.
func (d Document) Mode() (Mode, bool) {
	res := d.Lookup("server", "mode")
	if res.Type != gjson.String {
		return "", false
	}
	return Mode(res.Str), true
}

// AutoUpdate reports assets.autoUpdate. Anything other than JSON true is false.
func (d Document) AutoUpdate() bool {
	return d.Lookup("assets", "autoUpdate").Type == gjson.True
}

// ServerSettings extracts the server block. Mode is required here, host and
// port as well.
func (d Document) ServerSettings() (ServerSettings, error) {
	mode, err := d.String("server", "mode")
	if err != nil {
		return ServerSettings{}, err
	}
	host, err := d.String("server", "host")
	if err != nil {
		return ServerSettings{}, err
	}
	port, err := d.Uint("server", "port")
	if err != nil {
		return ServerSettings{}, err
	}

	return ServerSettings{Mode: Mode(mode), Host: host, Port: port}, nil
}

// ListenAddress returns "host:port" from the server block. Unlike
// [Document.ServerSettings] it does not require server.mode.
func (d Document) ListenAddress() (string, error) {
	host, err := d.String("server", "host")
	if err != nil {
		return "", err
	}
	port, err := d.Uint("server", "port")
	if err != nil {
		return "", err
	}

	return ServerSettings{Host: host, Port: port}.Address(), nil
}
