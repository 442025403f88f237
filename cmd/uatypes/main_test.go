// Copyright 2021 Converter Systems LLC. All rights reserved.

package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awcullen/uaclient/ua"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uatypes.toml")
	assert.NilError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestList(t *testing.T) {
	out, _, err := runArgs(t, "list")
	assert.NilError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(lines), len(ua.StandardTypes())+1)
	assert.Assert(t, strings.HasPrefix(lines[0], "BINARY"))
	assert.Assert(t, strings.Contains(out, "*ua.ReadRequest"))
}

func TestLookup(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"ReadRequest_Encoding_DefaultBinary", "i=631\tbinary encoding\t*ua.ReadRequest\n"},
		{"ReadRequest", "i=629\tdata type\t*ua.ReadRequest\n"},
		{"i=631", "i=631\tbinary encoding\t*ua.ReadRequest\n"},
		{"i=1", "i=1\tdata type\tbool\n"},
	}
	for _, c := range cases {
		out, _, err := runArgs(t, "lookup", c.arg)
		assert.NilError(t, err, c.arg)
		assert.Equal(t, out, c.want)
	}

	_, _, err := runArgs(t, "lookup", "i=999999")
	assert.Equal(t, errors.Cause(err), ua.BadDataEncodingUnsupported)
	_, _, err = runArgs(t, "lookup", "NoSuchThing")
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
	_, _, err = runArgs(t, "lookup")
	assert.ErrorContains(t, err, "requires")
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	eo, err := ua.NewExtensionObject(&ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 2}, nil)
	assert.NilError(t, err)
	assert.NilError(t, ua.NewBinaryEncoder(&buf, ua.NewEncodingContext()).WriteExtensionObject(eo))

	out, _, err := runArgs(t, "decode", hex.EncodeToString(buf.Bytes()))
	assert.NilError(t, err)
	assert.Equal(t, out, "body: Encodable\n"+
		"type id: i=823\n"+
		"go type: *ua.SubscriptionAcknowledgement\n"+
		"value: &{SubscriptionID:1 SequenceNumber:2}\n")
}

func TestDecodeUnknownType(t *testing.T) {
	// ns=1;i=5001, binary body of 2 bytes.
	const input = "01 01 89 13 01 02 00 00 00 ab cd"
	path := writeConfig(t, `namespace_uris = ["urn:test"]`)
	out, _, err := runArgs(t, "-config", path, "decode", input)
	assert.NilError(t, err)
	assert.Equal(t, out, "body: ByteString\n"+
		"type id: nsu=urn:test;i=5001\n"+
		"go type: []uint8\n")
}

func TestDecodeNone(t *testing.T) {
	out, _, err := runArgs(t, "decode", "000000")
	assert.NilError(t, err)
	assert.Equal(t, out, "body: None\n")

	_, _, err = runArgs(t, "decode", "zz")
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
	_, _, err = runArgs(t, "decode", "0000")
	assert.Assert(t, err != nil)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := runArgs(t, "-v", "decode", "000000")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(stderr, "decoding"), stderr)

	_, stderr, err = runArgs(t, "decode", "000000")
	assert.NilError(t, err)
	assert.Equal(t, stderr, "")
}

func TestConfig(t *testing.T) {
	path := writeConfig(t, `
namespace_uris = [" urn:a ", "", "urn:b"]
server_uris = ["urn:server"]
log_level = "WARN"
`)
	cfg, err := loadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg.NamespaceURIs, []string{"urn:a", "urn:b"})
	assert.DeepEqual(t, cfg.ServerURIs, []string{"urn:server"})
	assert.Equal(t, cfg.LogLevel, "warn")

	cfg, err = loadConfig("")
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, "info")

	_, err = loadConfig(writeConfig(t, `colour = "blue"`))
	assert.ErrorContains(t, err, "unknown key")

	_, _, err = runArgs(t, "-config", writeConfig(t, `log_level = "loud"`), "list")
	assert.ErrorContains(t, err, "log level")
}

func TestVerboseOverridesLogLevel(t *testing.T) {
	path := writeConfig(t, `log_level = "loud"`)
	_, stderr, err := runArgs(t, "-config", path, "-v", "decode", "000000")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(stderr, "decoding"), stderr)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := runArgs(t, "frobnicate")
	assert.ErrorContains(t, err, "unknown command")
	_, stderr, err := runArgs(t)
	assert.ErrorContains(t, err, "missing command")
	assert.Assert(t, strings.Contains(stderr, "usage"))
}
