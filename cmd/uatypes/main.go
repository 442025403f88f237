// Copyright 2021 Converter Systems LLC. All rights reserved.

// Command uatypes inspects the type library and decodes ExtensionObjects.
//
//	uatypes [-config path.toml] [-v] list
//	uatypes [-config path.toml] [-v] lookup <name|id>
//	uatypes [-config path.toml] [-v] decode <hex>
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/awcullen/uaclient/ua"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "uatypes: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("uatypes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path of a TOML config file")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: uatypes [-config path.toml] [-v] list | lookup <name|id> | decode <hex>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, *verbose, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ec := ua.NewEncodingContext(ua.WithNamespaceURIs(cfg.NamespaceURIs...), ua.WithServerURIs(cfg.ServerURIs...))
	logger.Debug("encoding context ready",
		zap.Strings("namespaceURIs", ec.NamespaceURIs()),
		zap.Strings("serverURIs", ec.ServerURIs()))

	switch fs.Arg(0) {
	case "list":
		return list(stdout, ec)
	case "lookup":
		if fs.NArg() != 2 {
			return errors.New("lookup requires a name or id")
		}
		return lookup(stdout, ec, fs.Arg(1))
	case "decode":
		if fs.NArg() != 2 {
			return errors.New("decode requires a hex string")
		}
		return decode(stdout, ec, logger, fs.Arg(1))
	case "":
		fs.Usage()
		return errors.New("missing command")
	default:
		return errors.Errorf("unknown command %q", fs.Arg(0))
	}
}

// newLogger returns a production logger at the given level, or a development
// logger at debug level if verbose. The level is not parsed if verbose.
func newLogger(level string, verbose bool, w io.Writer) (*zap.Logger, error) {
	lvl := zapcore.DebugLevel
	encCfg := zap.NewDevelopmentEncoderConfig()
	if !verbose {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrapf(err, "log level %q", level)
		}
		encCfg = zap.NewProductionEncoderConfig()
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// list prints the structures of the type library.
func list(w io.Writer, ec ua.EncodingContext) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BINARY\tXML\tDATATYPE\tTYPE")
	for _, rec := range ec.TypeLibrary().Records() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.BinaryEncodingID, rec.XMLEncodingID, rec.DataTypeID, rec.Type)
	}
	return tw.Flush()
}

// lookup resolves a well-known name or an id to the type registered for it.
func lookup(w io.Writer, ec ua.EncodingContext, s string) error {
	id, ok := ua.WellKnownID(s)
	if !ok {
		id = ua.ParseExpandedNodeID(s)
		if id.IsNil() {
			return errors.Wrapf(ua.BadInvalidArgument, "%q is neither a known name nor a node id", s)
		}
		if id.NamespaceURI() == "" && id.NamespaceIndex() > 0 {
			id = id.NodeID().ToExpandedNodeID(ec.NamespaceURIs())
		}
	}
	lib := ec.TypeLibrary()
	if typ, ok := lib.FindTypeByBinaryEncodingID(id); ok {
		fmt.Fprintf(w, "%s\tbinary encoding\t%s\n", id, typ)
		return nil
	}
	if typ, ok := lib.FindTypeByXMLEncodingID(id); ok {
		fmt.Fprintf(w, "%s\txml encoding\t%s\n", id, typ)
		return nil
	}
	if typ, ok := lib.FindTypeByDataTypeID(id); ok {
		fmt.Fprintf(w, "%s\tdata type\t%s\n", id, typ)
		return nil
	}
	return errors.Wrapf(ua.BadDataEncodingUnsupported, "no type registered for %s", id)
}

// decode reads an ExtensionObject from its UA Binary encoding, given in hex.
func decode(w io.Writer, ec ua.EncodingContext, logger *zap.Logger, s string) error {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return errors.Wrap(ua.BadInvalidArgument, err.Error())
	}
	logger.Debug("decoding", zap.Int("length", len(b)))
	r := bytes.NewReader(b)
	var eo *ua.ExtensionObject
	if err := ua.NewBinaryDecoder(r, ec).ReadExtensionObject(&eo); err != nil {
		return errors.Wrap(err, "decode")
	}
	if r.Len() > 0 {
		logger.Warn("trailing bytes", zap.Int("length", r.Len()))
	}
	fmt.Fprintf(w, "body: %s\n", eo.BodyType())
	if eo.IsNil() {
		return nil
	}
	fmt.Fprintf(w, "type id: %s\n", eo.TypeID())
	fmt.Fprintf(w, "go type: %T\n", eo.Body())
	if body, ok := eo.Encodable(); ok {
		fmt.Fprintf(w, "value: %+v\n", body)
	}
	return nil
}
