// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

// NamespaceURIUA is the uri of the namespace defined by the OPC Foundation.
const NamespaceURIUA = "http://opcfoundation.org/UA/"

// EncodingContext provides the tables that the encoder and decoder need to
// translate identifiers to and from their wire form.
type EncodingContext interface {
	// NamespaceURIs returns the namespace table.
	NamespaceURIs() []string
	// ServerURIs returns the server table.
	ServerURIs() []string
	// TypeLibrary returns the library used to resolve encoding ids.
	TypeLibrary() *TypeLibrary
}

// EncodingContextOption is a functional option to be applied to an EncodingContext.
type EncodingContextOption func(*encodingContext)

// WithNamespaceURIs sets the namespace table. Index 0 is always the UA namespace. (default: [NamespaceURIUA])
func WithNamespaceURIs(uris ...string) EncodingContextOption {
	return func(ec *encodingContext) {
		ec.namespaceURIs = append([]string{NamespaceURIUA}, uris...)
	}
}

// WithServerURIs sets the server table.
func WithServerURIs(uris ...string) EncodingContextOption {
	return func(ec *encodingContext) {
		ec.serverURIs = append([]string(nil), uris...)
	}
}

// WithTypeLibrary sets the type library. (default: DefaultTypeLibrary())
func WithTypeLibrary(lib *TypeLibrary) EncodingContextOption {
	return func(ec *encodingContext) {
		ec.typeLibrary = lib
	}
}

type encodingContext struct {
	namespaceURIs []string
	serverURIs    []string
	typeLibrary   *TypeLibrary
}

// NewEncodingContext returns an EncodingContext.
func NewEncodingContext(opts ...EncodingContextOption) EncodingContext {
	ec := &encodingContext{
		namespaceURIs: []string{NamespaceURIUA},
	}
	for _, opt := range opts {
		opt(ec)
	}
	if ec.typeLibrary == nil {
		ec.typeLibrary = DefaultTypeLibrary()
	}
	return ec
}

func (ec *encodingContext) NamespaceURIs() []string {
	return ec.namespaceURIs
}

func (ec *encodingContext) ServerURIs() []string {
	return ec.serverURIs
}

func (ec *encodingContext) TypeLibrary() *TypeLibrary {
	return ec.typeLibrary
}
