// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pkcs12"
)

// UserIdentity is the identity of the user of a session.
type UserIdentity interface {
	// IdentityToken returns the token that activates a session with this identity.
	IdentityToken(policyID string) Encodable
}

// AnonymousIdentity is a user identity that is not authenticated.
type AnonymousIdentity struct{}

// IdentityToken returns an AnonymousIdentityToken.
func (AnonymousIdentity) IdentityToken(policyID string) Encodable {
	return &AnonymousIdentityToken{PolicyID: policyID}
}

// UserNameIdentity is a user identity authenticated by user name and password.
type UserNameIdentity struct {
	UserName string
	Password string
}

// IdentityToken returns a UserNameIdentityToken. The password is not encrypted.
func (id UserNameIdentity) IdentityToken(policyID string) Encodable {
	return &UserNameIdentityToken{PolicyID: policyID, UserName: id.UserName, Password: []byte(id.Password)}
}

// X509Identity is a user identity authenticated by a certificate and private key.
type X509Identity struct {
	// Certificate is the DER encoded certificate.
	Certificate []byte
	Key         *rsa.PrivateKey
}

// NewX509Identity returns a X509Identity with the given DER encoded certificate and key.
// Nil arguments are kept as given.
func NewX509Identity(certificate []byte, key *rsa.PrivateKey) X509Identity {
	return X509Identity{Certificate: certificate, Key: key}
}

// IdentityToken returns a X509IdentityToken.
func (id X509Identity) IdentityToken(policyID string) Encodable {
	return &X509IdentityToken{PolicyID: policyID, CertificateData: id.Certificate}
}

// NewX509IdentityFromFiles reads the certificate and private key from files,
// PEM or DER encoded.
func NewX509IdentityFromFiles(certFile, keyFile string) (X509Identity, error) {
	buf, err := os.ReadFile(certFile)
	if err != nil {
		return X509Identity{}, errors.Wrapf(BadCertificateInvalid, "read %s: %v", certFile, err)
	}
	crt := parseCertificate(buf)
	if crt == nil {
		return X509Identity{}, errors.Wrapf(BadCertificateInvalid, "no certificate found in %s", certFile)
	}
	buf, err = os.ReadFile(keyFile)
	if err != nil {
		return X509Identity{}, errors.Wrapf(BadCertificateInvalid, "read %s: %v", keyFile, err)
	}
	key := parsePrivateKey(buf)
	if key == nil {
		return X509Identity{}, errors.Wrapf(BadCertificateInvalid, "no rsa private key found in %s", keyFile)
	}
	return X509Identity{Certificate: crt.Raw, Key: key}, nil
}

// NewX509IdentityFromPKCS12 decodes the certificate and private key from a
// PKCS #12 archive.
func NewX509IdentityFromPKCS12(data []byte, password string) (X509Identity, error) {
	k, crt, err := pkcs12.Decode(data, password)
	if err != nil {
		return X509Identity{}, errors.Wrap(BadCertificateInvalid, err.Error())
	}
	key, ok := k.(*rsa.PrivateKey)
	if !ok {
		return X509Identity{}, errors.Wrapf(BadCertificateInvalid, "private key is %T, not rsa", k)
	}
	return X509Identity{Certificate: crt.Raw, Key: key}, nil
}

func parseCertificate(buf []byte) *x509.Certificate {
	for len(buf) > 0 {
		var block *pem.Block
		block, buf = pem.Decode(buf)
		if block == nil {
			// maybe its ASN.1 DER data
			if cert, err := x509.ParseCertificate(buf); err == nil {
				return cert
			}
			return nil
		}
		if block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
			continue
		}
		if cert, err := x509.ParseCertificate(block.Bytes); err == nil {
			return cert
		}
		return nil
	}
	return nil
}

func parsePrivateKey(buf []byte) *rsa.PrivateKey {
	der := buf
	if block, _ := pem.Decode(buf); block != nil {
		if !strings.HasSuffix(block.Type, "PRIVATE KEY") {
			return nil
		}
		der = block.Bytes
	}
	if k, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return k
	}
	if k, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		if k2, ok := k.(*rsa.PrivateKey); ok {
			return k2
		}
	}
	return nil
}
