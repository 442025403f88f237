// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

// AnonymousIdentityToken activates a session without a user identity.
type AnonymousIdentityToken struct {
	PolicyID string
}

// Encode writes the AnonymousIdentityToken to the encoder.
func (r *AnonymousIdentityToken) Encode(enc Encoder) error {
	if err := enc.WriteString(r.PolicyID); err != nil {
		return err
	}
	return nil
}

// Decode reads the AnonymousIdentityToken from the decoder.
func (r *AnonymousIdentityToken) Decode(dec Decoder) error {
	if err := dec.ReadString(&r.PolicyID); err != nil {
		return err
	}
	return nil
}

// UserNameIdentityToken activates a session with a user name and password.
// The Password is encrypted with the EncryptionAlgorithm, if any.
type UserNameIdentityToken struct {
	PolicyID            string
	UserName            string
	Password            []byte
	EncryptionAlgorithm string
}

// Encode writes the UserNameIdentityToken to the encoder.
func (r *UserNameIdentityToken) Encode(enc Encoder) error {
	if err := enc.WriteString(r.PolicyID); err != nil {
		return err
	}
	if err := enc.WriteString(r.UserName); err != nil {
		return err
	}
	if err := enc.WriteByteString(r.Password); err != nil {
		return err
	}
	if err := enc.WriteString(r.EncryptionAlgorithm); err != nil {
		return err
	}
	return nil
}

// Decode reads the UserNameIdentityToken from the decoder.
func (r *UserNameIdentityToken) Decode(dec Decoder) error {
	if err := dec.ReadString(&r.PolicyID); err != nil {
		return err
	}
	if err := dec.ReadString(&r.UserName); err != nil {
		return err
	}
	if err := dec.ReadByteString(&r.Password); err != nil {
		return err
	}
	if err := dec.ReadString(&r.EncryptionAlgorithm); err != nil {
		return err
	}
	return nil
}

// X509IdentityToken activates a session with a certificate.
type X509IdentityToken struct {
	PolicyID        string
	CertificateData []byte
}

// Encode writes the X509IdentityToken to the encoder.
func (r *X509IdentityToken) Encode(enc Encoder) error {
	if err := enc.WriteString(r.PolicyID); err != nil {
		return err
	}
	if err := enc.WriteByteString(r.CertificateData); err != nil {
		return err
	}
	return nil
}

// Decode reads the X509IdentityToken from the decoder.
func (r *X509IdentityToken) Decode(dec Decoder) error {
	if err := dec.ReadString(&r.PolicyID); err != nil {
		return err
	}
	if err := dec.ReadByteString(&r.CertificateData); err != nil {
		return err
	}
	return nil
}
