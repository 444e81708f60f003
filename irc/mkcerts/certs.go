// Copyright (c) 2016 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

// Package mkcerts generates self-signed client certificates for CertFP
// authentication.
package mkcerts

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"
)

var (
	ErrNoCertificate = errors.New("No PEM certificate block found")
)

// CreateCertBytes creates a self-signed ECDSA client certificate for the
// given nickname, returning the cert and key bytes.
func CreateCertBytes(orgName string, nick string) (certBytes []byte, keyBytes []byte, err error) {
	validFrom := time.Now()
	validFor := 10 * 365 * 24 * time.Hour
	notAfter := validFrom.Add(validFor)

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate key: %s", err)
	}

	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate serial number: %s", err)
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{orgName},
			CommonName:   nick,
		},
		NotBefore: validFrom,
		NotAfter:  notAfter,

		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to create certificate: %s", err.Error())
	}

	certBytes = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes})

	b, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("Unable to marshal ECDSA private key: %v", err.Error())
	}
	pemBlock := pem.Block{Type: "EC PRIVATE KEY", Bytes: b}
	keyBytes = pem.EncodeToMemory(&pemBlock)
	return certBytes, keyBytes, nil
}

// Fingerprint returns the SHA-256 fingerprint of a PEM certificate, in the
// lowercase hex form servers compare against (CertFP).
func Fingerprint(certBytes []byte) (string, error) {
	block, _ := pem.Decode(certBytes)
	if block == nil || block.Type != "CERTIFICATE" {
		return "", ErrNoCertificate
	}
	sum := sha256.Sum256(block.Bytes)
	return hex.EncodeToString(sum[:]), nil
}

// CreateCert creates a client certificate, outputting the cert and key at
// the given filenames, and returns its fingerprint.
func CreateCert(orgName string, nick string, certFilename string, keyFilename string) (fingerprint string, err error) {
	certBytes, keyBytes, err := CreateCertBytes(orgName, nick)
	if err != nil {
		return "", err
	}

	certOut, err := os.Create(certFilename)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for writing: %s", certFilename, err.Error())
	}
	defer certOut.Close()
	_, err = certOut.Write(certBytes)
	if err != nil {
		return "", fmt.Errorf("failed to write out cert file %s: %s", certFilename, err.Error())
	}

	keyOut, err := os.OpenFile(keyFilename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for writing: %s", keyFilename, err.Error())
	}
	defer keyOut.Close()
	_, err = keyOut.Write(keyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to write out key file %s: %s", keyFilename, err.Error())
	}

	return Fingerprint(certBytes)
}
