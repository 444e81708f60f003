// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package mkcerts

import (
	"crypto/tls"
	"crypto/x509"
	"path/filepath"
	"testing"
)

func TestCreateCertBytes(t *testing.T) {
	certBytes, keyBytes, err := CreateCertBytes("ergoclient", "dan")
	if err != nil {
		t.Fatal(err)
	}
	pair, err := tls.X509KeyPair(certBytes, keyBytes)
	if err != nil {
		t.Fatal(err)
	}
	cert, err := x509.ParseCertificate(pair.Certificate[0])
	if err != nil {
		t.Fatal(err)
	}
	if cert.Subject.CommonName != "dan" {
		t.Errorf("unexpected common name %q", cert.Subject.CommonName)
	}
	if len(cert.ExtKeyUsage) != 1 || cert.ExtKeyUsage[0] != x509.ExtKeyUsageClientAuth {
		t.Errorf("expected a client auth certificate, got %v", cert.ExtKeyUsage)
	}

	fp, err := Fingerprint(certBytes)
	if err != nil {
		t.Fatal(err)
	}
	if len(fp) != 64 {
		t.Errorf("expected a sha-256 hex fingerprint, got %q", fp)
	}
	if _, err := Fingerprint(keyBytes); err != ErrNoCertificate {
		t.Errorf("expected ErrNoCertificate, got %v", err)
	}
}

func TestCreateCert(t *testing.T) {
	dir := t.TempDir()
	certFile, keyFile := filepath.Join(dir, "client.pem"), filepath.Join(dir, "client.key")
	fp, err := CreateCert("ergoclient", "dan", certFile, keyFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(fp) != 64 {
		t.Errorf("unexpected fingerprint %q", fp)
	}
	if _, err := tls.LoadX509KeyPair(certFile, keyFile); err != nil {
		t.Error(err)
	}
}
